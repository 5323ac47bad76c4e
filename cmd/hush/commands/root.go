package commands

import (
	"github.com/spf13/cobra"
)

var (
	senderName string
	peerName   string
)

// Execute runs the hush CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "hush",
		Short: "Two-party encrypted session demo",
	}
	root.PersistentFlags().StringVar(&senderName, "sender", "alice", "name of the sending endpoint")
	root.PersistentFlags().StringVar(&peerName, "peer", "bob", "name of the receiving endpoint")

	root.AddCommand(demoCmd(), chatCmd())
	return root.Execute()
}
