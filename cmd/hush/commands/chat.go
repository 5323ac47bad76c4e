package commands

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hush/internal/domain"
	"hush/internal/session"
	"hush/internal/transport"
)

// chat: interactive loop reading lines from stdin. Each line is sealed by
// the sender, pushed through the transport and printed as the peer
// decrypts it.
func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Type lines, watch them sealed and opened",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			a := domain.PeerID(senderName)
			b := domain.PeerID(peerName)

			sess := session.New(a, b)
			defer sess.Close()
			if err := sess.Establish(); err != nil {
				return fmt.Errorf("establish: %w", err)
			}
			fmt.Fprintf(out, "session established, %s -> %s. ctrl-d to quit.\n", a, b)

			pipe := transport.NewMemory()
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				env, err := sess.Send(a, sc.Bytes())
				if err != nil {
					return err
				}
				if err := pipe.Deliver(ctx, b, env); err != nil {
					return err
				}
				envs, err := pipe.Collect(ctx, b, 1)
				if err != nil {
					return err
				}
				for _, e := range envs {
					msg, err := sess.Receive(e)
					if err != nil {
						fmt.Fprintf(out, "dropped message %d: %v\n", e.Counter, err)
						continue
					}
					fmt.Fprintf(out, "[%d] %s: %s\n", msg.Counter, msg.SenderID, msg.Plaintext)
				}
			}
			return sc.Err()
		},
	}
}
