package main

import (
	"os"

	"hush/cmd/hush/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
