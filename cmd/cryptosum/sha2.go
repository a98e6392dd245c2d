package main

import (
	"github.com/spf13/cobra"

	"github.com/gtank/cryptocore/sha2/sha256"
	"github.com/gtank/cryptocore/sha2/sha512"
)

var sha256Cmd = &cobra.Command{
	Use:   "sha256 [file]",
	Short: "compute a SHA-2-256 digest of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sumFile(cmd, args[0], sha256.New())
	},
}

var sha512Cmd = &cobra.Command{
	Use:   "sha512 [file]",
	Short: "compute a SHA-2-512 digest of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sumFile(cmd, args[0], sha512.New())
	},
}
