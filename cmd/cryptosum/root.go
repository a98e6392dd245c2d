// Command cryptosum computes digests over a file. Given a file path it
// prints a hex digest, over any of the module's hash algorithms and
// with the keying/salting/personalization options those algorithms
// expose.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	keyHex      string
	saltHex     string
	personalHex string
	length      int
)

// rootCmd is the cryptosum binary's entry point; subcommands for each
// algorithm are registered in init.
var rootCmd = &cobra.Command{
	Use:   "cryptosum",
	Short: "cryptosum computes digests over a file using the cryptocore hash algorithms",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&keyHex, "key", "", "hex-encoded key for keyed hashing (MAC mode)")
	rootCmd.PersistentFlags().StringVar(&saltHex, "salt", "", "hex-encoded salt")
	rootCmd.PersistentFlags().StringVar(&personalHex, "personal", "", "hex-encoded personalization string")
	rootCmd.PersistentFlags().IntVar(&length, "length", 0, "digest output length in bytes (0 = algorithm default)")

	rootCmd.AddCommand(blake2sCmd)
	rootCmd.AddCommand(blake2bCmd)
	rootCmd.AddCommand(blake2spCmd)
	rootCmd.AddCommand(blake2bpCmd)
	rootCmd.AddCommand(sha256Cmd)
	rootCmd.AddCommand(sha512Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
