package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gtank/cryptocore/blake2/blake2b"
	"github.com/gtank/cryptocore/blake2/blake2bp"
	"github.com/gtank/cryptocore/blake2/blake2s"
	"github.com/gtank/cryptocore/blake2/blake2sp"
	"github.com/gtank/cryptocore/iostream"
)

var blake2sCmd = &cobra.Command{
	Use:   "blake2s [file]",
	Short: "compute a BLAKE2s digest of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, salt, personal, err := decodeFlags()
		if err != nil {
			return err
		}
		size := length
		if size == 0 {
			size = blake2s.MaxOutput
		}
		d, err := blake2s.New(&blake2s.Config{
			Size:            size,
			Key:             key,
			Salt:            salt,
			Personalization: personal,
		})
		if err != nil {
			return err
		}
		return sumFile(cmd, args[0], d)
	},
}

var blake2bCmd = &cobra.Command{
	Use:   "blake2b [file]",
	Short: "compute a BLAKE2b digest of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, salt, personal, err := decodeFlags()
		if err != nil {
			return err
		}
		size := length
		if size == 0 {
			size = blake2b.MaxOutput
		}
		d, err := blake2b.New(&blake2b.Config{
			Size:            size,
			Key:             key,
			Salt:            salt,
			Personalization: personal,
		})
		if err != nil {
			return err
		}
		return sumFile(cmd, args[0], d)
	},
}

var blake2spCmd = &cobra.Command{
	Use:   "blake2sp [file]",
	Short: "compute a 4-way parallel BLAKE2sp digest of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, salt, personal, err := decodeFlags()
		if err != nil {
			return err
		}
		size := length
		if size == 0 {
			size = blake2s.MaxOutput
		}
		d, err := blake2sp.New(&blake2sp.Config{
			Size:            size,
			Key:             key,
			Salt:            salt,
			Personalization: personal,
		})
		if err != nil {
			return err
		}
		return sumFile(cmd, args[0], d)
	},
}

var blake2bpCmd = &cobra.Command{
	Use:   "blake2bp [file]",
	Short: "compute a 4-way parallel BLAKE2bp digest of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, salt, personal, err := decodeFlags()
		if err != nil {
			return err
		}
		size := length
		if size == 0 {
			size = blake2b.MaxOutput
		}
		d, err := blake2bp.New(&blake2bp.Config{
			Size:            size,
			Key:             key,
			Salt:            salt,
			Personalization: personal,
		})
		if err != nil {
			return err
		}
		return sumFile(cmd, args[0], d)
	},
}

// digestWriter is the subset of hash.Hash sumFile needs: any of this
// module's digests plus io.Writer for streaming via iostream.CopyTo.
type digestWriter interface {
	io.Writer
	Sum(b []byte) []byte
}

func sumFile(cmd *cobra.Command, path string, d digestWriter) error {
	fs, err := iostream.Open(path)
	if err != nil {
		return err
	}
	defer fs.Close()

	if _, err := fs.CopyTo(d); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%x\n", d.Sum(nil))
	return nil
}
