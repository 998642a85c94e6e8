package main

import (
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// readSource reads a file, or standard input for "-".
func readSource(cmd *cobra.Command, name string) ([]byte, error) {
	var src []byte
	var err error
	if name == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("read %s (%s)", name, humanize.Bytes(uint64(len(src))))
	return src, nil
}
