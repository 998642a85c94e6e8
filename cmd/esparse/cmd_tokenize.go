package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tdewolff/esparse/js"
)

func newTokenizeCmd() *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "tokenize <file>...",
		Short: "Print the tokens of JavaScript files with their line and column",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, name := range args {
				src, err := readSource(cmd, name)
				if err != nil {
					return err
				}

				opts.SourceFile = name
				tz, err := js.Tokenize(src, opts)
				if err != nil {
					return err
				}

				n := 0
				for {
					tok, err := tz.Next()
					if err != nil {
						return errors.Wrapf(err, "tokenize %s", name)
					}
					line, col := tz.Lines().Position(tok.Start)
					fmt.Fprintf(w, "%s:%d:%d\t%v\n", name, line, col, tok)
					if tok.Type == js.EOFToken {
						break
					}
					n++
				}
				log.Infof("tokenized %s into %d tokens", name, n)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
