package main

import (
	"fmt"
	"io"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tdewolff/esparse/js"
)

func newParseCmd() *cobra.Command {
	var flags optionFlags
	var outputFormat string
	var compact bool
	var silent bool

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse JavaScript files into a single program and print its syntax tree",
		Long:  "Parse JavaScript files into a single program and print its syntax tree. The files are parsed in order and their statements appended to one program, \"-\" reads from standard input.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			var program *js.Program
			for _, name := range args {
				src, err := readSource(cmd, name)
				if err != nil {
					return err
				}

				fileOpts := opts
				fileOpts.Program = program
				fileOpts.SourceFile = name
				t := time.Now()
				if program, err = js.Parse(src, fileOpts); err != nil {
					return errors.Wrapf(err, "parse %s", name)
				}
				log.Infof("parsed %s (%s) in %v", name, humanize.Bytes(uint64(len(src))), time.Since(t))
			}
			log.Infof("%s statements", humanize.Comma(int64(len(program.Body))))

			if silent {
				return nil
			}
			return writeProgram(cmd.OutOrStdout(), program, outputFormat, compact)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json, pretty or string")
	cmd.Flags().BoolVar(&compact, "compact", false, "Write JSON without indentation")
	cmd.Flags().BoolVar(&silent, "silent", false, "Only check the syntax, do not print the tree")
	return cmd
}

func writeProgram(w io.Writer, program *js.Program, outputFormat string, compact bool) error {
	switch outputFormat {
	case "json":
		enc := js.NewESTreeEncoder(w)
		if !compact {
			enc.SetIndent("  ")
		}
		if err := enc.Encode(program); err != nil {
			return errors.Wrap(err, "encode json")
		}
	case "pretty":
		if _, err := pretty.Fprintf(w, "%# v\n", program); err != nil {
			return err
		}
	case "string":
		if _, err := fmt.Fprintln(w, program.String()); err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown format: %s", outputFormat)
	}
	return nil
}
