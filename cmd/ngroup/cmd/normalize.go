package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNormalizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Print texts with canonical brackets and delimiters",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rows, e := process(cmd, opts, args)
			if e != nil {
				return e
			}

			out := cmd.OutOrStdout()
			for _, r := range rows {
				if r.Grouped {
					fmt.Fprintln(out, r.Normalized)
				} else {
					fmt.Fprintln(out, r.Input)
				}
			}
			return nil
		},
	}
}
