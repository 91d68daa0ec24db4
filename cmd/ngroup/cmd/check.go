package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errMalformed = errors.New("malformed group expressions found")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [text...]",
		Short: "Report texts with unbalanced or mismatched brackets",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rows, e := process(cmd, opts, args)
			if e != nil {
				return e
			}

			out := cmd.OutOrStdout()
			bad := 0
			for _, r := range rows {
				switch {
				case r.Malformed():
					bad++
					fmt.Fprintf(out, "%s\terror: %s\n", r.Input, r.Err)
				case r.Grouped:
					fmt.Fprintf(out, "%s\tok: %d terms\n", r.Input, len(r.Terms))
				default:
					fmt.Fprintf(out, "%s\tskipped: %s\n", r.Input, r.Err)
				}
			}

			if bad > 0 {
				return fmt.Errorf("%w: %d of %d", errMalformed, bad, len(rows))
			}
			return nil
		},
	}
}
