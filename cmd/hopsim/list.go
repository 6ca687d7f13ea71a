package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/oomph-ac/hopsim/scenario"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in scenarios.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := scenario.Builtin()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range r.All() {
				fmt.Fprintf(w, "%s\t%d ticks\t%s\n", s.Name, s.TotalTicks(), s.Description)
			}
			return w.Flush()
		},
	}
}
