package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/guillocut/internal/engine"
	"github.com/piwi3910/guillocut/internal/model"
)

func (c *cli) batchCmd() *cobra.Command {
	var sizes []string

	cmd := &cobra.Command{
		Use:     "batch",
		Short:   "Solve several board sizes against one catalog concurrently",
		Example: `  guillocut batch --size 5x8 --size 10x10 --size 4x4 --workers 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			boards := make([]model.Board, 0, len(sizes))
			for _, s := range sizes {
				w, h, err := parseSize(s)
				if err != nil {
					return err
				}
				boards = append(boards, model.Board{Width: w, Height: h})
			}

			catalog, err := c.catalog(cmd)
			if err != nil {
				return err
			}
			settings, err := c.settings()
			if err != nil {
				return err
			}

			plans, err := engine.SolveBatch(cmd.Context(), engine.New(settings), boards, catalog)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "BOARD\tVALUE\tPIECES\tEFFICIENCY")
			for _, plan := range plans {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f%%\n",
					plan.Board, formatValue(plan.Value), len(plan.Placements), plan.Efficiency())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringArrayVarP(&sizes, "size", "s", nil, "Board size as WxH (repeatable)")
	addPieceFlags(cmd.Flags())
	addSettingsFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("size")
	return cmd
}
