package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/guillocut/internal/engine"
)

func (c *cli) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the board with rotation toggled and turned by 90 degrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := c.board()
			if err != nil {
				return err
			}
			catalog, err := c.catalog(cmd)
			if err != nil {
				return err
			}
			settings, err := c.settings()
			if err != nil {
				return err
			}

			results := engine.CompareScenarios(engine.BuildDefaultScenarios(board, settings), catalog)
			best, ok := engine.BestResult(results)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SCENARIO\tBOARD\tVALUE\tPIECES\tCUTS\tWASTE\t")
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(tw, "%s\t%s\terror: %v\t\t\t\t\n", r.Scenario.Name, r.Scenario.Board, r.Err)
					continue
				}
				marker := ""
				if ok && r.Scenario.Name == best.Scenario.Name {
					marker = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.1f%%\t%s\n",
					r.Scenario.Name, r.Scenario.Board, formatValue(r.Value), r.PieceCount, r.CutCount, r.WastePercent, marker)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no scenario could be solved")
			}
			return nil
		},
	}

	addBoardFlags(cmd.Flags())
	addPieceFlags(cmd.Flags())
	addSettingsFlags(cmd.Flags())
	return cmd
}
