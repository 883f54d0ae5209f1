package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/guillocut/internal/engine"
	"github.com/piwi3910/guillocut/internal/export"
)

func (c *cli) sweepCmd() *cobra.Command {
	var (
		from  int
		to    int
		chart string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print the optimal value for every board width in a range",
		Long: `Sweep board widths from --from to --to at a fixed --height. All widths are
read from a single value table, so a sweep costs the same as solving the
widest board.`,
		Example: `  guillocut sweep --from 1 --to 20 --height 8 --chart sweep.html`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := c.catalog(cmd)
			if err != nil {
				return err
			}
			settings, err := c.settings()
			if err != nil {
				return err
			}

			points, err := engine.New(settings).SweepWidths(from, to, c.v.GetInt("height"), catalog)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range points {
				fmt.Fprintf(w, "%dx%d\t%s\n", p.Width, p.Height, formatValue(p.Value))
			}

			if chart != "" {
				if err := writeChart(chart, points); err != nil {
					return err
				}
				log.Info().Str("path", chart).Int("points", len(points)).Msg("wrote sweep chart")
			}
			return nil
		},
	}

	addPieceFlags(cmd.Flags())
	addSettingsFlags(cmd.Flags())
	cmd.Flags().Int("height", 0, "Board height")
	cmd.Flags().IntVar(&from, "from", 1, "First board width")
	cmd.Flags().IntVar(&to, "to", 0, "Last board width (required)")
	cmd.Flags().StringVar(&chart, "chart", "", "Write an HTML line chart of the sweep")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// writeChart renders the sweep chart to path and reports a failed close.
func writeChart(path string, points []engine.SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	if err := export.ExportSweepChart(f, points); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}
