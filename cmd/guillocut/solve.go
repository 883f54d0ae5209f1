package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/guillocut/internal/engine"
	"github.com/piwi3910/guillocut/internal/export"
	"github.com/piwi3910/guillocut/internal/gcode"
	"github.com/piwi3910/guillocut/internal/model"
	"github.com/piwi3910/guillocut/internal/project"
)

const recentProjectLimit = 10

// solveOutputs are the optional files written from a solved plan.
type solveOutputs struct {
	project string
	pdf     string
	labels  string
	xlsx    string
	gcode   string
	save    string

	minOffcut int
}

func (c *cli) solveCmd() *cobra.Command {
	var out solveOutputs

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the maximum value of a board and its cutting plan",
		Long: `Solve a board against a piece catalog and print the maximum value with the
pieces of one optimal plan. Pieces come from --piece flags, a --catalog file
or a saved --project. Without any, the reference catalog 2x3:10, 1x2:5 and
3x4:15 is used.`,
		Example: `  guillocut solve --width 5 --height 8
  guillocut solve --width 2 --height 2 --piece 1x1:3
  guillocut solve -c pieces.csv --rotate --pdf plan.pdf --gcode plan.nc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, catalog, settings, err := c.solveInputs(cmd, out.project)
			if err != nil {
				return err
			}

			plan, err := engine.New(settings).Solve(board, catalog)
			if err != nil {
				return err
			}

			printPlan(cmd.OutOrStdout(), plan, out.minOffcut)
			if err := writeOutputs(out, plan, settings); err != nil {
				return err
			}

			if out.save != "" {
				p := model.NewProject()
				p.Name = strings.TrimSuffix(filepath.Base(out.save), filepath.Ext(out.save))
				p.Board = board
				p.Pieces = catalog
				p.Settings = settings
				p.Result = &plan
				if err := project.SaveProject(out.save, p); err != nil {
					return err
				}
				c.rememberProject(out.save)
				log.Info().Str("path", out.save).Msg("saved project")
			}
			return nil
		},
	}

	addBoardFlags(cmd.Flags())
	addPieceFlags(cmd.Flags())
	addSettingsFlags(cmd.Flags())
	cmd.Flags().StringVar(&out.project, "project", "", "Solve a saved project instead of flags")
	cmd.Flags().StringVar(&out.pdf, "pdf", "", "Write the cutting plan to a PDF file")
	cmd.Flags().StringVar(&out.labels, "labels", "", "Write QR piece labels to a PDF file")
	cmd.Flags().StringVar(&out.xlsx, "xlsx", "", "Write the plan to an Excel workbook")
	cmd.Flags().StringVar(&out.gcode, "gcode", "", "Write GCode for the cuts")
	cmd.Flags().IntVar(&out.minOffcut, "min-offcut", 0, "List offcuts whose sides are all at least this long")
	cmd.Flags().StringVar(&out.save, "save", "", "Save board, catalog, settings and plan as a project file")
	return cmd
}

// solveInputs resolves the board, catalog and settings from a project file
// or from flags.
func (c *cli) solveInputs(cmd *cobra.Command, projectPath string) (model.Board, model.Catalog, model.Settings, error) {
	if projectPath != "" {
		p, err := project.LoadProject(projectPath)
		if err != nil {
			return model.Board{}, nil, model.Settings{}, err
		}
		log.Info().Str("project", p.Name).Int("pieces", len(p.Pieces)).Msg("loaded project")
		c.rememberProject(projectPath)
		return p.Board, p.Pieces, p.Settings, nil
	}

	board, err := c.board()
	if err != nil {
		return model.Board{}, nil, model.Settings{}, err
	}
	catalog, err := c.catalog(cmd)
	if err != nil {
		return model.Board{}, nil, model.Settings{}, err
	}
	settings, err := c.settings()
	if err != nil {
		return model.Board{}, nil, model.Settings{}, err
	}
	return board, catalog, settings, nil
}

func (c *cli) rememberProject(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	c.config.AddRecentProject(path, recentProjectLimit)
	if err := project.SaveAppConfig(c.configPath, c.config); err != nil {
		log.Warn().Err(err).Msg("failed to update recent projects")
	}
}

func printPlan(w io.Writer, plan model.Plan, minOffcut int) {
	fmt.Fprintf(w, "maximum value: %s\n", formatValue(plan.Value))
	fmt.Fprintf(w, "board: %s\n", plan.Board)
	for _, pc := range plan.PieceCounts() {
		fmt.Fprintf(w, "  %dx %s (%dx%d, value %s)\n",
			pc.Count, pc.Piece.Label, pc.Piece.Width, pc.Piece.Height, formatValue(pc.Piece.Value))
	}
	fmt.Fprintf(w, "cuts: %d, offcuts: %d, efficiency: %.1f%%\n",
		len(plan.Cuts), len(plan.Offcuts), plan.Efficiency())
	if minOffcut > 0 {
		for _, o := range plan.UsableOffcuts(minOffcut) {
			fmt.Fprintf(w, "  offcut %s at (%d, %d)\n", o.AsBoard(), o.X, o.Y)
		}
	}
}

func writeOutputs(out solveOutputs, plan model.Plan, settings model.Settings) error {
	if out.pdf != "" {
		if err := export.ExportPDF(out.pdf, plan); err != nil {
			return err
		}
		log.Info().Str("path", out.pdf).Msg("wrote cutting plan")
	}

	if out.labels != "" {
		if err := export.ExportLabels(out.labels, plan); err != nil {
			return err
		}
		log.Info().Str("path", out.labels).Int("labels", len(plan.Placements)).Msg("wrote labels")
	}

	if out.xlsx != "" {
		if err := export.ExportExcel(out.xlsx, plan); err != nil {
			return err
		}
		log.Info().Str("path", out.xlsx).Msg("wrote workbook")
	}

	if out.gcode != "" {
		code := gcode.New(settings.Machine).Generate(plan)
		if err := os.WriteFile(out.gcode, []byte(code), 0644); err != nil {
			return fmt.Errorf("failed to write GCode: %w", err)
		}

		moves := gcode.Parse(code)
		for _, v := range gcode.FormatViolations(gcode.CheckToolpath(moves, plan.Board, settings.Machine)) {
			log.Warn().Msg(v)
		}
		stats := gcode.Summarize(moves)
		log.Info().
			Str("path", out.gcode).
			Str("profile", settings.Machine.GCodeProfile).
			Int("moves", stats.Moves).
			Int("plunges", stats.Plunges).
			Float64("feed_length", stats.FeedLength).
			Float64("rapid_length", stats.RapidLength).
			Msg("wrote GCode")
	}
	return nil
}

// formatValue prints whole values without decimals.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
