package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/piwi3910/guillocut/internal/model"
	"github.com/piwi3910/guillocut/internal/project"
)

// cli carries configuration shared by all subcommands. Values resolve from
// flags, then GUILLOCUT_* environment variables, then the saved AppConfig.
type cli struct {
	v          *viper.Viper
	config     model.AppConfig
	configPath string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "guillocut",
		Short: "Guillotine board value optimizer",
		Long: `Compute the maximum total value obtainable by cutting a rectangular board
into pieces from a catalog using only edge-to-edge guillotine cuts.

Every piece type may be used any number of times. Settings default to
~/.guillocut/config.json and can be overridden with GUILLOCUT_* environment
variables or flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", project.DefaultConfigPath(), "Application config file")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(c.solveCmd(), c.compareCmd(), c.sweepCmd(), c.batchCmd(), c.serveCmd(), c.profilesCmd(), c.dataCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := project.LoadAppConfig(c.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", c.configPath, err)
	}
	c.config = cfg

	c.v.SetEnvPrefix("GUILLOCUT")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetDefault("width", cfg.DefaultBoardWidth)
	c.v.SetDefault("height", cfg.DefaultBoardHeight)
	c.v.SetDefault("negative", string(cfg.DefaultNegativeValue))
	c.v.SetDefault("rotate", cfg.DefaultAllowRotation)
	c.v.SetDefault("max-cells", cfg.DefaultMaxCells)
	c.v.SetDefault("workers", cfg.DefaultWorkers)
	c.v.SetDefault("profile", cfg.DefaultGCodeProfile)
	c.v.SetDefault("log-level", cfg.LogLevel)
	c.v.SetDefault("addr", cfg.ServerAddr)

	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := setupLogging(c.v.GetString("log-level"), cmd.ErrOrStderr()); err != nil {
		return err
	}

	if err := project.RegisterCustomProfiles(c.profilesPath()); err != nil {
		log.Warn().Err(err).Msg("skipped custom GCode profiles")
	}
	return nil
}

// inventoryPath and profilesPath live next to the config file.
func (c *cli) inventoryPath() string {
	return filepath.Join(filepath.Dir(c.configPath), filepath.Base(project.DefaultInventoryPath()))
}

func (c *cli) profilesPath() string {
	return filepath.Join(filepath.Dir(c.configPath), filepath.Base(project.DefaultProfilesPath()))
}

func setupLogging(level string, w io.Writer) error {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	return nil
}

// settings builds optimizer settings from the resolved configuration.
func (c *cli) settings() (model.Settings, error) {
	s := model.DefaultSettings()
	c.config.ApplyToSettings(&s)

	s.AllowRotation = c.v.GetBool("rotate")
	s.MaxCells = c.v.GetInt("max-cells")
	s.Workers = c.v.GetInt("workers")
	s.Machine.GCodeProfile = c.v.GetString("profile")

	switch policy := model.NegativeValuePolicy(c.v.GetString("negative")); policy {
	case model.NegativeReject, model.NegativeAllow:
		s.NegativeValues = policy
	default:
		return s, fmt.Errorf("unknown negative value policy %q (use %s or %s)",
			policy, model.NegativeReject, model.NegativeAllow)
	}

	if name := c.v.GetString("tool"); name != "" {
		inv, err := project.LoadInventory(c.inventoryPath())
		if err != nil {
			return s, fmt.Errorf("failed to load inventory: %w", err)
		}
		tool := inv.FindToolByName(name)
		if tool == nil {
			return s, fmt.Errorf("unknown tool %q", name)
		}
		tool.ApplyTo(&s.Machine)
	}
	return s, nil
}

// board returns the board from a named preset or from --width/--height.
func (c *cli) board() (model.Board, error) {
	if name := c.v.GetString("board"); name != "" {
		inv, err := project.LoadInventory(c.inventoryPath())
		if err != nil {
			return model.Board{}, fmt.Errorf("failed to load inventory: %w", err)
		}
		preset := inv.FindBoardByName(name)
		if preset == nil {
			return model.Board{}, fmt.Errorf("unknown board preset %q (have %s)", name, strings.Join(inv.BoardNames(), ", "))
		}
		return preset.Board(), nil
	}
	return model.Board{Width: c.v.GetInt("width"), Height: c.v.GetInt("height")}, nil
}

func addBoardFlags(fs *pflag.FlagSet) {
	fs.Int("width", 0, "Board width")
	fs.Int("height", 0, "Board height")
	fs.String("board", "", "Board preset name from the inventory")
}

func addPieceFlags(fs *pflag.FlagSet) {
	fs.StringArrayP("piece", "p", nil, "Piece type as WxH:VALUE or LABEL=WxH:VALUE (repeatable)")
	fs.StringP("catalog", "c", "", "Piece catalog file (.csv, .xlsx or .dxf)")
}

func addSettingsFlags(fs *pflag.FlagSet) {
	fs.Bool("rotate", false, "Also allow every piece turned by 90 degrees")
	fs.String("negative", "", "Negative piece values: reject or allow")
	fs.Int("max-cells", 0, "Refuse boards whose value table exceeds this many cells (0 = unlimited)")
	fs.Int("workers", 0, "Concurrent solves for batch work (0 = GOMAXPROCS)")
	fs.String("profile", "", "GCode profile name")
	fs.String("tool", "", "Tool preset name from the inventory")
}
