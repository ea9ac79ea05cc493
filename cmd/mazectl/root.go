package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/internal/config"
	"github.com/bt4R9/TD/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries what every subcommand needs once the root has run.
type app struct {
	flags struct {
		config    string
		logLevel  string
		logFormat string
	}
	cfg config.Config
	log *slog.Logger
}

// mazeFlags are the generation knobs shared by several subcommands.
type mazeFlags struct {
	size      int
	seed      int64
	entrances int
	color     bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazectl",
		Short: "Generate and solve recursive-division mazes",
		Long:  "mazectl builds square mazes by recursive division and finds\nfewest-move paths through them with breadth-first search.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		Version:           version,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.flags.config, "config", "", "YAML config file")
	f.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&a.flags.logFormat, "log-format", "", "text or json")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.config)
	if err != nil {
		return err
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		cfg.LogFormat = a.flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())

	a.cfg = cfg
	a.log = logging.New("mazectl")
	a.log.Debug("config loaded", slog.String("file", a.flags.config), slog.Int("size", cfg.Size))
	return nil
}

// addMazeFlags registers the shared generation flags on cmd.
func addMazeFlags(cmd *cobra.Command, mf *mazeFlags) {
	f := cmd.Flags()
	f.IntVar(&mf.size, "size", 0, "maze side length (default from config)")
	f.Int64Var(&mf.seed, "seed", 0, "random seed; 0 picks one from the clock")
	f.IntVar(&mf.entrances, "entrances", 0, "number of bottom-row entrances (default from config)")
	f.BoolVar(&mf.color, "color", false, "ANSI colors in the drawing")
}

// resolve applies explicitly set flags over the loaded config and fills in
// a clock seed when none was chosen.
func (a *app) resolve(cmd *cobra.Command, mf *mazeFlags) (config.Config, error) {
	cfg := a.cfg
	f := cmd.Flags()
	if f.Changed("size") {
		cfg.Size = mf.size
	}
	if f.Changed("seed") {
		cfg.Seed = mf.seed
	}
	if f.Changed("entrances") {
		cfg.Entrances = mf.entrances
	}
	if f.Changed("color") {
		cfg.Color = mf.color
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// parseCoord reads "row,col".
func parseCoord(s string) (grid.Coord, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("coordinate %q: row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("coordinate %q: col: %w", s, err)
	}
	return grid.Pos(r, c), nil
}
