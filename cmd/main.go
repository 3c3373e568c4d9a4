package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diivanand/AdventOfCode2025/pkg"
	"github.com/diivanand/AdventOfCode2025/pkg/aoclog"
	"github.com/diivanand/AdventOfCode2025/pkg/config"

	// solvers register themselves
	_ "github.com/diivanand/AdventOfCode2025/pkg/days/day01"
	_ "github.com/diivanand/AdventOfCode2025/pkg/days/day02"
	_ "github.com/diivanand/AdventOfCode2025/pkg/days/day03"
)

var globalFlags = struct {
	configFile string
	verbose    bool
	json       bool
}{}

// env holds what every subcommand needs once the root command's pre-run hook has finished.
var env = struct {
	cfg    *config.Config
	logger zerolog.Logger
	stdin  io.Reader
	stderr io.Writer
}{
	stdin:  os.Stdin,
	stderr: os.Stderr,
}

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2025 solutions",
	Long: `This command solves the Advent of Code 2025 puzzles. Puzzle inputs are read from
inputs/dayNN/input.txt (optionally compressed) or from stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.configFile, "config", "c", "", "config file (defaults to aoc.toml in the project root)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.verbose, "verbose", "v", false, "enable debug output (includes the dial trace for day 1)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.json, "json", false, "write JSON log lines instead of console messages")
}

func setup(cmd *cobra.Command, args []string) error {
	root, err := pkg.GetProjectRoot()
	if err != nil {
		return err
	}

	cfgFile := globalFlags.configFile
	if cfgFile == "" {
		cfgFile = filepath.Join(root, config.DefaultFile)
	} else if _, err := os.Stat(cfgFile); err != nil {
		return eris.Wrapf(err, "Could not open config file %s", cfgFile)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if globalFlags.verbose {
		cfg.Log.Level = "debug"
	}
	if globalFlags.json {
		cfg.Log.JSON = true
	}

	if err := cfg.Validate(); err != nil {
		return eris.Wrap(err, "Failed to parse config")
	}

	for _, path := range []*string{&cfg.Inputs, &cfg.Answers, &cfg.Cache.Path} {
		if *path != "" && !filepath.IsAbs(*path) {
			*path = filepath.Join(root, *path)
		}
	}

	env.cfg = cfg
	env.logger = newLogger(cfg, env.stderr)
	return nil
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	debug := cfg.LogLevel() <= zerolog.DebugLevel
	zerolog.ErrorMarshalFunc = func(err error) interface{} {
		if cfg.Log.JSON {
			return eris.ToJSON(err, debug)
		}
		return eris.ToString(err, debug)
	}

	var logger zerolog.Logger
	if cfg.Log.JSON {
		logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(aoclog.NewConsoleWriter(out, cfg.LogLevel() <= zerolog.TraceLevel))
	}

	return logger.Level(cfg.LogLevel())
}

// commandContext returns a context carrying the logger which is cancelled on interrupt.
func commandContext() (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	return aoclog.WithLogger(ctx, &env.logger), cancel
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
