package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/diivanand/AdventOfCode2025/pkg"
	"github.com/diivanand/AdventOfCode2025/pkg/answers"
	"github.com/diivanand/AdventOfCode2025/pkg/aoclog"
	"github.com/diivanand/AdventOfCode2025/pkg/input"
	"github.com/diivanand/AdventOfCode2025/pkg/puzzle"
	"github.com/diivanand/AdventOfCode2025/pkg/store"
)

var runFlags = struct {
	input   string
	part    int
	force   bool
	noCache bool
	answers string
}{}

var runCmd = &cobra.Command{
	Use:   "run [day...|all]",
	Short: "Solve one or more days",
	Long: `Solves the given days (day 1 if none is given) and prints the answers.

The input for each day is read from --input, from inputs/dayNN/input.txt (or a .gz, .xz or .br
variant of it) or from stdin, in that order. Answers are compared against the answers file if it
has an entry for the day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := parseDays(args)
		if err != nil {
			return err
		}

		parts, err := puzzle.ParsePart(runFlags.part)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		runner, cleanup, err := newRunner(runFlags.force, runFlags.noCache, runFlags.answers)
		if err != nil {
			return err
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		wrong := 0
		err = solveDays(ctx, runner, days, parts, runFlags.input, func(solver puzzle.Solver, results []puzzle.Result) {
			pkg.PrintTask(out, fmt.Sprintf("Day %02d: %s", solver.Day(), solver.Title()))
			for _, result := range results {
				printResult(out, result)
				if result.Verdict == puzzle.Wrong {
					wrong++
				}
			}
		})
		if err != nil {
			return err
		}

		if wrong > 0 {
			return eris.Errorf("%d answer(s) don't match the answers file", wrong)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runFlags.input, "input", "i", "", `input file ("-" reads stdin)`)
	runCmd.Flags().IntVarP(&runFlags.part, "part", "p", 0, "only solve this part (1 or 2)")
	runCmd.Flags().BoolVarP(&runFlags.force, "force", "f", false, "ignore cached answers")
	runCmd.Flags().BoolVar(&runFlags.noCache, "no-cache", false, "neither read nor write the answer cache")
	runCmd.Flags().StringVar(&runFlags.answers, "answers", "", "answers file (overrides the config)")
}

// parseDays turns the positional arguments into a list of days. No arguments select day 1, "all" selects every
// registered day.
func parseDays(args []string) ([]int, error) {
	if len(args) == 0 {
		return []int{1}, nil
	}

	days := make([]int, 0, len(args))
	seen := map[int]bool{}
	for _, arg := range args {
		if strings.EqualFold(arg, "all") {
			return puzzle.Days(), nil
		}

		day, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "day"))
		if err != nil {
			return nil, eris.Errorf("Invalid day %s", arg)
		}

		if _, err := puzzle.Lookup(day); err != nil {
			return nil, err
		}

		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	return days, nil
}

// newRunner configures a runner from the config. The returned cleanup function closes the cache.
func newRunner(force, noCache bool, answersFile string) (*puzzle.Runner, func(), error) {
	runner := &puzzle.Runner{Force: force}
	cleanup := func() {}

	if answersFile == "" {
		answersFile = env.cfg.Answers
	}
	known, err := answers.Load(answersFile)
	if err != nil {
		return nil, nil, err
	}
	runner.Answers = known

	if env.cfg.Cache.Enabled && !noCache {
		cache, err := store.Open(env.cfg.Cache.Path)
		if err != nil {
			env.logger.Warn().Err(err).Msg("Answer cache unavailable")
		} else {
			runner.Cache = cache
			cleanup = func() {
				if err := cache.Close(); err != nil {
					env.logger.Warn().Err(err).Msg("Failed to close the answer cache")
				}
			}
		}
	}

	return runner, cleanup, nil
}

func solveDays(ctx context.Context, runner *puzzle.Runner, days []int, parts []puzzle.Part, explicitInput string, report func(puzzle.Solver, []puzzle.Result)) error {
	if explicitInput != "" && len(days) > 1 {
		return eris.New("--input can only be used with a single day")
	}

	ctx, runID := aoclog.WithRun(ctx)
	ctx = puzzle.WithWorkers(ctx, env.cfg.Workers)
	ctx = puzzle.WithProgress(ctx, getProgressBar)
	aoclog.Log(ctx).Debug().Ints("days", days).Msgf("starting run %s", runID)

	for _, day := range days {
		solver, err := puzzle.Lookup(day)
		if err != nil {
			return err
		}

		path, err := input.Resolve(env.cfg.Inputs, day, explicitInput)
		if err != nil {
			return err
		}

		if path == input.Stdin && len(days) > 1 {
			return eris.Errorf("No input file for day %d (expected %s)", day, input.DefaultPath(env.cfg.Inputs, day))
		}

		aoclog.Log(ctx).Debug().Int("day", day).Str("path", path).Msg("reading input")
		data, err := input.Read(path, env.stdin)
		if err != nil {
			return err
		}

		results, err := runner.Run(ctx, day, parts, data)
		report(solver, results)
		if err != nil {
			return err
		}
	}

	return nil
}

func printResult(w io.Writer, result puzzle.Result) {
	line := fmt.Sprintf("Part %d: %d (%s)", result.Part, result.Value, formatDuration(result.Duration))
	if result.Cached {
		line += " (cached)"
	}

	switch result.Verdict {
	case puzzle.Correct:
		pkg.PrintSubtask(w, line+" (correct)")
	case puzzle.Wrong:
		pkg.PrintError(w, fmt.Sprintf("%s (wrong, expected %d)", line, result.Expected))
	default:
		pkg.PrintSubtask(w, line)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}
