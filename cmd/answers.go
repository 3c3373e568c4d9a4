package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diivanand/AdventOfCode2025/pkg"
	"github.com/diivanand/AdventOfCode2025/pkg/answers"
	"github.com/diivanand/AdventOfCode2025/pkg/puzzle"
)

var answersCmd = &cobra.Command{
	Use:   "answers",
	Short: "Manages the known answers file",
}

var answersRecordFlags = struct {
	input string
	force bool
}{}

var answersRecordCmd = &cobra.Command{
	Use:   "record [day...|all]",
	Short: "Solves the given days and stores the answers as the known answers",
	Long: `Solves the given days and writes their answers into the answers file. Entries for other
days are kept. Only do this once you know the answers are right.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := parseDays(args)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		runner, cleanup, err := newRunner(answersRecordFlags.force, false, "")
		if err != nil {
			return err
		}
		defer cleanup()

		runner.Answers = nil

		known, err := answers.Load(env.cfg.Answers)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		err = solveDays(ctx, runner, days, puzzle.AllParts, answersRecordFlags.input, func(solver puzzle.Solver, results []puzzle.Result) {
			pkg.PrintTask(out, fmt.Sprintf("Day %02d: %s", solver.Day(), solver.Title()))
			for _, result := range results {
				printResult(out, result)
				if recErr := known.Record(result.Day, int(result.Part), result.Value); recErr != nil {
					pkg.PrintError(out, recErr.Error())
				}
			}
		})
		if err != nil {
			return err
		}

		pkg.PrintTask(out, "Updating "+env.cfg.Answers)
		return known.Save(env.cfg.Answers)
	},
}

func init() {
	rootCmd.AddCommand(answersCmd)
	answersCmd.AddCommand(answersRecordCmd)
	answersRecordCmd.Flags().StringVarP(&answersRecordFlags.input, "input", "i", "", `input file ("-" reads stdin)`)
	answersRecordCmd.Flags().BoolVarP(&answersRecordFlags.force, "force", "f", false, "ignore cached answers")
}
