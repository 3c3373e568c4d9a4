package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diivanand/AdventOfCode2025/pkg/input"
	"github.com/diivanand/AdventOfCode2025/pkg/puzzle"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the available days",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available days:")

		for _, day := range puzzle.Days() {
			solver, err := puzzle.Lookup(day)
			if err != nil {
				return err
			}

			source := "stdin"
			path, err := input.Resolve(env.cfg.Inputs, day, "")
			if err != nil {
				return err
			}
			if path != input.Stdin {
				source = path
			}

			fmt.Fprintf(out, " * day %02d: %-20s input: %s\n", day, solver.Title(), source)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
