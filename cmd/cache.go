package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diivanand/AdventOfCode2025/pkg"
	"github.com/diivanand/AdventOfCode2025/pkg/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspects or clears the answer cache",
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Lists all cached answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := store.Open(env.cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer cache.Close()

		entries, err := cache.Entries()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "The cache is empty.")
			return nil
		}

		for _, entry := range entries {
			// the key ends with the full input digest, a prefix is enough to tell inputs apart
			key := entry.Key
			if len(key) > 32 {
				key = key[:32]
			}

			fmt.Fprintf(out, "%-32s %20d %10s  %s\n", key, entry.Value, formatDuration(time.Duration(entry.DurationNS)),
				entry.SolvedAt.Local().Format("02.01.2006 15:04:05"))
		}

		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Removes all cached answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := store.Open(env.cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer cache.Close()

		count, err := cache.Clear()
		if err != nil {
			return err
		}

		pkg.PrintTask(cmd.OutOrStdout(), fmt.Sprintf("Removed %d cached answer(s)", count))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
