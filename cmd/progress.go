package cmd

import (
	"github.com/schollz/progressbar/v3"

	"github.com/diivanand/AdventOfCode2025/pkg/puzzle"
)

func getProgressBar(length int64, desc string) puzzle.Progress {
	if !env.cfg.Progress || env.cfg.Log.JSON {
		return progressbar.NewOptions64(length, progressbar.OptionSetVisibility(false))
	}

	return progressbar.NewOptions64(length,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(env.stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
