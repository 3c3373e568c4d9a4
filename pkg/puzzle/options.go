package puzzle

import (
	"context"
	"runtime"
)

// Progress receives updates from long running solvers. *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
	Finish() error
}

// ProgressFactory creates a progress display for total steps.
type ProgressFactory func(total int64, desc string) Progress

type (
	progressKey struct{}
	workersKey  struct{}
)

type nopProgress struct{}

func (nopProgress) Add(int) error { return nil }
func (nopProgress) Finish() error { return nil }

// WithProgress makes solvers report their progress through factory.
func WithProgress(ctx context.Context, factory ProgressFactory) context.Context {
	return context.WithValue(ctx, progressKey{}, factory)
}

// NewProgress returns a progress display from the factory stored in ctx or a no-op one if there is none.
func NewProgress(ctx context.Context, total int64, desc string) Progress {
	factory, ok := ctx.Value(progressKey{}).(ProgressFactory)
	if !ok || factory == nil {
		return nopProgress{}
	}

	return factory(total, desc)
}

// WithWorkers limits the number of goroutines a solver may use. Values below 1 mean runtime.NumCPU().
func WithWorkers(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workersKey{}, workers)
}

// Workers returns the goroutine limit stored in ctx.
func Workers(ctx context.Context) int {
	workers, ok := ctx.Value(workersKey{}).(int)
	if !ok || workers < 1 {
		return runtime.NumCPU()
	}

	return workers
}
