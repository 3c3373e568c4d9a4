// Package aoclog carries a zerolog logger through the context and renders log events for humans.
package aoclog

import (
	"context"

	"github.com/aidarkhanov/nanoid"
	"github.com/rs/zerolog"
)

type logKey struct{}

var nopLogger = zerolog.Nop()

// WithLogger attaches the given logger to the context
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}

// Log returns the logger stored in ctx or a disabled logger if there is none.
func Log(ctx context.Context) *zerolog.Logger {
	logger := ctx.Value(logKey{})
	if logger == nil {
		return &nopLogger
	}

	return logger.(*zerolog.Logger)
}

// WithRun derives a logger tagged with a fresh run ID and stores it in the context.
func WithRun(ctx context.Context) (context.Context, string) {
	runID := nanoid.New()
	logger := Log(ctx).With().Str("run", runID).Logger()
	return WithLogger(ctx, &logger), runID
}
