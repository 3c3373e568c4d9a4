package puzzle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rotisserie/eris"

	"github.com/diivanand/AdventOfCode2025/pkg/aoclog"
	"github.com/diivanand/AdventOfCode2025/pkg/store"
)

// Verdict describes how an answer compares to the known answer.
type Verdict int

const (
	Unchecked Verdict = iota
	Correct
	Wrong
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	default:
		return "unchecked"
	}
}

// Result is the outcome of solving one part.
type Result struct {
	Day      int
	Part     Part
	Value    int64
	Duration time.Duration
	Cached   bool
	Verdict  Verdict
	// Expected is only meaningful if Verdict is not Unchecked.
	Expected int64
}

// Cache stores answers keyed by day, part and input digest. Get returns nil if nothing is stored.
type Cache interface {
	Get(key string) (*store.Entry, error)
	Put(key string, entry *store.Entry) error
}

// Expectations provides known answers.
type Expectations interface {
	Expected(day int, part int) (int64, bool)
}

// Runner solves puzzles. The zero value solves everything without caching or verification.
type Runner struct {
	Cache   Cache
	Answers Expectations
	// Force ignores cached answers. Fresh answers are still written to the cache.
	Force bool
	Now   func() time.Time
}

// CacheKey identifies the answer for a part of a day for one specific input.
func CacheKey(day int, part Part, input []byte) string {
	digest := sha256.Sum256(input)
	return fmt.Sprintf("day%02d/part%d/%s", day, part, hex.EncodeToString(digest[:]))
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run solves the given parts of day. Solving stops at the first failing part; the results of the parts solved
// before it are returned alongside the error.
func (r *Runner) Run(ctx context.Context, day int, parts []Part, input []byte) ([]Result, error) {
	solver, err := Lookup(day)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(parts))
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := r.runPart(ctx, solver, part, input)
		if err != nil {
			return results, eris.Wrapf(err, "Day %d part %d failed", day, part)
		}

		results = append(results, result)
	}

	return results, nil
}

func (r *Runner) runPart(ctx context.Context, solver Solver, part Part, input []byte) (Result, error) {
	logger := aoclog.Log(ctx).With().Int("day", solver.Day()).Int("part", int(part)).Logger()
	ctx = aoclog.WithLogger(ctx, &logger)

	result := Result{Day: solver.Day(), Part: part}
	key := CacheKey(solver.Day(), part, input)

	found := false
	if r.Cache != nil && !r.Force {
		entry, err := r.Cache.Get(key)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to read the answer cache")
		} else if entry != nil {
			logger.Debug().Str("key", key).Msg("using cached answer")
			result.Value = entry.Value
			result.Duration = time.Duration(entry.DurationNS)
			result.Cached = true
			found = true
		}
	}

	if !found {
		start := r.now()
		value, err := Solve(ctx, solver, part, input)
		if err != nil {
			return result, err
		}

		result.Value = value
		result.Duration = r.now().Sub(start)
		logger.Debug().Int64("answer", value).Dur("duration", result.Duration).Msg("solved")

		if r.Cache != nil {
			err = r.Cache.Put(key, &store.Entry{
				Value:      value,
				DurationNS: int64(result.Duration),
				SolvedAt:   r.now(),
			})
			if err != nil {
				logger.Warn().Err(err).Msg("Failed to update the answer cache")
			}
		}
	}

	if r.Answers != nil {
		if expected, ok := r.Answers.Expected(solver.Day(), int(part)); ok {
			result.Expected = expected
			if expected == result.Value {
				result.Verdict = Correct
			} else {
				result.Verdict = Wrong
				logger.Warn().Int64("expected", expected).Int64("answer", result.Value).Msg("answer doesn't match the known answer")
			}
		}
	}

	return result, nil
}
