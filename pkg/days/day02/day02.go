// Package day02 solves "Gift Shop": sum up the product IDs inside the given ranges that are made of a repeated
// sequence of digits.
package day02

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/diivanand/AdventOfCode2025/pkg/aoclog"
	"github.com/diivanand/AdventOfCode2025/pkg/puzzle"
)

const Day = 2

// Range is an inclusive range of product IDs.
type Range struct {
	Lower int64
	Upper int64
}

// ParseRanges reads a comma separated list of ranges like 11-22,95-115.
func ParseRanges(input []byte) ([]Range, error) {
	text := strings.TrimSpace(string(input))
	ranges := make([]Range, 0)
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		parts := strings.SplitN(item, "-", 2)
		if len(parts) != 2 {
			return nil, puzzle.InvalidInputError{Day: Day, Text: item, Reason: "expected a range like 11-22"}
		}

		lower, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || lower < 0 {
			return nil, puzzle.InvalidInputError{Day: Day, Text: item, Reason: "invalid lower bound"}
		}

		upper, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || upper < 0 {
			return nil, puzzle.InvalidInputError{Day: Day, Text: item, Reason: "invalid upper bound"}
		}

		if lower > upper {
			return nil, puzzle.InvalidInputError{Day: Day, Text: item, Reason: "lower bound is larger than the upper bound"}
		}

		ranges = append(ranges, Range{Lower: lower, Upper: upper})
	}

	return ranges, nil
}

// IsDoubled reports whether id consists of some sequence of digits repeated exactly twice (6464, 123123).
func IsDoubled(id int64) bool {
	digits := strconv.FormatInt(id, 10)
	half := len(digits) / 2
	return len(digits)%2 == 0 && digits[:half] == digits[half:]
}

// IsRepeated reports whether id consists of some sequence of digits repeated at least twice (111, 12341234).
func IsRepeated(id int64) bool {
	digits := strconv.FormatInt(id, 10)
	if len(digits) < 2 {
		return false
	}

	// a string built from a repeated block shows up in its own rotation
	doubled := digits + digits
	return strings.Contains(doubled[1:len(doubled)-1], digits)
}

// SumInvalid adds up all IDs in ranges for which invalid returns true. Ranges are scanned in parallel.
func SumInvalid(ctx context.Context, ranges []Range, invalid func(int64) bool) (int64, error) {
	sums := make([]int64, len(ranges))
	bar := puzzle.NewProgress(ctx, int64(len(ranges)), "     scanning")
	defer bar.Finish()

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(puzzle.Workers(ctx))

	for idx := range ranges {
		idx := idx
		group.Go(func() error {
			sum, err := sumRange(gctx, ranges[idx], invalid)
			if err != nil {
				return err
			}

			sums[idx] = sum
			aoclog.Log(ctx).Trace().Int64("lower", ranges[idx].Lower).Int64("upper", ranges[idx].Upper).Int64("sum", sum).Msg("range done")
			return bar.Add(1)
		})
	}

	if err := group.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, sum := range sums {
		if total > math.MaxInt64-sum {
			return 0, eris.New("Sum of invalid IDs overflows int64")
		}
		total += sum
	}

	return total, nil
}

func sumRange(ctx context.Context, r Range, invalid func(int64) bool) (int64, error) {
	var sum int64
	for id := r.Lower; id <= r.Upper; id++ {
		if id&0xffff == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}

		if invalid(id) {
			if sum > math.MaxInt64-id {
				return 0, eris.Errorf("Sum of invalid IDs in %d-%d overflows int64", r.Lower, r.Upper)
			}
			sum += id
		}

		if id == math.MaxInt64 {
			break
		}
	}

	return sum, nil
}

type Solver struct{}

var _ puzzle.Solver = Solver{}

func init() {
	puzzle.Register(Solver{})
}

func (Solver) Day() int {
	return Day
}

func (Solver) Title() string {
	return "Gift Shop"
}

func (Solver) Part1(ctx context.Context, input []byte) (int64, error) {
	ranges, err := ParseRanges(input)
	if err != nil {
		return 0, err
	}

	return SumInvalid(ctx, ranges, IsDoubled)
}

func (Solver) Part2(ctx context.Context, input []byte) (int64, error) {
	ranges, err := ParseRanges(input)
	if err != nil {
		return 0, err
	}

	return SumInvalid(ctx, ranges, IsRepeated)
}
