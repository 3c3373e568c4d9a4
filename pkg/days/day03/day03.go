// Package day03 solves "Lobby": in each bank of batteries turn on a fixed number of batteries so that the digits
// they show, read left to right, form the largest possible joltage.
package day03

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/diivanand/AdventOfCode2025/pkg/aoclog"
	"github.com/diivanand/AdventOfCode2025/pkg/puzzle"
)

const (
	Day = 3

	Part1Batteries = 2
	Part2Batteries = 12
)

// Bank is a row of batteries, each with a joltage rating from 0 to 9.
type Bank []int

// ParseBanks reads one bank per line. Blank lines are skipped and every bank needs at least batteries digits
// (and never fewer than two).
func ParseBanks(input []byte, batteries int) ([]Bank, error) {
	minLen := max(2, batteries)
	banks := make([]Bank, 0)
	for idx, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		bank := make(Bank, len(line))
		for pos, c := range line {
			if c < '0' || c > '9' {
				return nil, puzzle.InvalidInputError{Day: Day, Line: idx + 1, Text: line, Reason: fmt.Sprintf("unexpected character %q", c)}
			}
			bank[pos] = int(c - '0')
		}

		if len(bank) < minLen {
			return nil, puzzle.InvalidInputError{Day: Day, Line: idx + 1, Text: line, Reason: fmt.Sprintf("a bank must contain at least %d batteries", minLen)}
		}

		banks = append(banks, bank)
	}

	return banks, nil
}

// MaxJoltage returns the largest number that can be formed by picking count batteries from the bank without
// changing their order.
func (b Bank) MaxJoltage(count int) (int64, error) {
	if count < 1 {
		return 0, eris.Errorf("Invalid battery count %d", count)
	}

	if len(b) < count {
		return 0, eris.Errorf("Bank has %d batteries, need at least %d", len(b), count)
	}

	if count > 18 {
		return 0, eris.Errorf("A joltage with %d digits doesn't fit into int64", count)
	}

	var joltage int64
	start := 0
	for picked := 0; picked < count; picked++ {
		// leave enough batteries behind for the remaining digits
		end := len(b) - (count - 1 - picked)
		best := start
		for idx := start + 1; idx < end; idx++ {
			if b[idx] > b[best] {
				best = idx
			}
		}

		joltage = joltage*10 + int64(b[best])
		start = best + 1
	}

	return joltage, nil
}

// TotalJoltage sums up the maximum joltage of every bank.
func TotalJoltage(ctx context.Context, banks []Bank, count int) (int64, error) {
	var total int64
	for idx, bank := range banks {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		joltage, err := bank.MaxJoltage(count)
		if err != nil {
			return 0, puzzle.InvalidInputError{Day: Day, Reason: fmt.Sprintf("bank %d: %s", idx+1, err)}
		}

		aoclog.Log(ctx).Trace().Int("bank", idx+1).Int64("joltage", joltage).Msg("bank done")
		if total > math.MaxInt64-joltage {
			return 0, eris.New("Total joltage overflows int64")
		}
		total += joltage
	}

	return total, nil
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
	return "Lobby"
}

func (Solver) Part1(ctx context.Context, input []byte) (int64, error) {
	banks, err := ParseBanks(input, Part1Batteries)
	if err != nil {
		return 0, err
	}

	return TotalJoltage(ctx, banks, Part1Batteries)
}

func (Solver) Part2(ctx context.Context, input []byte) (int64, error) {
	banks, err := ParseBanks(input, Part2Batteries)
	if err != nil {
		return 0, err
	}

	return TotalJoltage(ctx, banks, Part2Batteries)
}
