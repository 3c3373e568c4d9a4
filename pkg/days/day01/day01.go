// Package day01 solves "Secret Entrance": a safe dial with the numbers 0 to 99 is turned left and right and the
// password is the number of times the dial points at 0.
package day01

import (
	"context"
	"math"
	"regexp"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/diivanand/AdventOfCode2025/pkg/aoclog"
	"github.com/diivanand/AdventOfCode2025/pkg/puzzle"
)

const (
	Day = 1

	DialStart = 50
	DialSize  = 100
)

var rotationPattern = regexp.MustCompile(`([LR])(\d+)`)

type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Rotation is a single instruction such as L68.
type Rotation struct {
	Direction Direction
	Clicks    int64
}

func (r Rotation) String() string {
	return string(r.Direction) + strconv.FormatInt(r.Clicks, 10)
}

// ParseRotations reads one rotation per line. Only the first match on each line counts; a line without a
// rotation is an error.
func ParseRotations(input []byte) ([]Rotation, error) {
	lines := puzzle.Lines(input)
	rotations := make([]Rotation, 0, len(lines))
	for idx, line := range lines {
		match := rotationPattern.FindStringSubmatch(line)
		if match == nil {
			return nil, puzzle.InvalidInputError{Day: Day, Line: idx + 1, Text: line, Reason: "expected a rotation like L68 or R14"}
		}

		clicks, err := strconv.ParseInt(match[2], 10, 64)
		if err != nil {
			return nil, puzzle.InvalidInputError{Day: Day, Line: idx + 1, Text: line, Reason: "rotation is too large"}
		}

		rotations = append(rotations, Rotation{
			Direction: Direction(match[1][0]),
			Clicks:    clicks,
		})
	}

	return rotations, nil
}

// Dial tracks the position of the safe's dial.
type Dial struct {
	position int64
}

func NewDial() *Dial {
	return &Dial{position: DialStart}
}

func (d *Dial) Position() int64 {
	return d.position
}

// Rotate turns the dial and returns how many clicks (including the last one) left it pointing at 0.
func (d *Dial) Rotate(r Rotation) int64 {
	// every full turn passes 0 exactly once
	hits := r.Clicks / DialSize
	rest := r.Clicks % DialSize

	switch r.Direction {
	case Left:
		moved := d.position - rest
		// leaving 0 doesn't count
		if d.position != 0 && moved <= 0 {
			hits++
		}
		d.position = (moved + DialSize) % DialSize
	case Right:
		moved := d.position + rest
		if moved >= DialSize {
			hits++
		}
		d.position = moved % DialSize
	}

	return hits
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
	return "Secret Entrance"
}

// Part1 counts the rotations that end with the dial at 0.
func (Solver) Part1(ctx context.Context, input []byte) (int64, error) {
	rotations, err := ParseRotations(input)
	if err != nil {
		return 0, err
	}

	logger := aoclog.Log(ctx)
	logger.Debug().Msgf("The numbers of the dial range from 0 to %d, it starts by pointing at %d", DialSize-1, DialStart)

	dial := NewDial()
	var password int64
	for idx, r := range rotations {
		if idx%1024 == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}

		dial.Rotate(r)
		logger.Debug().Msgf("The dial is rotated %s to point at %d.", r, dial.Position())
		if dial.Position() == 0 {
			password++
		}
	}

	return password, nil
}

// Part2 counts every click that leaves the dial at 0, including those in the middle of a rotation.
func (Solver) Part2(ctx context.Context, input []byte) (int64, error) {
	rotations, err := ParseRotations(input)
	if err != nil {
		return 0, err
	}

	logger := aoclog.Log(ctx)
	dial := NewDial()
	var password int64
	for idx, r := range rotations {
		if idx%1024 == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}

		hits := dial.Rotate(r)
		if hits > 0 {
			logger.Debug().Msgf("The dial is rotated %s to point at %d; during this rotation it points at 0 exactly %d times.", r, dial.Position(), hits)
		} else {
			logger.Debug().Msgf("The dial is rotated %s to point at %d.", r, dial.Position())
		}
		if password > math.MaxInt64-hits {
			return 0, eris.New("Password overflows int64")
		}
		password += hits
	}

	return password, nil
}
