package puzzle

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rotisserie/eris"
)

// Part selects one of the two halves of a day's puzzle.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// AllParts lists the parts in the order they are solved.
var AllParts = []Part{Part1, Part2}

// ParsePart converts 1 or 2 into a part list; 0 selects both parts.
func ParsePart(n int) ([]Part, error) {
	switch n {
	case 0:
		return AllParts, nil
	case 1:
		return []Part{Part1}, nil
	case 2:
		return []Part{Part2}, nil
	}

	return nil, eris.Errorf("Invalid part %d (must be 1, 2 or 0 for both)", n)
}

// Solver solves both parts of a single day.
type Solver interface {
	Day() int
	Title() string
	Part1(ctx context.Context, input []byte) (int64, error)
	Part2(ctx context.Context, input []byte) (int64, error)
}

// Solve dispatches to the solver method for the given part.
func Solve(ctx context.Context, s Solver, part Part, input []byte) (int64, error) {
	switch part {
	case Part1:
		return s.Part1(ctx, input)
	case Part2:
		return s.Part2(ctx, input)
	}

	return 0, eris.Errorf("Invalid part %d", part)
}

var (
	registryLock sync.RWMutex
	registry     = map[int]Solver{}
)

// Register adds a solver to the registry. Registering two solvers for the same day is a programming error.
func Register(s Solver) {
	registryLock.Lock()
	defer registryLock.Unlock()

	if _, present := registry[s.Day()]; present {
		panic(fmt.Sprintf("Day %d was registered twice", s.Day()))
	}
	registry[s.Day()] = s
}

// Lookup returns the solver for the given day.
func Lookup(day int) (Solver, error) {
	registryLock.RLock()
	defer registryLock.RUnlock()

	s, ok := registry[day]
	if !ok {
		return nil, UnknownDayError{Day: day}
	}
	return s, nil
}

// Days returns all registered days in ascending order.
func Days() []int {
	registryLock.RLock()
	defer registryLock.RUnlock()

	days := make([]int, 0, len(registry))
	for day := range registry {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
