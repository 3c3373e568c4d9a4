package puzzle

import "fmt"

type UnknownDayError struct {
	Day int
}

var _ error = (*UnknownDayError)(nil)

func (e UnknownDayError) Error() string {
	return fmt.Sprintf("There is no solver for day %d.", e.Day)
}

// InvalidInputError reports a puzzle input a solver can't make sense of. Line is 1-based and 0 if the problem
// isn't tied to a single line.
type InvalidInputError struct {
	Day    int
	Line   int
	Text   string
	Reason string
}

var _ error = (*InvalidInputError)(nil)

func (e InvalidInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Invalid input for day %d on line %d (%q): %s", e.Day, e.Line, e.Text, e.Reason)
	}

	if e.Text != "" {
		return fmt.Sprintf("Invalid input for day %d (%q): %s", e.Day, e.Text, e.Reason)
	}
	return fmt.Sprintf("Invalid input for day %d: %s", e.Day, e.Reason)
}
