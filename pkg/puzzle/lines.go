package puzzle

import "strings"

// Lines splits an input into lines. Carriage returns are dropped and a single trailing newline doesn't produce an
// empty last line.
func Lines(input []byte) []string {
	text := strings.ReplaceAll(string(input), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
