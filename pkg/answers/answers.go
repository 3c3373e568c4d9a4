// Package answers reads and writes the YAML file with the known answers for each day.
//
// The file looks like this:
//
//	day01:
//	  part1: 1177
//	  part2: 6768
package answers

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

type DayAnswers struct {
	Part1 *int64 `yaml:"part1,omitempty"`
	Part2 *int64 `yaml:"part2,omitempty"`
}

// Set maps day keys (day01, day02, ...) to their answers.
type Set map[string]DayAnswers

func dayKey(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// Load reads the answers file. A missing file results in an empty set.
func Load(path string) (Set, error) {
	set := Set{}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return set, nil
		}
		return nil, eris.Wrapf(err, "Could not open file %s.", path)
	}

	err = yaml.Unmarshal(data, &set)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to parse %s.", path)
	}

	for key := range set {
		if _, err := parseDayKey(key); err != nil {
			return nil, eris.Wrapf(err, "Failed to parse %s.", path)
		}
	}

	return set, nil
}

func parseDayKey(key string) (int, error) {
	if !strings.HasPrefix(key, "day") {
		return 0, eris.Errorf("Invalid key %s (expected dayNN)", key)
	}

	day, err := strconv.Atoi(key[3:])
	if err != nil || day < 1 {
		return 0, eris.Errorf("Invalid key %s (expected dayNN)", key)
	}

	return day, nil
}

// Save writes the set to path.
func (s Set) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return eris.Wrap(err, "Failed to encode answers")
	}

	err = ioutil.WriteFile(path, data, os.FileMode(0660))
	if err != nil {
		return eris.Wrapf(err, "Failed to write %s", path)
	}

	return nil
}

// Expected returns the known answer for the given part.
func (s Set) Expected(day int, part int) (int64, bool) {
	entry, ok := s[dayKey(day)]
	if !ok {
		return 0, false
	}

	var value *int64
	switch part {
	case 1:
		value = entry.Part1
	case 2:
		value = entry.Part2
	}

	if value == nil {
		return 0, false
	}
	return *value, true
}

// Record stores value as the answer for the given part, replacing any previous answer.
func (s Set) Record(day int, part int, value int64) error {
	entry := s[dayKey(day)]
	switch part {
	case 1:
		entry.Part1 = &value
	case 2:
		entry.Part2 = &value
	default:
		return eris.Errorf("Invalid part %d", part)
	}

	s[dayKey(day)] = entry
	return nil
}
