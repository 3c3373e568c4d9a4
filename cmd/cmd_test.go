package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diivanand/AdventOfCode2025/pkg/answers"
	"github.com/diivanand/AdventOfCode2025/pkg/input"
	"github.com/diivanand/AdventOfCode2025/pkg/store"
)

const day1Example = "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n"

// testEnv points the config at a temporary directory and returns it.
func testEnv(t *testing.T, stdin string) string {
	dir := t.TempDir()
	t.Setenv("CI", "true")
	t.Setenv("AOC_INPUTS", filepath.Join(dir, "inputs"))
	t.Setenv("AOC_ANSWERS", filepath.Join(dir, "answers.yml"))
	t.Setenv("AOC_CACHE_PATH", filepath.Join(dir, "cache.db"))

	oldStdin, oldStderr := env.stdin, env.stderr
	env.stdin = strings.NewReader(stdin)
	env.stderr = &bytes.Buffer{}
	t.Cleanup(func() {
		env.stdin, env.stderr = oldStdin, oldStderr
		runFlags.input, runFlags.part, runFlags.force, runFlags.noCache, runFlags.answers = "", 0, false, false, ""
		answersRecordFlags.input, answersRecordFlags.force = "", false
		globalFlags.configFile, globalFlags.verbose, globalFlags.json = "", false, false
	})

	return dir
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseDays(t *testing.T) {
	days, err := parseDays(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, days)

	days, err = parseDays([]string{"3", "day01", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, days)

	days, err = parseDays([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, days)

	_, err = parseDays([]string{"x"})
	assert.Error(t, err)

	_, err = parseDays([]string{"25"})
	assert.Error(t, err)
}

func TestRunFromStdinRecordsCache(t *testing.T) {
	dir := testEnv(t, day1Example)

	out, err := execute("run")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 01: Secret Entrance")
	assert.Contains(t, out, "Part 1: 3 (")
	assert.NotContains(t, out, "(cached)")

	// the second run is answered from the cache
	env.stdin = strings.NewReader(day1Example)
	out, err = execute("run")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 01: Secret Entrance")
	assert.Contains(t, out, "(cached)")

	cache, err := store.Open(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	defer cache.Close()

	entries, err := cache.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, strings.HasPrefix(entries[0].Key, "day01/part1/"))
	assert.Equal(t, int64(3), entries[0].Value)
	assert.Equal(t, int64(6), entries[1].Value)
}

func TestRunDetectsWrongAnswer(t *testing.T) {
	dir := testEnv(t, "")
	inputPath := filepath.Join(dir, "example.txt")
	require.NoError(t, ioutil.WriteFile(inputPath, []byte(day1Example), 0600))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "answers.yml"), []byte("day01:\n  part1: 3\n  part2: 7\n"), 0600))

	out, err := execute("run", "1", "--input", inputPath, "--no-cache")
	assert.Error(t, err)
	assert.Contains(t, out, "(wrong, expected 7)")

	out, err = execute("run", "1", "--input", inputPath, "--no-cache", "--part", "1")
	assert.NoError(t, err)
	assert.Contains(t, out, "(correct)")
	assert.NotContains(t, out, "Part 2")
}

func TestRunRejectsInputForSeveralDays(t *testing.T) {
	testEnv(t, "")
	_, err := execute("run", "1", "2", "--input", "x.txt")
	assert.Error(t, err)

	// without input files there is nothing to read for several days
	runFlags.input = ""
	_, err = execute("run", "all", "--no-cache")
	assert.Error(t, err)
}

func TestAnswersRecord(t *testing.T) {
	dir := testEnv(t, "")
	dayDir := filepath.Dir(input.DefaultPath(filepath.Join(dir, "inputs"), 3))
	require.NoError(t, os.MkdirAll(dayDir, 0700))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dayDir, "input.txt"),
		[]byte("987654321111111\n811111111111119\n234234234234278\n818181911112111\n"), 0600))

	out, err := execute("answers", "record", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 03: Lobby")
	assert.Contains(t, out, "Updating "+filepath.Join(dir, "answers.yml"))

	known, err := answers.Load(filepath.Join(dir, "answers.yml"))
	require.NoError(t, err)
	value, ok := known.Expected(3, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(3121910778619), value)

	// the recorded answers now verify the next run
	_, err = execute("run", "3", "--force")
	assert.NoError(t, err)
}

func TestListAndCache(t *testing.T) {
	testEnv(t, day1Example)

	out, err := execute("list")
	require.NoError(t, err)
	assert.Contains(t, out, "day 01: Secret Entrance")
	assert.Contains(t, out, "day 02: Gift Shop")
	assert.Contains(t, out, "day 03: Lobby")

	out, err = execute("cache", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "The cache is empty.")

	_, err = execute("run", "1")
	require.NoError(t, err)

	out, err = execute("cache", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "day01/part1/")

	out, err = execute("cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2 cached answer(s)")

	out, err = execute("cache", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "The cache is empty.")
}

func TestInvalidConfig(t *testing.T) {
	testEnv(t, "")
	t.Setenv("AOC_LOG_LEVEL", "loud")

	_, err := execute("list")
	assert.Error(t, err)
}
