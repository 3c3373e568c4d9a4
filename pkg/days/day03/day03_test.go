package day03

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diivanand/AdventOfCode2025/pkg/puzzle"
)

const example = `987654321111111
811111111111119
234234234234278
818181911112111
`

func TestExample(t *testing.T) {
	ctx := context.Background()

	part1, err := Solver{}.Part1(ctx, []byte(example))
	require.NoError(t, err)
	assert.Equal(t, int64(357), part1)

	part2, err := Solver{}.Part2(ctx, []byte(example))
	require.NoError(t, err)
	assert.Equal(t, int64(3121910778619), part2)
}

func TestMaxJoltage(t *testing.T) {
	banks, err := ParseBanks([]byte(example), Part1Batteries)
	require.NoError(t, err)
	require.Len(t, banks, 4)

	tests := []struct {
		bank    int
		count   int
		joltage int64
	}{
		{0, 2, 98},
		{1, 2, 89},
		{2, 2, 78},
		{3, 2, 92},
		{0, 12, 987654321111},
		{1, 12, 811111111119},
		{2, 12, 434234234278},
		{3, 12, 888911112111},
		{0, 15, 987654321111111},
		{1, 1, 9},
	}

	for _, tt := range tests {
		joltage, err := banks[tt.bank].MaxJoltage(tt.count)
		require.NoError(t, err)
		assert.Equal(t, tt.joltage, joltage, "bank %d with %d batteries", tt.bank, tt.count)
	}

	_, err = banks[0].MaxJoltage(16)
	assert.Error(t, err)

	_, err = banks[0].MaxJoltage(0)
	assert.Error(t, err)
}

func TestPrefersLeftmostMaximum(t *testing.T) {
	joltage, err := Bank{9, 1, 9, 1}.MaxJoltage(2)
	require.NoError(t, err)
	assert.Equal(t, int64(99), joltage)
}

func TestParseBanks(t *testing.T) {
	banks, err := ParseBanks([]byte("12\r\n\n345\n"), Part1Batteries)
	require.NoError(t, err)
	assert.Equal(t, []Bank{{1, 2}, {3, 4, 5}}, banks)

	_, err = ParseBanks([]byte("12\n1\n"), Part1Batteries)
	var inputErr puzzle.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 2, inputErr.Line)

	_, err = ParseBanks([]byte("12a4\n"), Part1Batteries)
	assert.ErrorAs(t, err, &inputErr)

	_, err = ParseBanks([]byte("123\n"), 4)
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 1, inputErr.Line)
	assert.Contains(t, inputErr.Reason, "at least 4 batteries")
}

func TestPart2RejectsShortBanks(t *testing.T) {
	_, err := Solver{}.Part2(context.Background(), []byte("987654321111\n12345\n"))
	var inputErr puzzle.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 2, inputErr.Line)
	assert.Equal(t, "12345", inputErr.Text)

	// the same bank is fine for part 1
	joltage, err := Solver{}.Part1(context.Background(), []byte("12345\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(45), joltage)
}
