package answers

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "answers.yml"))
	require.NoError(t, err)
	assert.Empty(t, set)

	_, ok := set.Expected(1, 1)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte("day01:\n  part1: 1177\n  part2: 6768\nday03:\n  part1: 16927\n"), 0600))

	set, err := Load(path)
	require.NoError(t, err)

	value, ok := set.Expected(1, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(6768), value)

	value, ok = set.Expected(3, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(16927), value)

	_, ok = set.Expected(3, 2)
	assert.False(t, ok)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"syntax.yml": "day01: [",
		"key.yml":    "first:\n  part1: 1\n",
		"value.yml":  "day01:\n  part1: abc\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))

		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestRecordAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte("day02:\n  part1: 5\n"), 0600))

	set, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, set.Record(1, 1, 3))
	require.NoError(t, set.Record(1, 2, 6))
	require.NoError(t, set.Record(2, 1, 8))
	assert.Error(t, set.Record(1, 3, 0))
	require.NoError(t, set.Save(path))

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "day01:\n    part1: 3\n    part2: 6\nday02:\n    part1: 8\n", string(data))

	reloaded, err := Load(path)
	require.NoError(t, err)
	value, ok := reloaded.Expected(2, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(8), value)
}
