package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("CI", "")
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "inputs", cfg.Inputs)
	assert.Equal(t, "answers.yml", cfg.Answers)
	assert.Equal(t, ".aoc/cache.db", cfg.Cache.Path)
	assert.True(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Progress)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
}

func TestFileAndEnv(t *testing.T) {
	t.Setenv("CI", "")
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, ioutil.WriteFile(path, []byte(`inputs = "puzzles"
workers = 4

[cache]
enabled = false

[log]
level = "debug"
`), 0600))
	t.Setenv("AOC_WORKERS", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "puzzles", cfg.Inputs)
	assert.Equal(t, 2, cfg.Workers)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
}

func TestCIDisablesProgress(t *testing.T) {
	t.Setenv("CI", "true")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Progress)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg.Log.Level = "warn"
	cfg.Workers = -1
	assert.Error(t, cfg.Validate())

	cfg.Workers = 0
	cfg.Cache.Enabled = true
	assert.Error(t, cfg.Validate())

	cfg.Cache.Path = "cache.db"
	assert.NoError(t, cfg.Validate())
}

func TestUnreadableConfigPath(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0000))
	defer os.Chmod(dir, 0700)

	_, err := Load(filepath.Join(dir, DefaultFile))
	assert.Error(t, err)
}
