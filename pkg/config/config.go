package config

import (
	"os"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// DefaultFile is loaded from the project root when no other config file is passed.
const DefaultFile = "aoc.toml"

// Config describes all configuration options
type Config struct {
	Inputs   string `default:"inputs" toml:"inputs" env:"INPUTS" usage:"Directory containing dayNN/input.txt files"`
	Answers  string `default:"answers.yml" toml:"answers" env:"ANSWERS" usage:"YAML file with the known answers"`
	Workers  int    `default:"0" toml:"workers" env:"WORKERS" usage:"Maximum number of goroutines per solver (0 uses all CPUs)"`
	Progress bool   `default:"true" toml:"progress" env:"PROGRESS" usage:"Show progress bars for slow solvers"`
	Cache    struct {
		Path    string `default:".aoc/cache.db" toml:"path" env:"PATH" usage:"Location of the answer cache"`
		Enabled bool   `default:"true" toml:"enabled" env:"ENABLED"`
	} `toml:"cache" env:"CACHE"`
	Log struct {
		Level string `default:"info" toml:"level" env:"LEVEL"`
		JSON  bool   `default:"false" toml:"json" env:"JSON" usage:"Output JSONND instead of pretty console messages"`
	} `toml:"log" env:"LOG"`
}

var logLevels = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
}

// Load reads the defaults, the config file (if it exists) and the AOC_* environment variables, in that order.
func Load(file string) (*Config, error) {
	cfg := Config{}
	files := []string{}
	if file != "" {
		_, err := os.Stat(file)
		if err == nil {
			files = append(files, file)
		} else if !eris.Is(err, os.ErrNotExist) {
			return nil, eris.Wrapf(err, "Failed to check config file %s", file)
		}
	}

	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix:        "AOC",
		SkipFlags:        true,
		AllowUnknownEnvs: true,
		Files:            files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return nil, eris.Wrap(err, "Failed to load configuration")
	}

	if os.Getenv("CI") == "true" {
		cfg.Progress = false
	}

	return &cfg, nil
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	_, ok := logLevels[cfg.Log.Level]
	if !ok {
		return eris.Errorf(`Invalid value for log.level: %s`, cfg.Log.Level)
	}

	if cfg.Workers < 0 {
		return eris.Errorf(`Invalid value for workers: %d (must be 0 or more)`, cfg.Workers)
	}

	if cfg.Cache.Enabled && cfg.Cache.Path == "" {
		return eris.New(`cache.path can't be empty while the cache is enabled`)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (cfg *Config) LogLevel() zerolog.Level {
	return logLevels[cfg.Log.Level]
}
