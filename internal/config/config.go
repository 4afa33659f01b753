package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string   `yaml:"log-level" env:"PLAYGROUND_LOG_LEVEL" env-default:"info"`
	MinRunLength int      `yaml:"min-run-length" env:"PLAYGROUND_MIN_RUN_LENGTH" env-default:"2"`
	Simulate     Simulate `yaml:"simulate"`
}

type Simulate struct {
	Seed  uint64 `yaml:"seed" env:"PLAYGROUND_SIMULATE_SEED" env-default:"1"`
	Moves int    `yaml:"moves" env:"PLAYGROUND_SIMULATE_MOVES" env-default:"40"`
	Span  int    `yaml:"span" env:"PLAYGROUND_SIMULATE_SPAN" env-default:"9"`
}

// Load - reads the YAML file at path; a missing file falls back to environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
