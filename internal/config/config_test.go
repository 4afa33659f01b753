package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the YAML file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nmin-run-length: 4\nsimulate:\n  seed: 9\n  moves: 12\n  span: 5\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: every field comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 4, conf.MinRunLength)
		assert.Equal(t, Simulate{Seed: 9, Moves: 12, Span: 5}, conf.Simulate)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 2, conf.MinRunLength)
		assert.Equal(t, Simulate{Seed: 1, Moves: 40, Span: 9}, conf.Simulate)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: a span in the environment
		t.Setenv("PLAYGROUND_SIMULATE_SPAN", "15")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, 15, conf.Simulate.Span)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		// Given: malformed YAML
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("min-run-length: [oops"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: the error is reported
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
		assert.Panics(t, func() { MustLoad(path) })
	})
}
