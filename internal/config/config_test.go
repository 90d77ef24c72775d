package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without config file", func(t *testing.T) {
		// Given: no config file and no environment overrides
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FILE", "")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("LOG_FILE")

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: the defaults are used
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "warn"}, conf)
	})

	t.Run("Environment without config file", func(t *testing.T) {
		// Given: environment overrides
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FILE", "/tmp/tictactoe.log")

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: the environment values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "/tmp/tictactoe.log", conf.LogFile)
	})

	t.Run("Config file", func(t *testing.T) {
		// Given: a config.yml
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FILE", "")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("LOG_FILE")

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: info\nlog-file: game.log\n"), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "game.log", conf.LogFile)
	})

	t.Run("Broken config file", func(t *testing.T) {
		// Given: a config.yml that is not YAML
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [info\n"), 0o600))

		// When: loading the config
		_, err := Load(path)

		// Then: an error is returned and MustLoad panics
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
