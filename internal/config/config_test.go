package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads players and redis settings", func(t *testing.T) {
		// Given: a config file with custom players and redis enabled
		path := writeConfig(t, `
log-level: debug
players:
  first: {id: alice, color: b}
  second: {id: bob, color: w}
redis:
  enabled: true
  host: cache
  port: "6380"
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: every value is picked up
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Player{ID: "alice", Color: "b"}, conf.Players.First)
		assert.Equal(t, Player{ID: "bob", Color: "w"}, conf.Players.Second)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.False(t, conf.Console.NoColor)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "console:\n  no-color: true\n")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults fill the gaps
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, Player{ID: "PlayerA", Color: "R"}, conf.Players.First)
		assert.Equal(t, Player{ID: "PlayerB", Color: "G"}, conf.Players.Second)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.True(t, conf.Console.NoColor)
	})

	t.Run("Missing file", func(t *testing.T) {
		// When: loading a file that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: an error is returned
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
