package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/focus-backend/internal/config"
	"github.com/rocketscienceinc/focus-backend/internal/focus"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		Players: config.Players{
			First:  config.Player{ID: "alice", Color: "b"},
			Second: config.Player{ID: "bob", Color: "w"},
		},
		Console: config.Console{NoColor: true},
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Runs a console session without redis", func(t *testing.T) {
		// Given: a config with redis disabled and a scripted session
		var out bytes.Buffer
		in := strings.NewReader("move alice 0 1 0 2 1\nstatus\nquit\n")

		// When: the application runs
		err := Run(context.Background(), logger, testConfig(), in, &out)

		// Then: the session completes on the configured players
		require.NoError(t, err)
		assert.Contains(t, out.String(), "alice moved 1 piece(s) (0,1) -> (0,2)")
		assert.Contains(t, out.String(), "status: unfinished, bob to play")
	})

	t.Run("Rejects players sharing a color", func(t *testing.T) {
		conf := testConfig()
		conf.Players.Second.Color = "B"

		err := Run(context.Background(), logger, conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, focus.ErrDuplicateColor)
	})

	t.Run("Requires a redis host when redis is enabled", func(t *testing.T) {
		conf := testConfig()
		conf.Redis.Enabled = true

		err := Run(context.Background(), logger, conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
