package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f.Config()
}

func TestFlagsDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "viewer.toml", "width = 800\n[sim]\nseed = 3\nforwards = 4\n")
	cfg, err := parse(t, "-config", path, "-seed", "9", "-legacy-circles", "-record", "out", "-every", "10")
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, int64(9), cfg.Sim.Seed)
	assert.Equal(t, 4, cfg.Sim.Forwards)
	assert.True(t, cfg.LegacyCircles)
	assert.Equal(t, "out", cfg.Record.Dir)
	assert.Equal(t, 10, cfg.Record.Every)
}

func TestFlagsValidate(t *testing.T) {
	_, err := parse(t, "-feed", "ws")
	assert.Error(t, err)

	cfg, err := parse(t, "-feed", "ws", "-src", "ws://localhost:8521/ws", "-width", "320", "-height", "240")
	require.NoError(t, err)
	assert.Equal(t, FeedWebSocket, cfg.Feed.Kind)
	assert.Equal(t, 320, cfg.Width)
}
