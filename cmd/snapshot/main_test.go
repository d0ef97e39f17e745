package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcanvas/internal/config"
)

func TestRunDemoToPNG(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 120, 102
	cfg.Sim.Seed = 4
	cfg.Sim.Frames = 6
	cfg.Record.Dir = t.TempDir()
	cfg.Record.Every = 2

	n, err := run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	entries, err := os.ReadDir(cfg.Record.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRunFileToPDF(t *testing.T) {
	dir := t.TempDir()
	frames := filepath.Join(dir, "frames.jsonl")
	require.NoError(t, os.WriteFile(frames, []byte(
		`[{"kind":"rect","x":0.5,"y":0.5,"w":0.2,"h":0.1,"color":"#ff0000","filled":true}]`+"\n"+
			`not json`+"\n"+
			`[{"Shape":"circle","x":0.5,"y":0.5,"r":0.1,"Color":"Blue","Filled":"true"}]`+"\n"), 0o644))

	cfg := config.Default()
	cfg.Width, cfg.Height = 400, 300
	cfg.Feed.Kind = config.FeedFile
	cfg.Feed.Source = frames
	cfg.Record.PDF = filepath.Join(dir, "out.pdf")

	n, err := run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	info, err := os.Stat(cfg.Record.PDF)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
