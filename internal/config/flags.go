// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags binds the command-line switches shared by the viewers and the
// snapshot tool. Flags that are set override the config file.
type Flags struct {
	fs *flag.FlagSet

	path    string
	width   int
	height  int
	tps     int
	feed    string
	src     string
	request string
	seed    int64
	frames  int
	legacy  bool
	record  string
	pdf     string
	every   int
}

func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.path, "config", "", "config file (.json or .toml)")
	fs.IntVar(&f.width, "width", ScreenWidth, "canvas width in pixels")
	fs.IntVar(&f.height, "height", ScreenHeight, "canvas height in pixels")
	fs.IntVar(&f.tps, "tps", TPS, "frames per second")
	fs.StringVar(&f.feed, "feed", FeedDemo, "frame source: demo, file or ws")
	fs.StringVar(&f.src, "src", "", "file path (\"-\" for stdin) or ws:// URL")
	fs.StringVar(&f.request, "request", "", "message sent after a websocket connects")
	fs.Int64Var(&f.seed, "seed", 0, "demo seed (0 = random)")
	fs.IntVar(&f.frames, "frames", 0, "stop the demo after this many frames (0 = never)")
	fs.BoolVar(&f.legacy, "legacy-circles", false, "do not paint circles")
	fs.StringVar(&f.record, "record", "", "write PNG frames to this directory")
	fs.StringVar(&f.pdf, "pdf", "", "write frames as pages of this PDF")
	fs.IntVar(&f.every, "every", RecordEvery, "record one frame out of every n")
	return f
}

// Config loads the -config file, or the defaults, then applies the flags
// given on the command line and validates the result.
func (f *Flags) Config() (Config, error) {
	cfg := Default()
	if f.path != "" {
		var err error
		if cfg, err = Load(f.path); err != nil {
			return cfg, err
		}
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Width = f.width
		case "height":
			cfg.Height = f.height
		case "tps":
			cfg.TPS = f.tps
		case "feed":
			cfg.Feed.Kind = f.feed
		case "src":
			cfg.Feed.Source = f.src
		case "request":
			cfg.Feed.Request = f.request
		case "seed":
			cfg.Sim.Seed = f.seed
		case "frames":
			cfg.Sim.Frames = f.frames
		case "legacy-circles":
			cfg.LegacyCircles = f.legacy
		case "record":
			cfg.Record.Dir = f.record
		case "pdf":
			cfg.Record.PDF = f.pdf
		case "every":
			cfg.Record.Every = f.every
		}
	})
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
