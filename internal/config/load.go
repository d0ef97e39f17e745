// internal/config/load.go
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"simcanvas/internal/canvas"
	"simcanvas/internal/feed"
	"simcanvas/internal/sim"
)

// ErrUnsupportedFormat is returned by Load for files that are neither
// .json nor .toml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Feed kinds.
const (
	FeedDemo      = "demo"
	FeedFile      = "file"
	FeedWebSocket = "ws"
)

// Config holds everything a viewer needs. Zero-valued fields in a file keep
// their defaults.
type Config struct {
	Width         int          `json:"width" toml:"width"`
	Height        int          `json:"height" toml:"height"`
	TPS           int          `json:"tps" toml:"tps"`
	StrokeWidth   float64      `json:"stroke_width" toml:"stroke_width"`
	LegacyCircles bool         `json:"legacy_circles" toml:"legacy_circles"`
	Feed          FeedConfig   `json:"feed" toml:"feed"`
	Sim           SimConfig    `json:"sim" toml:"sim"`
	Record        RecordConfig `json:"record" toml:"record"`
}

type FeedConfig struct {
	Kind          string `json:"kind" toml:"kind"`
	Source        string `json:"source" toml:"source"`   // file path, "-" or ws:// URL
	Request       string `json:"request" toml:"request"` // sent once after a websocket connects
	PollTimeoutMS int    `json:"poll_timeout_ms" toml:"poll_timeout_ms"`
}

type SimConfig struct {
	Forwards int     `json:"forwards" toml:"forwards"`
	Defense  int     `json:"defense" toml:"defense"`
	Seed     int64   `json:"seed" toml:"seed"`
	Friction float64 `json:"friction" toml:"friction"`
	Frames   int     `json:"frames" toml:"frames"` // 0 runs forever
}

type RecordConfig struct {
	Dir   string `json:"dir" toml:"dir"`
	PDF   string `json:"pdf" toml:"pdf"`
	Every int    `json:"every" toml:"every"`
}

// Default returns the built-in configuration: the demo rink on a
// ScreenWidth×ScreenHeight canvas.
func Default() Config {
	rink := sim.DefaultConfig()
	return Config{
		Width:       ScreenWidth,
		Height:      ScreenHeight,
		TPS:         TPS,
		StrokeWidth: StrokeWidth,
		Feed: FeedConfig{
			Kind:          FeedDemo,
			PollTimeoutMS: PollTimeoutMS,
		},
		Sim: SimConfig{
			Forwards: rink.Forwards,
			Defense:  rink.Defense,
			Friction: rink.Friction,
		},
		Record: RecordConfig{Every: RecordEvery},
	}
}

// Load reads a .json or .toml file over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to unmarshal %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to unmarshal %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: got %dx%d", canvas.ErrInvalidSize, c.Width, c.Height)
	case c.TPS <= 0 || c.TPS > 240:
		return fmt.Errorf("tps must be in 1..240, got %d", c.TPS)
	case c.StrokeWidth <= 0:
		return fmt.Errorf("stroke_width must be positive, got %g", c.StrokeWidth)
	case c.Feed.PollTimeoutMS <= 0:
		return fmt.Errorf("feed.poll_timeout_ms must be positive, got %d", c.Feed.PollTimeoutMS)
	case c.Record.Every <= 0:
		return fmt.Errorf("record.every must be positive, got %d", c.Record.Every)
	case c.Sim.Forwards < 0 || c.Sim.Defense < 0:
		return fmt.Errorf("sim skater counts must not be negative")
	case c.Sim.Friction < 0:
		return fmt.Errorf("sim.friction must not be negative, got %g", c.Sim.Friction)
	case c.Sim.Frames < 0:
		return fmt.Errorf("sim.frames must not be negative, got %d", c.Sim.Frames)
	}
	switch c.Feed.Kind {
	case FeedDemo:
	case FeedFile, FeedWebSocket:
		if c.Feed.Source == "" {
			return fmt.Errorf("feed %q needs a source", c.Feed.Kind)
		}
	default:
		return fmt.Errorf("unknown feed kind %q", c.Feed.Kind)
	}
	return nil
}

// CanvasOptions translates the drawing settings into canvas options.
func (c Config) CanvasOptions() []canvas.Option {
	opts := []canvas.Option{canvas.WithStrokeWidth(c.StrokeWidth)}
	if c.LegacyCircles {
		opts = append(opts, canvas.WithLegacyCircles())
	}
	return opts
}

// PollTimeout is how long a viewer tick waits for the next frame.
func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.Feed.PollTimeoutMS) * time.Millisecond
}

// RinkConfig builds the demo rink settings.
func (c Config) RinkConfig() sim.Config {
	rc := sim.DefaultConfig()
	rc.Forwards = c.Sim.Forwards
	rc.Defense = c.Sim.Defense
	rc.Seed = c.Sim.Seed
	rc.Friction = c.Sim.Friction
	return rc
}

// OpenFeed opens the configured frame source.
func (c Config) OpenFeed(ctx context.Context) (feed.Source, error) {
	var (
		src feed.Source
		err error
	)
	switch c.Feed.Kind {
	case FeedDemo:
		src, err = openDemo(c)
	case FeedFile:
		src, err = openFile(c.Feed.Source)
	case FeedWebSocket:
		var req []byte
		if c.Feed.Request != "" {
			req = []byte(c.Feed.Request)
		}
		src, err = dialWebSocket(ctx, c.Feed.Source, req)
	default:
		err = fmt.Errorf("config: unknown feed kind %q", c.Feed.Kind)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

func openDemo(c Config) (feed.Source, error) {
	d, err := feed.NewDemo(c.RinkConfig(), 1/float64(c.TPS), c.Sim.Frames)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func openFile(path string) (feed.Source, error) {
	j, err := feed.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func dialWebSocket(ctx context.Context, url string, req []byte) (feed.Source, error) {
	ws, err := feed.DialWebSocket(ctx, url, req)
	if err != nil {
		return nil, err
	}
	return ws, nil
}
