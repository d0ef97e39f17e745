// cmd/snapshot/main.go
//
// snapshot renders frames from a feed without opening a window and saves
// them as PNG files or as pages of one PDF.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"simcanvas/internal/canvas"
	"simcanvas/internal/config"
	"simcanvas/internal/event"
	"simcanvas/internal/record"
	"simcanvas/internal/session"
)

const defaultFrames = 100

func main() {
	flags := config.NewFlags(flag.CommandLine)
	out := flag.String("out", "frames", "PNG output directory when neither -record nor -pdf is given")
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Record.Dir == "" && cfg.Record.PDF == "" {
		cfg.Record.Dir = *out
	}
	if cfg.Feed.Kind == config.FeedDemo && cfg.Sim.Frames == 0 {
		cfg.Sim.Frames = defaultFrames
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n, err := run(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames", n)
}

// run plays the whole feed through the recorder. Live
// feeds run until they close or ctx is cancelled.
func run(ctx context.Context, cfg config.Config) (int, error) {
	src, err := cfg.OpenFeed(ctx)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	// The recorder paints on its own canvas, so the session needs none.
	module, err := canvas.New(canvas.Discard, cfg.Width, cfg.Height, cfg.CanvasOptions()...)
	if err != nil {
		return 0, err
	}

	var rec *record.Recorder
	if cfg.Record.PDF != "" {
		rec, err = record.NewPDF(cfg.Record.PDF, cfg.Width, cfg.Height, cfg.Record.Every, cfg.CanvasOptions()...)
	} else {
		rec, err = record.NewPNG(cfg.Record.Dir, cfg.Width, cfg.Height, cfg.Record.Every, cfg.CanvasOptions()...)
	}
	if err != nil {
		return 0, err
	}

	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.FrameRendered, rec)
	sess := session.New(module, src, dispatcher, cfg.PollTimeout())
	for !sess.Ended() {
		sess.Advance(ctx)
	}

	if err := rec.Close(); err != nil {
		return rec.Written(), err
	}
	if err := rec.Err(); err != nil {
		return rec.Written(), err
	}
	if err := sess.Err(); err != nil && ctx.Err() == nil {
		return rec.Written(), err
	}
	return rec.Written(), nil
}
