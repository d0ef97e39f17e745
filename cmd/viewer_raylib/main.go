// cmd/viewer_raylib/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"simcanvas/internal/canvas"
	"simcanvas/internal/config"
	"simcanvas/internal/event"
	"simcanvas/internal/session"
	"simcanvas/internal/ui"
	"simcanvas/pkg/render/rlsurface"
)

func main() {
	flags := config.NewFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Record.Dir != "" || cfg.Record.PDF != "" {
		log.Println("WARNING: recording is only supported by cmd/viewer and cmd/snapshot, ignoring -record/-pdf")
	}

	ctx := context.Background()
	src, err := cfg.OpenFeed(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	// --- Window ---
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), config.WindowTitle+" | "+src.Name()+" | Space/P pause, R reset")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TPS))
	background := rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, config.BackgroundColor.A)
	overlay := rl.NewColor(config.OverlayColor.R, config.OverlayColor.G, config.OverlayColor.B, config.OverlayColor.A)

	module, err := canvas.New(rlsurface.Host{}, cfg.Width, cfg.Height, cfg.CanvasOptions()...)
	if err != nil {
		log.Fatal(err)
	}
	surface := module.Surface().(*rlsurface.Surface)
	defer surface.Unload()

	dispatcher := event.NewDispatcher()
	sess := session.New(module, src, dispatcher, cfg.PollTimeout())
	paused := false
	pauseButton := ui.NewPauseButtonRL(float32(cfg.Width-config.HUDOffset), config.HUDOffset, config.HUDButtonSize, config.TextDarkColor, config.LiveColor)
	indicator := ui.NewFeedIndicatorRL(float32(cfg.Width-3*config.HUDOffset), config.HUDOffset, config.HUDButtonSize/2)

	// --- Main loop ---
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP) ||
			(rl.IsMouseButtonPressed(rl.MouseButtonLeft) && pauseButton.IsClicked(rl.GetMousePosition())) {
			paused = !paused
			pauseButton.SetPaused(paused)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			sess.Reset()
		}
		if !paused && sess.Advance(ctx) {
			indicator.Pulse()
		}

		rl.BeginDrawing()
		rl.ClearBackground(background)
		surface.DrawTo()

		status := fmt.Sprintf("%s  frame %d  shapes %d", sess.SourceName(), sess.Frames(), len(sess.Last()))
		if sess.Ended() {
			status += " (ended)"
		}
		rl.DrawText(status, 4, 4, config.StatusFontSize, rl.DarkGray)
		switch {
		case sess.Ended():
			indicator.Draw(config.EndedColor)
		case paused:
			indicator.Draw(config.PausedColor)
		default:
			indicator.Draw(config.LiveColor)
		}

		if paused {
			rl.DrawRectangle(0, 0, int32(cfg.Width), int32(cfg.Height), overlay)
			textWidth := rl.MeasureText(config.PauseLabel, config.PauseFontSize)
			rl.DrawText(config.PauseLabel, (int32(cfg.Width)-textWidth)/2, int32(cfg.Height)/2-config.PauseFontSize/2, config.PauseFontSize, rl.White)
		}
		pauseButton.Draw()
		rl.EndDrawing()
	}
}
