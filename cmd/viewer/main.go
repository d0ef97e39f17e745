// cmd/viewer/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"simcanvas/internal/canvas"
	"simcanvas/internal/config"
	"simcanvas/internal/event"
	"simcanvas/internal/record"
	"simcanvas/internal/session"
	"simcanvas/internal/state"
	"simcanvas/pkg/render/ebitensurface"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	flags := config.NewFlags(flag.CommandLine)
	pprof := flag.Bool("pprof", false, "serve net/http/pprof on "+config.PprofAddr)
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	if *pprof {
		go func() {
			log.Println(http.ListenAndServe(config.PprofAddr, nil))
		}()
	}
	if err := run(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	src, err := cfg.OpenFeed(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	module, err := canvas.New(ebitensurface.Host{}, cfg.Width, cfg.Height, cfg.CanvasOptions()...)
	if err != nil {
		return err
	}
	surface := module.Surface().(*ebitensurface.Surface)

	dispatcher := event.NewDispatcher()
	rec, err := openRecorder(cfg)
	if err != nil {
		return err
	}
	if rec != nil {
		dispatcher.Subscribe(event.FrameRendered, rec)
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("WARNING: %v", err)
			}
			log.Printf("recorded %d frames", rec.Written())
		}()
	}
	dispatcher.Subscribe(event.FeedClosed, feedLogger{})

	sm := state.NewStateMachine()
	sess := session.New(module, src, dispatcher, cfg.PollTimeout())
	sm.SetState(state.NewPlayState(ctx, sm, sess, surface))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Width,
		height:         cfg.Height,
	}
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle + " | " + src.Name() + " | Space/P pause, R reset, H status")
	return ebiten.RunGame(app)
}

func openRecorder(cfg config.Config) (*record.Recorder, error) {
	switch {
	case cfg.Record.PDF != "":
		return record.NewPDF(cfg.Record.PDF, cfg.Width, cfg.Height, cfg.Record.Every, cfg.CanvasOptions()...)
	case cfg.Record.Dir != "":
		return record.NewPNG(cfg.Record.Dir, cfg.Width, cfg.Height, cfg.Record.Every, cfg.CanvasOptions()...)
	}
	return nil, nil
}

// feedLogger reports why the feed stopped.
type feedLogger struct{}

func (feedLogger) OnEvent(e event.Event) {
	if err, ok := e.Data.(error); ok && err != nil {
		log.Printf("WARNING: feed stopped: %v", err)
		return
	}
	log.Println("feed finished, showing the last frame")
}
