// internal/state/play_state.go
package state

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"simcanvas/internal/config"
	"simcanvas/internal/session"
	"simcanvas/pkg/render/ebitensurface"
)

var _ State = (*PlayState)(nil)

// PlayState pulls one frame per tick. R clears the canvas, Space or P
// pauses.
type PlayState struct {
	sm      *StateMachine
	ctx     context.Context
	session *session.Session
	surface *ebitensurface.Surface
	status  bool
}

func NewPlayState(ctx context.Context, sm *StateMachine, s *session.Session, surface *ebitensurface.Surface) *PlayState {
	return &PlayState{sm: sm, ctx: ctx, session: s, surface: surface, status: true}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) {
	if pausePressed() {
		p.sm.SetState(NewPauseState(p.sm, p))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		p.status = !p.status
	}
	p.session.Advance(p.ctx)
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	p.surface.DrawTo(screen)
	if !p.status {
		return
	}
	msg := fmt.Sprintf("%s  frame %d  shapes %d", p.session.SourceName(), p.session.Frames(), len(p.session.Last()))
	if p.session.Ended() {
		msg += "  (ended)"
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, 2)
}

func (p *PlayState) Exit() {}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}
