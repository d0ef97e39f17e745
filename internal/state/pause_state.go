// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"simcanvas/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState keeps showing the previous state's last frame under a dim
// overlay until Space or P is pressed again.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          basicfont.Face7x13,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if pausePressed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.OverlayColor, false)

	bounds := text.BoundString(s.font, config.PauseLabel)
	x := (b.Dx() - bounds.Dx()) / 2
	y := (b.Dy() + bounds.Dy()) / 2
	text.Draw(screen, config.PauseLabel, s.font, x, y, config.TextLightColor)
}

func (s *PauseState) Exit() {}

// Previous returns the state resumed on unpause.
func (s *PauseState) Previous() State { return s.previousState }
