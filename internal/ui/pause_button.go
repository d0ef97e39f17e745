// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"simcanvas/pkg/render"
)

// PauseButtonRL toggles playback when clicked. It shows a play triangle
// while paused and two bars while playing.
type PauseButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButtonRL(x, y, size float32, pauseColor, playColor color.Color) *PauseButtonRL {
	return &PauseButtonRL{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButtonRL) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		c := colorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-rectSize, b.Y-rectSize*1.2)
		p2 := rl.NewVector2(b.X-rectSize, b.Y+rectSize*1.2)
		p3 := rl.NewVector2(b.X+rectSize, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.DarkGray)
		return
	}
	c := colorToRL(b.PauseColor)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	rl.DrawRectangleV(rl.NewVector2(b.X-width-spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
	rl.DrawRectangleV(rl.NewVector2(b.X+spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
}

// Contains reports whether p falls on the button.
func (b *PauseButtonRL) Contains(x, y float32) bool {
	dx, dy := x-b.X, y-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*4
}

func (b *PauseButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return b.Contains(mousePos.X, mousePos.Y)
}

// SetPaused syncs the button with keyboard toggles.
func (b *PauseButtonRL) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.IsPaused = paused
		b.LastClickTime = time.Now()
	}
}

// colorToRL converts a color.Color to rl.Color
func colorToRL(c color.Color) rl.Color {
	n := render.Straight(c)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
