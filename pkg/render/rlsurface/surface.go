// pkg/render/rlsurface/surface.go
package rlsurface

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"simcanvas/internal/canvas"
	"simcanvas/pkg/render"
)

const fontSize = 14

var _ canvas.Surface = (*Surface)(nil)

// Surface paints into a raylib render texture. Every primitive opens its
// own texture mode, so calls are valid anywhere outside another texture mode
// on the main thread.
type Surface struct {
	target rl.RenderTexture2D
	width  int32
	height int32
}

// New loads a width×height render texture. A window must already exist.
func New(width, height int) (*Surface, error) {
	if !rl.IsWindowReady() {
		return nil, errors.New("rlsurface: window is not initialized")
	}
	return &Surface{
		target: rl.LoadRenderTexture(int32(width), int32(height)),
		width:  int32(width),
		height: int32(height),
	}, nil
}

func (s *Surface) paint(fn func()) {
	rl.BeginTextureMode(s.target)
	fn()
	rl.EndTextureMode()
}

func (s *Surface) Size() (int, int) { return int(s.width), int(s.height) }

func (s *Surface) Clear() {
	s.paint(func() { rl.ClearBackground(rl.Blank) })
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.paint(func() {
		rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), colorToRL(c))
	})
}

// StrokeRect centers the line on the rectangle edge like the other
// backends; raylib draws the line inside the rectangle it is given.
func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	half := lineWidth / 2
	rec := rl.NewRectangle(float32(x-half), float32(y-half), float32(w+lineWidth), float32(h+lineWidth))
	s.paint(func() {
		rl.DrawRectangleLinesEx(rec, float32(lineWidth), colorToRL(c))
	})
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.paint(func() {
		rl.DrawCircleV(rl.NewVector2(float32(cx), float32(cy)), float32(r), colorToRL(c))
	})
}

func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, c color.Color) {
	if r <= 0 {
		return
	}
	inner := float32(r - lineWidth/2)
	if inner < 0 {
		inner = 0
	}
	s.paint(func() {
		rl.DrawRing(rl.NewVector2(float32(cx), float32(cy)), inner, float32(r+lineWidth/2), 0, 360, 48, colorToRL(c))
	})
}

func (s *Surface) DrawText(cx, cy float64, str string, c color.Color) {
	width := rl.MeasureText(str, fontSize)
	s.paint(func() {
		rl.DrawText(str, int32(cx)-width/2, int32(cy)-fontSize/2, fontSize, colorToRL(c))
	})
}

// DrawTo blits the texture at the origin. Render textures are stored
// upside down, hence the negative source height.
func (s *Surface) DrawTo() {
	src := rl.NewRectangle(0, 0, float32(s.width), -float32(s.height))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(0, 0), rl.White)
}

// Unload frees the GPU texture.
func (s *Surface) Unload() {
	rl.UnloadRenderTexture(s.target)
}

// colorToRL converts a color.Color to rl.Color
func colorToRL(c color.Color) rl.Color {
	n := render.Straight(c)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

// Host creates raylib surfaces after InitWindow.
type Host struct{}

func (Host) NewSurface(width, height int) (canvas.Surface, error) {
	s, err := New(width, height)
	if err != nil {
		return nil, err
	}
	return s, nil
}
