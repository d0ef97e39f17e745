// pkg/render/ebitensurface/surface.go
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"simcanvas/internal/canvas"
)

var _ canvas.Surface = (*Surface)(nil)

// Surface paints onto an offscreen ebiten image that the game loop blits to
// the screen every Draw.
type Surface struct {
	img      *ebiten.Image
	fontFace font.Face
	width    int
	height   int
}

func New(width, height int) *Surface {
	return &Surface{
		img:      ebiten.NewImage(width, height),
		fontFace: basicfont.Face7x13,
		width:    width,
		height:   height,
	}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) Clear() { s.img.Clear() }

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	vector.StrokeRect(s.img, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), c, true)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), float32(lineWidth), c, true)
}

func (s *Surface) DrawText(cx, cy float64, str string, c color.Color) {
	b := text.BoundString(s.fontFace, str)
	textWidth := b.Max.X - b.Min.X
	textHeight := b.Max.Y - b.Min.Y
	text.Draw(s.img, str, s.fontFace, int(cx)-textWidth/2, int(cy)+textHeight/2, c)
}

// DrawTo composites the surface onto screen at the origin.
func (s *Surface) DrawTo(screen *ebiten.Image) {
	screen.DrawImage(s.img, nil)
}

// Image exposes the offscreen image.
func (s *Surface) Image() *ebiten.Image { return s.img }

// Host creates ebiten surfaces. It must only be used once the ebiten game
// loop is running or about to run.
type Host struct{}

func (Host) NewSurface(width, height int) (canvas.Surface, error) {
	return New(width, height), nil
}
