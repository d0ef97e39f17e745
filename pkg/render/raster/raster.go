// Package raster implements a headless drawing surface backed by an
// *image.RGBA, by wrapping rasterx.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"simcanvas/internal/canvas"
)

var _ canvas.Surface = (*Surface)(nil) // assert interface conformance

// miterLimit caps miter joins on stroked rectangle corners.
const miterLimit = 4

// Surface paints into an in-memory RGBA image.
type Surface struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	face   font.Face
}

// New returns a transparent width×height surface.
func New(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Surface{
		img:    img,
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
		face:   basicfont.Face7x13,
	}
}

func (s *Surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets every pixel to transparent.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	s.filler.Clear()
	s.dasher.Clear()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.filler.Clear()
	x0, y0, x1, y1 := s.clipBox(0).clampRect(x, y, w, h)
	rasterx.AddRect(x0, y0, x1, y1, 0, s.filler)
	s.filler.SetColor(c)
	s.filler.Draw()
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	s.startStroke(lineWidth)
	x0, y0, x1, y1 := s.clipBox(lineWidth).clampRect(x, y, w, h)
	rasterx.AddRect(x0, y0, x1, y1, 0, s.dasher)
	s.dasher.SetColor(c)
	s.dasher.Draw()
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	if hugeCircle(cx, cy, r) {
		s.fillBand(cx, cy, math.Inf(-1), r, c)
		return
	}
	s.filler.Clear()
	rasterx.AddCircle(cx, cy, r, s.filler)
	s.filler.SetColor(c)
	s.filler.Draw()
}

func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, c color.Color) {
	if r <= 0 {
		return
	}
	if hugeCircle(cx, cy, r) {
		s.fillBand(cx, cy, r-lineWidth/2, r+lineWidth/2, c)
		return
	}
	s.startStroke(lineWidth)
	rasterx.AddCircle(cx, cy, r, s.dasher)
	s.dasher.SetColor(c)
	s.dasher.Draw()
}

// fillBand paints the straight-edged stand-in for a circle too large for
// rasterx, see box.band.
func (s *Surface) fillBand(cx, cy, lo, hi float64, c color.Color) {
	poly := s.clipBox(0).band(cx, cy, lo, hi)
	if poly == nil {
		return
	}
	s.filler.Clear()
	addPolygon(poly, s.filler)
	s.filler.SetColor(c)
	s.filler.Draw()
}

func (s *Surface) startStroke(lineWidth float64) {
	s.dasher.Clear()
	s.dasher.SetStroke(
		fixed.Int26_6(lineWidth*64), fixed.Int26_6(miterLimit*64),
		rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Miter, nil, 0,
	)
}

func (s *Surface) DrawText(cx, cy float64, str string, c color.Color) {
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: s.face,
	}
	m := s.face.Metrics()
	width := d.MeasureString(str)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(cx*64) - width/2,
		Y: fixed.Int26_6(cy*64) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(str)
}

// Image returns the backing image. It is painted in place by later calls.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the current pixels as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the current pixels to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// Host hands out raster surfaces.
type Host struct{}

func (Host) NewSurface(width, height int) (canvas.Surface, error) {
	return New(width, height), nil
}

// NewModule builds a canvas module over a fresh raster surface and returns
// both, so callers can read the pixels back.
func NewModule(width, height int, opts ...canvas.Option) (*canvas.Module, *Surface, error) {
	m, err := canvas.New(Host{}, width, height, opts...)
	if err != nil {
		return nil, nil, err
	}
	return m, m.Surface().(*Surface), nil
}
