// internal/canvas/surface.go
package canvas

import "image/color"

// Surface is a pixel-dimensioned drawing context. Coordinates are in pixels
// with the origin at the top-left corner. Strokes are centered on the
// outline, as on an HTML canvas.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, lineWidth float64, c color.Color)
	// DrawText draws s centered on (cx, cy).
	DrawText(cx, cy float64, s string, c color.Color)
}

// Host provides drawing surfaces: a window, an offscreen image, a document.
type Host interface {
	NewSurface(width, height int) (Surface, error)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(width, height int) (Surface, error)

func (f HostFunc) NewSurface(width, height int) (Surface, error) {
	return f(width, height)
}

// Discard hands out surfaces that drop every call. A module on it still
// walks each frame, for sessions whose output is taken by listeners alone.
var Discard Host = HostFunc(func(width, height int) (Surface, error) {
	return discardSurface{width, height}, nil
})

type discardSurface struct{ w, h int }

func (d discardSurface) Size() (int, int)                                { return d.w, d.h }
func (discardSurface) Clear()                                            {}
func (discardSurface) FillRect(x, y, w, h float64, c color.Color)        {}
func (discardSurface) StrokeRect(x, y, w, h, lw float64, c color.Color)  {}
func (discardSurface) FillCircle(cx, cy, r float64, c color.Color)       {}
func (discardSurface) StrokeCircle(cx, cy, r, lw float64, c color.Color) {}
func (discardSurface) DrawText(cx, cy float64, s string, c color.Color)  {}
