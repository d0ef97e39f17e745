// internal/canvas/module.go
package canvas

import (
	"errors"
	"fmt"

	"simcanvas/internal/shape"
)

// ErrInvalidSize is returned when a canvas is requested with a
// non-positive width or height.
var ErrInvalidSize = errors.New("canvas: width and height must be positive")

// Module owns a surface obtained from a Host and repaints it on every
// Render call.
type Module struct {
	surface Surface
	adapter *Adapter
	width   int
	height  int
}

// New asks host for a width×height surface and binds an Adapter to it.
func New(host Host, width, height int, opts ...Option) (*Module, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	s, err := host.NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("canvas: create %dx%d surface: %w", width, height, err)
	}
	if sw, sh := s.Size(); sw != width || sh != height {
		return nil, fmt.Errorf("canvas: host returned a %dx%d surface, want %dx%d", sw, sh, width, height)
	}
	return &Module{
		surface: s,
		adapter: NewAdapter(s, opts...),
		width:   width,
		height:  height,
	}, nil
}

// Render clears the surface and paints data. Nothing is kept from the
// previous frame.
func (m *Module) Render(data []shape.Descriptor) {
	m.adapter.ResetCanvas()
	m.adapter.Draw(data)
}

// Reset clears the surface.
func (m *Module) Reset() {
	m.adapter.ResetCanvas()
}

func (m *Module) Size() (width, height int) {
	return m.width, m.height
}

// Surface returns the surface the module paints on, for hosts that need to
// present or export it.
func (m *Module) Surface() Surface {
	return m.surface
}
