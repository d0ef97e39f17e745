// internal/canvas/adapter.go
package canvas

import (
	"image/color"
	"log"
	"math"

	"simcanvas/internal/shape"
)

var (
	fallbackColor  = color.RGBA{0, 0, 0, 0xff}
	defaultTextRGB = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Adapter paints shape descriptors onto a Surface, scaling normalized
// coordinates to the surface's pixel size.
//
// An Adapter is not safe for concurrent use.
type Adapter struct {
	surface       Surface
	width, height float64

	strokeWidth   float64
	legacyCircles bool
	logger        *log.Logger

	colors map[string]color.RGBA
	warned map[string]struct{}
}

// NewAdapter returns an Adapter bound to s.
func NewAdapter(s Surface, opts ...Option) *Adapter {
	w, h := s.Size()
	a := &Adapter{
		surface:     s,
		width:       float64(w),
		height:      float64(h),
		strokeWidth: 1,
		logger:      log.Default(),
		colors:      make(map[string]color.RGBA),
		warned:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Draw paints shapes in order, so later shapes cover earlier ones.
func (a *Adapter) Draw(shapes []shape.Descriptor) {
	for _, d := range shapes {
		switch d.Kind {
		case shape.KindRect:
			a.drawRect(d)
		case shape.KindCircle:
			a.drawCircle(d)
		case shape.KindUnknown:
			// Unrecognized kinds are skipped without touching the rest of the batch.
		}
	}
}

// ResetCanvas clears the whole surface.
func (a *Adapter) ResetCanvas() {
	a.surface.Clear()
}

// drawRect treats (X, Y) as the center of the rectangle.
func (a *Adapter) drawRect(d shape.Descriptor) {
	dx := d.W * a.width
	dy := d.H * a.height
	x0 := d.X*a.width - 0.5*dx
	y0 := d.Y*a.height - 0.5*dy

	c := a.color(d.Color)
	if d.Filled {
		a.surface.FillRect(x0, y0, dx, dy, c)
	} else {
		a.surface.StrokeRect(x0, y0, dx, dy, a.strokeWidth, c)
	}
	a.drawLabel(d)
}

// drawCircle scales the radius by the shorter surface side so circles stay
// round and inside the surface on non-square canvases.
func (a *Adapter) drawCircle(d shape.Descriptor) {
	if a.legacyCircles {
		return
	}
	cx := d.X * a.width
	cy := d.Y * a.height
	r := d.R * math.Min(a.width, a.height)

	c := a.color(d.Color)
	if d.Filled {
		a.surface.FillCircle(cx, cy, r, c)
	} else {
		a.surface.StrokeCircle(cx, cy, r, a.strokeWidth, c)
	}
	a.drawLabel(d)
}

func (a *Adapter) drawLabel(d shape.Descriptor) {
	if d.Text == "" {
		return
	}
	c := defaultTextRGB
	if d.TextColor != "" {
		c = a.color(d.TextColor)
	}
	a.surface.DrawText(d.X*a.width, d.Y*a.height, d.Text, c)
}

// color resolves a color string, caching the result. Unreadable colors fall
// back to opaque black and are reported once.
func (a *Adapter) color(s string) color.RGBA {
	if c, ok := a.colors[s]; ok {
		return c
	}
	c, err := shape.ParseColor(s)
	if err != nil {
		if _, seen := a.warned[s]; !seen {
			a.warned[s] = struct{}{}
			a.logger.Printf("WARNING: canvas: %v, painting black", err)
		}
		c = fallbackColor
	}
	a.colors[s] = c
	return c
}
