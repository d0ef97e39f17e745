// internal/shape/descriptor.go
package shape

import "strings"

// Kind is the discriminator of a shape descriptor.
type Kind uint8

const (
	// KindUnknown marks a descriptor whose kind is not recognized.
	// Such descriptors are kept so callers can skip them explicitly.
	KindUnknown Kind = iota
	KindRect
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParseKind maps a discriminator string to a Kind. Matching ignores case and
// surrounding spaces; anything else is KindUnknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rect":
		return KindRect
	case "circle":
		return KindCircle
	default:
		return KindUnknown
	}
}

// Descriptor describes one shape of a frame.
//
// X and Y are the normalized center of the shape, in [0,1] relative to the
// surface width and height. W and H (rectangles) and R (circles) are
// normalized sizes. Color is used both to fill and to stroke.
type Descriptor struct {
	Kind    Kind
	RawKind string // discriminator as received, kept for logging

	X, Y float64
	W, H float64
	R    float64

	Color  string
	Filled bool

	// Optional label drawn centered on the shape.
	Text      string
	TextColor string
}

// Rect returns a rectangle descriptor centered at (x, y).
func Rect(x, y, w, h float64, color string, filled bool) Descriptor {
	return Descriptor{Kind: KindRect, RawKind: "rect", X: x, Y: y, W: w, H: h, Color: color, Filled: filled}
}

// Circle returns a circle descriptor centered at (x, y).
func Circle(x, y, r float64, color string, filled bool) Descriptor {
	return Descriptor{Kind: KindCircle, RawKind: "circle", X: x, Y: y, R: r, Color: color, Filled: filled}
}

// WithText returns a copy of d carrying a label.
func (d Descriptor) WithText(text, color string) Descriptor {
	d.Text = text
	d.TextColor = color
	return d
}
