// internal/shape/color.go
package shape

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for strings it cannot read.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor reads a CSS-style color: "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa", "rgb(r, g, b)", "rgba(r, g, b, a)" or a named color such as
// "Red" or "steelblue".
func ParseColor(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return color.RGBA{}, fmt.Errorf("%w: empty string", ErrUnknownColor)
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:], s)
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunctional(v[len("rgba("):len(v)-1], true, s)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunctional(v[len("rgb("):len(v)-1], false, s)
	case v == "transparent":
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHex(h, orig string) (color.RGBA, error) {
	var digits [8]uint8
	for i := 0; i < len(h) && i < len(digits); i++ {
		d, ok := hexDigit(h[i])
		if !ok {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
		}
		digits[i] = d
	}
	switch len(h) {
	case 3, 4:
		c := color.RGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 0xff}
		if len(h) == 4 {
			c.A = digits[3] * 17
		}
		return premultiply(c), nil
	case 6, 8:
		c := color.RGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 0xff,
		}
		if len(h) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return premultiply(c), nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

func parseFunctional(args string, withAlpha bool, orig string) (color.RGBA, error) {
	parts := strings.Split(args, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
		}
		ch[i] = uint8(n)
	}
	c := color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
		}
		c.A = uint8(math.Round(a * 255))
	}
	return premultiply(c), nil
}

// premultiply converts straight alpha to the premultiplied form color.RGBA expects.
func premultiply(c color.RGBA) color.RGBA {
	if c.A == 0xff {
		return c
	}
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 0xff),
		G: uint8(uint32(c.G) * a / 0xff),
		B: uint8(uint32(c.B) * a / 0xff),
		A: c.A,
	}
}
