// pkg/render/color.go
package render

import "image/color"

// Straight converts c to non-premultiplied 8-bit channels. Backends that
// take straight alpha (raylib, PDF) go through here instead of reading
// RGBA() directly.
func Straight(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Opacity returns the alpha of c in [0, 1].
func Opacity(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}
