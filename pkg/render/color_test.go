package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStraightUndoesPremultiply(t *testing.T) {
	half := color.RGBA{R: 0x80, A: 0x80}
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0x80}, Straight(half))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, Straight(color.RGBA{1, 2, 3, 0xff}))
	assert.Equal(t, color.NRGBA{}, Straight(color.Transparent))
}

func TestOpacity(t *testing.T) {
	assert.InDelta(t, 1.0, Opacity(color.Black), 1e-9)
	assert.InDelta(t, 0.5, Opacity(color.RGBA{A: 0x80}), 0.01)
	assert.Zero(t, Opacity(color.Transparent))
}
