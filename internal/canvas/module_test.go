package canvas_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcanvas/internal/canvas"
	"simcanvas/internal/shape"
	"simcanvas/pkg/render/raster"
)

func isRed(c color.RGBA) bool   { return c.R >= 250 && c.G <= 5 && c.B <= 5 && c.A >= 250 }
func isBlue(c color.RGBA) bool  { return c.B >= 250 && c.R <= 5 && c.G <= 5 && c.A >= 250 }
func isEmpty(c color.RGBA) bool { return c.A == 0 }

func requireBlank(t *testing.T, s *raster.Surface) {
	t.Helper()
	pix := s.Image().Pix
	for i := 0; i < len(pix); i++ {
		if pix[i] != 0 {
			t.Fatalf("pixel %d not cleared", i/4)
		}
	}
}

func TestRenderCenteredRectPixels(t *testing.T) {
	m, s, err := raster.NewModule(400, 300)
	require.NoError(t, err)

	m.Render([]shape.Descriptor{shape.Rect(0.5, 0.5, 0.2, 0.1, "#ff0000", true)})
	img := s.Image()

	// Interior of [160,240)x[135,165).
	for _, p := range [][2]int{{161, 136}, {200, 150}, {238, 163}} {
		assert.True(t, isRed(img.RGBAAt(p[0], p[1])), "inside %v: %v", p, img.RGBAAt(p[0], p[1]))
	}
	for _, p := range [][2]int{{158, 150}, {242, 150}, {200, 133}, {200, 167}, {0, 0}} {
		assert.True(t, isEmpty(img.RGBAAt(p[0], p[1])), "outside %v: %v", p, img.RGBAAt(p[0], p[1]))
	}
}

func TestRenderReplacesPreviousFrame(t *testing.T) {
	m, s, err := raster.NewModule(100, 100)
	require.NoError(t, err)

	m.Render([]shape.Descriptor{shape.Rect(0.25, 0.25, 0.2, 0.2, "red", true)})
	require.True(t, isRed(s.Image().RGBAAt(25, 25)))

	m.Render([]shape.Descriptor{shape.Rect(0.75, 0.75, 0.2, 0.2, "blue", true)})
	assert.True(t, isEmpty(s.Image().RGBAAt(25, 25)))
	assert.True(t, isBlue(s.Image().RGBAAt(75, 75)))

	m.Reset()
	requireBlank(t, s)
}

func TestLaterShapesPaintOver(t *testing.T) {
	m, s, err := raster.NewModule(100, 100)
	require.NoError(t, err)

	m.Render([]shape.Descriptor{
		shape.Rect(0.5, 0.5, 0.6, 0.6, "red", true),
		shape.Rect(0.5, 0.5, 0.2, 0.2, "blue", true),
	})
	assert.True(t, isBlue(s.Image().RGBAAt(50, 50)))
	assert.True(t, isRed(s.Image().RGBAAt(30, 30)))
}

func TestOutlineLeavesInteriorEmpty(t *testing.T) {
	m, s, err := raster.NewModule(100, 100, canvas.WithStrokeWidth(2))
	require.NoError(t, err)

	m.Render([]shape.Descriptor{shape.Rect(0.5, 0.5, 0.8, 0.8, "red", false)})
	img := s.Image()
	assert.True(t, isEmpty(img.RGBAAt(50, 50)))
	assert.NotZero(t, img.RGBAAt(10, 50).A)
	assert.NotZero(t, img.RGBAAt(50, 90).A)
}

func TestCirclePixels(t *testing.T) {
	m, s, err := raster.NewModule(200, 100)
	require.NoError(t, err)

	m.Render([]shape.Descriptor{shape.Circle(0.5, 0.5, 0.2, "blue", true)})
	img := s.Image()
	// Radius is 0.2 of the shorter side: 20px around (100, 50).
	assert.True(t, isBlue(img.RGBAAt(100, 50)))
	assert.True(t, isBlue(img.RGBAAt(115, 50)))
	assert.True(t, isEmpty(img.RGBAAt(125, 50)))
	assert.True(t, isEmpty(img.RGBAAt(117, 67)))
}

func TestLegacyCirclesLeaveSurfaceBlank(t *testing.T) {
	m, s, err := raster.NewModule(50, 50, canvas.WithLegacyCircles())
	require.NoError(t, err)

	m.Render([]shape.Descriptor{shape.Circle(0.5, 0.5, 0.3, "blue", true)})
	requireBlank(t, s)
}

func TestRenderEmptyFrameClears(t *testing.T) {
	m, s, err := raster.NewModule(20, 20)
	require.NoError(t, err)

	m.Render([]shape.Descriptor{
		shape.Rect(0.5, 0.5, 1, 1, "red", true),
		shape.Circle(0.5, 0.5, 0.3, "blue", false).WithText("F", "white"),
	})
	m.Render(nil)
	requireBlank(t, s)

	m.Render([]shape.Descriptor{shape.Rect(0.2, 0.2, 0.3, 0.3, "blue", false)})
	m.Reset()
	m.Render([]shape.Descriptor{})
	requireBlank(t, s)
}

func TestOversizedRectFillsCanvas(t *testing.T) {
	m, s, err := raster.NewModule(100, 100)
	require.NoError(t, err)

	m.Render([]shape.Descriptor{shape.Rect(0.5, 0.5, 1e5, 1e5, "red", true)})
	assert.True(t, isRed(s.Image().RGBAAt(50, 50)))
	assert.True(t, isRed(s.Image().RGBAAt(0, 0)))
	assert.True(t, isRed(s.Image().RGBAAt(99, 99)))
}

func TestNewModuleInvalidSize(t *testing.T) {
	_, _, err := raster.NewModule(0, 300)
	assert.ErrorIs(t, err, canvas.ErrInvalidSize)
}
