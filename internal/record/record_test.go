package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcanvas/internal/event"
	"simcanvas/internal/shape"
)

var frame = []shape.Descriptor{shape.Rect(0.5, 0.5, 0.5, 0.5, "red", true)}

func TestPNGEveryNthFrame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	r, err := NewPNG(dir, 40, 30, 2)
	require.NoError(t, err)

	d := event.NewDispatcher()
	d.Subscribe(event.FrameRendered, r)
	for i := 0; i < 5; i++ {
		d.Dispatch(event.Event{Type: event.FrameRendered, Data: event.FrameData{Index: i, Shapes: frame}})
	}
	require.NoError(t, r.Err())
	require.NoError(t, r.Close())

	assert.Equal(t, 3, r.Written())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"frame_000000.png", "frame_000001.png", "frame_000002.png"}, names)
}

func TestIgnoresOtherEvents(t *testing.T) {
	r, err := NewPNG(t.TempDir(), 10, 10, 1)
	require.NoError(t, err)
	r.OnEvent(event.Event{Type: event.CanvasReset})
	r.OnEvent(event.Event{Type: event.FrameRendered, Data: "not a frame"})
	assert.Zero(t, r.Written())
}

func TestPDFWrittenOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.pdf")
	r, err := NewPDF(path, 60, 51, 1)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, r.Record(frame))
	}
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, 4, r.Written())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	assert.Error(t, r.Record(frame))
}

func TestConstructorsValidate(t *testing.T) {
	_, err := NewPNG(t.TempDir(), 10, 10, 0)
	assert.Error(t, err)
	_, err = NewPDF("x.pdf", 0, 10, 1)
	assert.Error(t, err)
}
