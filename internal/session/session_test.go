package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simcanvas/internal/event"
	"simcanvas/internal/feed"
	"simcanvas/internal/shape"
	"simcanvas/pkg/render/raster"
)

// scripted replays a fixed list of results.
type scripted struct {
	steps  []step
	closed bool
}

type step struct {
	frame []shape.Descriptor
	err   error
}

func (s *scripted) Next(ctx context.Context) ([]shape.Descriptor, error) {
	if s.closed {
		return nil, feed.ErrClosed
	}
	if len(s.steps) == 0 {
		return nil, io.EOF
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	return st.frame, st.err
}

func (s *scripted) Close() error { s.closed = true; return nil }
func (s *scripted) Name() string { return "scripted" }

type collector struct{ events []event.Event }

func (c *collector) OnEvent(e event.Event) { c.events = append(c.events, e) }

func red(x float64) []shape.Descriptor {
	return []shape.Descriptor{shape.Rect(x, 0.5, 0.2, 0.2, "red", true)}
}

func newSession(t *testing.T, src feed.Source) (*Session, *raster.Surface, *collector) {
	t.Helper()
	m, surf, err := raster.NewModule(100, 100)
	require.NoError(t, err)
	d := event.NewDispatcher()
	c := &collector{}
	d.Subscribe(event.FrameRendered, c)
	d.Subscribe(event.CanvasReset, c)
	d.Subscribe(event.FeedClosed, c)
	return New(m, src, d, time.Second), surf, c
}

func TestAdvanceRendersAndDispatches(t *testing.T) {
	src := &scripted{steps: []step{{frame: red(0.25)}, {frame: red(0.75)}}}
	s, surf, c := newSession(t, src)
	ctx := context.Background()

	require.True(t, s.Advance(ctx))
	assert.NotZero(t, surf.Image().RGBAAt(25, 50).A)

	require.True(t, s.Advance(ctx))
	assert.Zero(t, surf.Image().RGBAAt(25, 50).A)
	assert.NotZero(t, surf.Image().RGBAAt(75, 50).A)
	assert.Equal(t, red(0.75), s.Last())

	assert.False(t, s.Advance(ctx))
	assert.True(t, s.Ended())
	assert.NoError(t, s.Err())
	assert.False(t, s.Advance(ctx))

	require.Len(t, c.events, 3)
	assert.Equal(t, event.FrameData{Index: 0, Shapes: red(0.25)}, c.events[0].Data)
	assert.Equal(t, event.FrameData{Index: 1, Shapes: red(0.75)}, c.events[1].Data)
	assert.Equal(t, event.FeedClosed, c.events[2].Type)
	assert.Nil(t, c.events[2].Data)
	// The last frame stays on screen after the feed ends.
	assert.NotZero(t, surf.Image().RGBAAt(75, 50).A)
}

func TestBadFrameIsSkipped(t *testing.T) {
	src := &scripted{steps: []step{
		{err: errors.New("decode frame: shape 0: bad")},
		{frame: red(0.5)},
	}}
	s, _, c := newSession(t, src)
	ctx := context.Background()

	assert.False(t, s.Advance(ctx))
	assert.False(t, s.Ended())
	assert.True(t, s.Advance(ctx))
	require.Len(t, c.events, 1)
	assert.Equal(t, 0, c.events[0].Data.(event.FrameData).Index)
}

func TestResetRestartsNumbering(t *testing.T) {
	src := &scripted{steps: []step{{frame: red(0.5)}, {frame: red(0.5)}}}
	s, surf, c := newSession(t, src)
	ctx := context.Background()

	require.True(t, s.Advance(ctx))
	s.Reset()
	assert.Zero(t, surf.Image().RGBAAt(50, 50).A)
	assert.Nil(t, s.Last())
	assert.Zero(t, s.Frames())

	require.True(t, s.Advance(ctx))
	require.Len(t, c.events, 3)
	assert.Equal(t, event.CanvasReset, c.events[1].Type)
	assert.Equal(t, 0, c.events[2].Data.(event.FrameData).Index)
}

func TestClosedFeedEndsSession(t *testing.T) {
	src := &scripted{steps: []step{{frame: red(0.5)}}}
	s, _, c := newSession(t, src)
	require.NoError(t, s.Close())

	assert.False(t, s.Advance(context.Background()))
	assert.True(t, s.Ended())
	assert.ErrorIs(t, s.Err(), feed.ErrClosed)
	require.Len(t, c.events, 1)
	assert.ErrorIs(t, c.events[0].Data.(error), feed.ErrClosed)
}

func TestNilDispatcher(t *testing.T) {
	m, _, err := raster.NewModule(10, 10)
	require.NoError(t, err)
	s := New(m, &scripted{steps: []step{{frame: red(0.5)}}}, nil, time.Second)
	assert.True(t, s.Advance(context.Background()))
	assert.Len(t, s.Last(), 1)
	assert.Equal(t, "scripted", s.SourceName())
}
