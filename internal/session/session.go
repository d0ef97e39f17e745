// Package session drives a canvas from a frame feed, one frame per tick,
// and announces what it did on an event dispatcher. It is shared by the
// windowed viewers and the headless snapshot tool.
package session

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"simcanvas/internal/canvas"
	"simcanvas/internal/event"
	"simcanvas/internal/feed"
	"simcanvas/internal/shape"
)

type Session struct {
	module     *canvas.Module
	src        feed.Source
	dispatcher *event.Dispatcher
	wait       time.Duration

	index int
	last  []shape.Descriptor
	ended bool
	err   error
}

// New binds a module to a feed. wait bounds how long Advance blocks for a
// frame, see feed.Poll. A nil dispatcher gets a private one.
func New(m *canvas.Module, src feed.Source, d *event.Dispatcher, wait time.Duration) *Session {
	if d == nil {
		d = event.NewDispatcher()
	}
	return &Session{module: m, src: src, dispatcher: d, wait: wait}
}

// Advance renders the next frame if one is ready and reports whether it
// did. Frames that fail to decode are logged and skipped. The end of the
// feed is announced once with event.FeedClosed.
func (s *Session) Advance(ctx context.Context) bool {
	if s.ended {
		return false
	}
	frame, ok, err := feed.Poll(ctx, s.src, s.wait)
	if err != nil {
		s.handleError(err)
		return false
	}
	if !ok {
		return false
	}
	s.module.Render(frame)
	s.last = frame
	s.dispatcher.Dispatch(event.Event{
		Type: event.FrameRendered,
		Data: event.FrameData{Index: s.index, Shapes: frame},
	})
	s.index++
	return true
}

func (s *Session) handleError(err error) {
	switch {
	case errors.Is(err, io.EOF):
		log.Printf("feed %s finished after %d frames", s.src.Name(), s.index)
		s.finish(nil)
	case errors.Is(err, feed.ErrClosed), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.finish(err)
	default:
		// A bad frame does not end the feed.
		log.Printf("WARNING: skipping frame: %v", err)
	}
}

func (s *Session) finish(err error) {
	s.ended = true
	s.err = err
	s.dispatcher.Dispatch(event.Event{Type: event.FeedClosed, Data: err})
}

// Reset clears the canvas and restarts frame numbering. The feed keeps its
// position.
func (s *Session) Reset() {
	s.module.Reset()
	s.last = nil
	s.index = 0
	s.dispatcher.Dispatch(event.Event{Type: event.CanvasReset})
}

// Ended reports whether the feed is finished. Err tells why; it is nil for
// a feed that simply ran out.
func (s *Session) Ended() bool { return s.ended }

func (s *Session) Err() error { return s.err }

// Frames returns how many frames were rendered since the last reset.
func (s *Session) Frames() int { return s.index }

// Last returns the frame currently on the canvas.
func (s *Session) Last() []shape.Descriptor { return s.last }

func (s *Session) SourceName() string { return s.src.Name() }

// Close closes the feed.
func (s *Session) Close() error { return s.src.Close() }
