// Package feed supplies frames of shape descriptors to the viewers.
package feed

import (
	"context"
	"errors"
	"time"

	"simcanvas/internal/shape"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("feed: source closed")

// Source yields frames in order. Next returns io.EOF once the feed is
// exhausted. Decode errors concern a single frame and the caller may keep
// reading.
type Source interface {
	Next(ctx context.Context) ([]shape.Descriptor, error)
	Close() error
	Name() string
}

// MinWait is the shortest wait Poll accepts.
const MinWait = time.Millisecond

// Poll waits at most wait for the next frame. ok is false when nothing
// arrived in time; err is nil in that case. Waits under MinWait are raised
// to MinWait.
func Poll(ctx context.Context, src Source, wait time.Duration) (frame []shape.Descriptor, ok bool, err error) {
	if wait < MinWait {
		wait = MinWait
	}
	pctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	frame, err = src.Next(pctx)
	switch {
	case err == nil:
		return frame, true, nil
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return nil, false, nil
	}
	return nil, false, err
}

// item is one result handed from a reader goroutine to Next.
type item struct {
	frame []shape.Descriptor
	err   error
}

// next takes the next item off a reader goroutine's channel. Once items is
// closed, *terminal (set by the reader before closing) is returned.
func next(ctx context.Context, items <-chan item, done <-chan struct{}, terminal *error) ([]shape.Descriptor, error) {
	select {
	case <-done:
		return nil, ErrClosed
	default:
	}
	select {
	case it, ok := <-items:
		if !ok {
			return nil, *terminal
		}
		return it.frame, it.err
	case <-done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
