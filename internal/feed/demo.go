// internal/feed/demo.go
package feed

import (
	"context"
	"fmt"
	"io"

	"simcanvas/internal/shape"
	"simcanvas/internal/sim"
)

// Demo plays the built-in half-rink simulation.
type Demo struct {
	rink   *sim.Rink
	dt     float64
	limit  int
	served int
	closed bool
}

// NewDemo builds a rink from cfg and advances it by dt seconds per frame.
// A positive limit ends the feed after that many frames.
func NewDemo(cfg sim.Config, dt float64, limit int) (*Demo, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("feed: demo time step must be positive, got %g", dt)
	}
	rink, err := sim.NewRink(cfg)
	if err != nil {
		return nil, fmt.Errorf("feed: demo: %w", err)
	}
	return &Demo{rink: rink, dt: dt, limit: limit}, nil
}

// Next returns the starting positions first, then one step per call.
func (d *Demo) Next(ctx context.Context) ([]shape.Descriptor, error) {
	if d.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.limit > 0 && d.served >= d.limit {
		return nil, io.EOF
	}
	if d.served > 0 {
		d.rink.Step(d.dt)
	}
	d.served++
	return d.rink.Frame(), nil
}

func (d *Demo) Close() error {
	d.closed = true
	return nil
}

func (d *Demo) Name() string {
	return fmt.Sprintf("demo(seed=%d)", d.rink.Seed())
}

// Rink exposes the underlying simulation.
func (d *Demo) Rink() *sim.Rink { return d.rink }
