// internal/canvas/options.go
package canvas

import "log"

// Option configures an Adapter.
type Option func(*Adapter)

// WithStrokeWidth sets the outline width in pixels for unfilled shapes.
func WithStrokeWidth(px float64) Option {
	return func(a *Adapter) {
		if px > 0 {
			a.strokeWidth = px
		}
	}
}

// WithLegacyCircles turns the circle routine into a no-op, matching the
// first visualization of the simulation.
func WithLegacyCircles() Option {
	return func(a *Adapter) {
		a.legacyCircles = true
	}
}

// WithLogger sets the logger used for warnings. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}
