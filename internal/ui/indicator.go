// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FeedIndicatorRL is a dot showing the feed state. It swells briefly each
// time a frame arrives.
type FeedIndicatorRL struct {
	X, Y      float32
	Radius    float32
	LastPulse time.Time
}

func NewFeedIndicatorRL(x, y, radius float32) *FeedIndicatorRL {
	return &FeedIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Pulse marks the arrival of a frame.
func (i *FeedIndicatorRL) Pulse() {
	i.LastPulse = time.Now()
}

// Scale returns the current size factor: 1.3 right after a pulse, decaying
// back to 1.
func (i *FeedIndicatorRL) Scale(now time.Time) float32 {
	elapsed := now.Sub(i.LastPulse).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func (i *FeedIndicatorRL) Draw(stateColor color.RGBA) {
	currentRadius := i.Radius * i.Scale(time.Now())
	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, colorToRL(stateColor))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.DarkGray)
}
