// internal/sim/container.go
package sim

import (
	"math"

	"simcanvas/internal/utils"
)

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns the direction of v in radians.
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle returns a vector of the given length pointing at theta.
func FromAngle(theta, length float64) Vec {
	return Vec{math.Cos(theta) * length, math.Sin(theta) * length}
}

// Container is a box with walls spanning (0, 0) to (Width, Height). Both
// extremes are valid positions.
type Container struct {
	Width, Height float64
}

// HandleWalls moves a particle along one axis for dt seconds and reflects
// it off the walls at min and max. The particle's center stays at least
// diameter/2 away from each wall. Each reflection mirrors the position and
// negates the speed; a particle landing exactly on its limit does not
// bounce.
func (c Container) HandleWalls(dt, diameter, pos, speed, min, max float64) (float64, float64) {
	lo := min + diameter/2
	hi := max - diameter/2
	if lo >= hi {
		// No room to move: pin the particle to the middle.
		return (min + max) / 2, 0
	}

	p := pos + speed*dt
	if p >= lo && p <= hi {
		return p, speed
	}
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return math.Max(lo, math.Min(hi, pos)), 0
	}

	// Fold p into [lo, hi]. k counts the walls crossed; the reflection
	// pattern repeats every two of them.
	span := hi - lo
	k := math.Floor((p - lo) / span)
	off := (p - lo) - k*span
	if math.Mod(k, 2) == 0 {
		return lo + off, speed
	}
	return hi - off, -speed
}

// Move advances a particle for dt seconds. With friction > 0 each velocity
// component first loses g·friction·dt of speed (computed in meters, never
// reversing direction); then both axes are reflected off the walls.
func (c Container) Move(dt, diameter float64, pos, vel Vec, friction float64) (Vec, Vec) {
	if friction > 0 {
		vel.X = decelerate(vel.X, friction, dt)
		vel.Y = decelerate(vel.Y, friction, dt)
	}
	x, vx := c.HandleWalls(dt, diameter, pos.X, vel.X, 0, c.Width)
	y, vy := c.HandleWalls(dt, diameter, pos.Y, vel.Y, 0, c.Height)
	return Vec{x, y}, Vec{vx, vy}
}

func decelerate(v, friction, dt float64) float64 {
	if v == 0 {
		return 0
	}
	meters := math.Abs(v*FeetInMeter) - GravityAcceleration*friction*dt
	return utils.Sign(v) * math.Max(0, meters) / FeetInMeter
}
