// internal/sim/rink.go
package sim

import (
	"errors"
	"fmt"
	"math"

	"simcanvas/internal/shape"
	"simcanvas/internal/utils"
)

// Half-rink geometry, in feet.
const (
	HalfIceWidth = 100.0
	IceHeight    = 85.0
	GoalX        = HalfIceWidth - 11
	GoalWidth    = 6.0
	goalDepth    = 2.0
	BlueLineX    = 25.0
	blueLineW    = 1.0
)

// Skater and puck parameters. Speeds are in feet per second.
const (
	MinSpeedMoving     = 14.0
	MaxSpeedMoving     = 22.0
	MinSpeedSprinting  = 29.0
	MaxSpeedSprinting  = 44.0
	MinReach           = 3.0
	MaxReach           = 6.0
	PuckRadius         = 1.0
	puckSpeedStdDev    = 5.0
	turnChance         = 0.10
	shotAngleStdDev    = 0.2
	DefaultIceFriction = 0.005
)

var ErrInvalidConfig = errors.New("sim: invalid config")

// Role tells forwards from defensemen.
type Role uint8

const (
	Forward Role = iota
	Defense
)

func (r Role) String() string {
	if r == Defense {
		return "D"
	}
	return "F"
}

func (r Role) color() string {
	if r == Defense {
		return "blue"
	}
	return "red"
}

// Skater wanders the ice at its own pace and shoots the puck at the goal
// when it comes within reach.
type Skater struct {
	Role    Role
	Pos     Vec
	Vel     Vec
	Heading float64
	Speed   float64
	Reach   float64
}

// Puck slides freely, slowed by ice friction.
type Puck struct {
	Pos Vec
	Vel Vec
}

// Config sets up a Rink.
type Config struct {
	Forwards int
	Defense  int
	Seed     int64 // 0 picks a time-based seed
	Friction float64
	Width    float64
	Height   float64
}

// DefaultConfig returns a standard half rink with two forwards and two
// defensemen.
func DefaultConfig() Config {
	return Config{
		Forwards: 2,
		Defense:  2,
		Friction: DefaultIceFriction,
		Width:    HalfIceWidth,
		Height:   IceHeight,
	}
}

func (c Config) validate() error {
	switch {
	case c.Forwards < 0 || c.Defense < 0:
		return fmt.Errorf("%w: negative skater count (%d forwards, %d defense)", ErrInvalidConfig, c.Forwards, c.Defense)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: rink must have positive size, got %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.Friction < 0 || math.IsNaN(c.Friction):
		return fmt.Errorf("%w: friction %g", ErrInvalidConfig, c.Friction)
	}
	return nil
}

// Rink is the attacking half of a hockey rink in world feet, origin at the
// bottom-left corner.
type Rink struct {
	Container
	cfg     Config
	rng     *utils.PRNGService
	Skaters []*Skater
	Puck    Puck
	elapsed float64
	steps   int
}

// NewRink places the skaters and the puck at random positions.
func NewRink(cfg Config) (*Rink, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := &Rink{
		Container: Container{Width: cfg.Width, Height: cfg.Height},
		cfg:       cfg,
		rng:       utils.NewPRNGService(cfg.Seed),
	}
	r.Puck = Puck{
		Pos: r.randomPosition(),
		Vel: Vec{r.rng.Normal(0, puckSpeedStdDev), r.rng.Normal(0, puckSpeedStdDev)},
	}
	for i := 0; i < cfg.Defense; i++ {
		r.Skaters = append(r.Skaters, r.newSkater(Defense))
	}
	for i := 0; i < cfg.Forwards; i++ {
		r.Skaters = append(r.Skaters, r.newSkater(Forward))
	}
	return r, nil
}

func (r *Rink) newSkater(role Role) *Skater {
	s := &Skater{
		Role:    role,
		Pos:     r.randomPosition(),
		Heading: r.rng.Between(-math.Pi, math.Pi),
		Speed:   Normalize(r.rng.Float64(), MinSpeedMoving, MaxSpeedMoving, 0, 1),
		Reach:   Normalize(r.rng.Float64(), MinReach, MaxReach, 0, 1),
	}
	s.Vel = FromAngle(s.Heading, s.Speed)
	return s
}

func (r *Rink) randomPosition() Vec {
	return Vec{r.rng.Float64() * r.Width, r.rng.Float64() * r.Height}
}

// Seed returns the seed driving this rink.
func (r *Rink) Seed() int64 { return r.rng.Seed() }

// Elapsed returns the simulated time in seconds.
func (r *Rink) Elapsed() float64 { return r.elapsed }

// Steps returns how many times Step has run.
func (r *Rink) Steps() int { return r.steps }

// Goal returns the center of the goal mouth.
func (r *Rink) Goal() Vec {
	return Vec{r.Width - (HalfIceWidth - GoalX), r.Height / 2}
}

// Step advances the simulation by dt seconds.
func (r *Rink) Step(dt float64) {
	for _, s := range r.Skaters {
		r.steer(s)
		s.Vel = FromAngle(s.Heading, s.Speed)
		s.Pos, s.Vel = r.Move(dt, 2*s.Reach, s.Pos, s.Vel, 0)
		s.Heading = s.Vel.Angle()
	}
	r.shoot()
	r.Puck.Pos, r.Puck.Vel = r.Move(dt, 2*PuckRadius, r.Puck.Pos, r.Puck.Vel, r.cfg.Friction)
	r.elapsed += dt
	r.steps++
}

// steer occasionally changes a skater's heading: half the time toward the
// puck, otherwise a quarter turn either way.
func (r *Rink) steer(s *Skater) {
	if !r.rng.Chance(turnChance) {
		return
	}
	switch {
	case r.rng.Chance(0.5):
		s.Heading = r.Puck.Pos.Add(s.Pos.Scale(-1)).Angle()
	case r.rng.Chance(0.5):
		s.Heading = utils.NormalizeAngle(s.Heading + math.Pi/2)
	default:
		s.Heading = utils.NormalizeAngle(s.Heading - math.Pi/2)
	}
}

// shoot lets the first skater within reach of a slow puck send it toward
// the goal at sprinting speed.
func (r *Rink) shoot() {
	if r.Puck.Vel.Len() >= MinSpeedMoving {
		return
	}
	for _, s := range r.Skaters {
		if r.Puck.Pos.Add(s.Pos.Scale(-1)).Len() > s.Reach {
			continue
		}
		aim := r.Goal().Add(r.Puck.Pos.Scale(-1)).Angle() + r.rng.Normal(0, shotAngleStdDev)
		r.Puck.Vel = FromAngle(aim, r.rng.Between(MinSpeedSprinting, MaxSpeedSprinting))
		return
	}
}

// Frame describes the rink in normalized canvas space: ice outline, blue
// line and goal first, then the skaters, then the puck on top.
func (r *Rink) Frame() []shape.Descriptor {
	minDim := math.Min(r.Width, r.Height)
	nx := func(x float64) float64 { return Normalize(x, 0, 1, 0, r.Width) }
	ny := func(y float64) float64 { return 1 - Normalize(y, 0, 1, 0, r.Height) }

	goal := r.Goal()
	frame := make([]shape.Descriptor, 0, 4+len(r.Skaters))
	frame = append(frame,
		shape.Rect(0.5, 0.5, 1, 1, "black", false),
		shape.Rect(nx(BlueLineX), 0.5, blueLineW/r.Width, 1, "blue", true),
		shape.Rect(nx(goal.X), ny(goal.Y), goalDepth/r.Width, GoalWidth/r.Height, "gray", true),
	)
	for _, s := range r.Skaters {
		frame = append(frame,
			shape.Circle(nx(s.Pos.X), ny(s.Pos.Y), s.Reach/minDim, s.Role.color(), true).
				WithText(s.Role.String(), "white"))
	}
	frame = append(frame, shape.Circle(nx(r.Puck.Pos.X), ny(r.Puck.Pos.Y), PuckRadius/minDim, "black", true))
	return frame
}
