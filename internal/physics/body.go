package physics

import "fmt"

// Body is one gravitating point mass. Position history stands in for an
// explicit velocity: PrevPos is where the body was one step ago, and the
// Verlet update in Advance reads both. Color is an opaque tag carried for
// renderers; nothing in this package reads it.
type Body struct {
	Mass    float64
	Pos     Vec2
	PrevPos Vec2
	Acc     Vec2
	Color   string
}

// NewBody constructs a body at pos moving with the given initial velocity.
// PrevPos is bootstrapped one backward step of dt0 so the first Verlet
// update implies the requested velocity. Mass must be positive.
func NewBody(mass float64, pos, vel Vec2, dt0 float64, color string) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("body mass must be positive, got %g", mass)
	}
	return &Body{
		Mass:    mass,
		Pos:     pos,
		PrevPos: pos.Sub(vel.Scale(dt0)),
		Color:   color,
	}, nil
}

// Velocity reports the velocity implied by the position history for step
// size dt.
func (b *Body) Velocity(dt float64) Vec2 {
	return b.Pos.Sub(b.PrevPos).Scale(1 / dt)
}
