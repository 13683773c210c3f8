package physics

// Diagnostics over a body collection. Velocities are the ones implied by
// the position history at step size dt, so these are exact for the state
// the integrator actually evolves, not for some stored velocity.

// Energy returns kinetic plus pairwise gravitational potential energy.
func Energy(bodies []*Body, dt float64) float64 {
	e := 0.0
	for i, b := range bodies {
		v := b.Velocity(dt)
		e += 0.5 * b.Mass * v.NormSq()
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[j].Pos.Sub(b.Pos).Norm() + Softening
			e -= G * b.Mass * bodies[j].Mass / r
		}
	}
	return e
}

// Momentum returns the total linear momentum.
func Momentum(bodies []*Body, dt float64) Vec2 {
	var p Vec2
	for _, b := range bodies {
		p = p.Add(b.Velocity(dt).Scale(b.Mass))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
func AngularMomentum(bodies []*Body, dt float64) float64 {
	l := 0.0
	for _, b := range bodies {
		l += b.Mass * b.Pos.Cross(b.Velocity(dt))
	}
	return l
}
