package physics

// Advance moves every body one Stormer-Verlet step of size dt, using the
// accelerations already present on the bodies:
//
//	new = 2*Pos - PrevPos + Acc*dt^2
//
// then PrevPos takes the old Pos. Changing dt between steps is honored
// going forward only: PrevPos keeps whatever step size produced it, so
// the first step after a change carries a one-step discontinuity in the
// implied velocity. That is a property of the scheme, not something this
// function corrects; callers wanting a clean restart rebuild the bodies.
func Advance(bodies []*Body, dt float64) {
	dt2 := dt * dt
	for _, b := range bodies {
		next := b.Pos.Scale(2).Sub(b.PrevPos).Add(b.Acc.Scale(dt2))
		b.PrevPos = b.Pos
		b.Pos = next
	}
}
