package physics_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravlab/internal/physics"
)

func mustBody(mass float64, pos, vel physics.Vec2, dt float64) *physics.Body {
	b, err := physics.NewBody(mass, pos, vel, dt, "")
	Expect(err).NotTo(HaveOccurred())
	return b
}

var _ = Describe("Accelerations", func() {
	It("is a no-op for empty and single-body collections", func() {
		physics.Accelerations(nil)

		b := mustBody(1e24, physics.Vec2{X: 1, Y: 2}, physics.Vec2{}, 60)
		b.Acc = physics.Vec2{X: 99, Y: 99}
		physics.Accelerations([]*physics.Body{b})
		Expect(b.Acc).To(Equal(physics.Vec2{}))
	})

	It("matches the analytic two-body magnitudes", func() {
		m1, m2 := 1e30, 2e30
		r := 2e10
		b1 := mustBody(m1, physics.Vec2{X: -1e10}, physics.Vec2{}, 60)
		b2 := mustBody(m2, physics.Vec2{X: 1e10}, physics.Vec2{}, 60)

		physics.Accelerations([]*physics.Body{b1, b2})

		a1 := physics.G * m2 / (r * r)
		a2 := physics.G * m1 / (r * r)
		Expect(b1.Acc.X).To(BeNumerically("~", a1, a1*1e-9))
		Expect(b1.Acc.Y).To(BeZero())
		Expect(b2.Acc.X).To(BeNumerically("~", -a2, a2*1e-9))
		Expect(b2.Acc.Y).To(BeZero())
	})

	It("applies equal and opposite contributions per pair", func() {
		b1 := mustBody(3e28, physics.Vec2{X: -4e9, Y: 2e9}, physics.Vec2{}, 60)
		b2 := mustBody(7e27, physics.Vec2{X: 5e9, Y: -1e9}, physics.Vec2{}, 60)
		physics.Accelerations([]*physics.Body{b1, b2})

		f1 := b1.Acc.Scale(b1.Mass)
		f2 := b2.Acc.Scale(b2.Mass)
		scale := f1.Norm()
		Expect(f1.Add(f2).Norm()).To(BeNumerically("<", scale*1e-12))
	})

	It("sums forces to zero over a larger system", func() {
		rng := rand.New(rand.NewSource(7))
		bodies := make([]*physics.Body, 9)
		for i := range bodies {
			bodies[i] = mustBody(
				1e25*(1+rng.Float64()),
				physics.Vec2{X: rng.Float64() * 1e11, Y: rng.Float64() * 1e11},
				physics.Vec2{}, 60)
		}
		physics.Accelerations(bodies)

		var total physics.Vec2
		scale := 0.0
		for _, b := range bodies {
			total = total.Add(b.Acc.Scale(b.Mass))
			scale += b.Acc.Scale(b.Mass).Norm()
		}
		Expect(total.Norm()).To(BeNumerically("<", scale*1e-12))
	})

	It("keeps near-coincident pairs finite through the softening term", func() {
		b1 := mustBody(1e10, physics.Vec2{}, physics.Vec2{}, 60)
		b2 := mustBody(1e10, physics.Vec2{X: 1e-12}, physics.Vec2{}, 60)
		physics.Accelerations([]*physics.Body{b1, b2})

		Expect(b1.Acc.IsFinite()).To(BeTrue())
		Expect(b2.Acc.IsFinite()).To(BeTrue())
	})

	It("does not move positions or history", func() {
		b1 := mustBody(1e30, physics.Vec2{X: -1e10}, physics.Vec2{Y: 2e4}, 3600)
		b2 := mustBody(1e30, physics.Vec2{X: 1e10}, physics.Vec2{Y: -2e4}, 3600)
		pos1, prev1 := b1.Pos, b1.PrevPos

		physics.Accelerations([]*physics.Body{b1, b2})
		Expect(b1.Pos).To(Equal(pos1))
		Expect(b1.PrevPos).To(Equal(prev1))
	})
})

var _ = Describe("ParallelAccelerations", func() {
	It("matches the serial pass within floating-point tolerance", func() {
		rng := rand.New(rand.NewSource(42))
		n := 128
		serial := make([]*physics.Body, n)
		parallel := make([]*physics.Body, n)
		for i := 0; i < n; i++ {
			mass := 1e22 * (1 + 1e3*rng.Float64())
			pos := physics.Vec2{X: (rng.Float64() - 0.5) * 1e11, Y: (rng.Float64() - 0.5) * 1e11}
			serial[i] = mustBody(mass, pos, physics.Vec2{}, 60)
			parallel[i] = mustBody(mass, pos, physics.Vec2{}, 60)
		}

		physics.Accelerations(serial)
		physics.ParallelAccelerations(parallel, 4)

		for i := 0; i < n; i++ {
			tol := serial[i].Acc.Norm()*1e-9 + 1e-30
			Expect(parallel[i].Acc.X).To(BeNumerically("~", serial[i].Acc.X, tol))
			Expect(parallel[i].Acc.Y).To(BeNumerically("~", serial[i].Acc.Y, tol))
		}
	})

	It("is deterministic for a fixed worker count", func() {
		rng := rand.New(rand.NewSource(3))
		n := 96
		a := make([]*physics.Body, n)
		b := make([]*physics.Body, n)
		for i := 0; i < n; i++ {
			mass := 1e24 * (1 + rng.Float64())
			pos := physics.Vec2{X: rng.Float64() * 1e10, Y: rng.Float64() * 1e10}
			a[i] = mustBody(mass, pos, physics.Vec2{}, 60)
			b[i] = mustBody(mass, pos, physics.Vec2{}, 60)
		}

		physics.ParallelAccelerations(a, 3)
		physics.ParallelAccelerations(b, 3)
		for i := 0; i < n; i++ {
			Expect(a[i].Acc).To(Equal(b[i].Acc))
		}
	})
})

var _ = Describe("Advance", func() {
	It("applies the position-history update rule exactly", func() {
		b := &physics.Body{
			Mass:    1,
			Pos:     physics.Vec2{X: 3, Y: 4},
			PrevPos: physics.Vec2{X: 1, Y: 1},
			Acc:     physics.Vec2{X: 2, Y: -1},
		}
		physics.Advance([]*physics.Body{b}, 2)

		Expect(b.Pos).To(Equal(physics.Vec2{X: 13, Y: 3}))
		Expect(b.PrevPos).To(Equal(physics.Vec2{X: 3, Y: 4}))
	})

	It("honors a step size change going forward only", func() {
		// Bootstrapped at dt0=10 with vx=10, so the stored history spans
		// 100 m. The first advance at dt=5 still consumes that span: the
		// implied velocity doubles rather than the history shrinking.
		b := mustBody(1, physics.Vec2{X: 1000}, physics.Vec2{X: 10}, 10)

		physics.Advance([]*physics.Body{b}, 5)
		Expect(b.Pos.X).To(Equal(1100.0))
		Expect(b.Velocity(5).X).To(Equal(20.0))

		physics.Advance([]*physics.Body{b}, 5)
		Expect(b.Pos.X).To(Equal(1200.0))
	})

	It("moves a force-free body in a straight line", func() {
		b := mustBody(5, physics.Vec2{}, physics.Vec2{X: 3, Y: -2}, 2)
		for i := 0; i < 10; i++ {
			physics.Advance([]*physics.Body{b}, 2)
		}
		Expect(b.Pos.X).To(BeNumerically("~", 60, 1e-9))
		Expect(b.Pos.Y).To(BeNumerically("~", -40, 1e-9))
	})
})

var _ = Describe("NewBody", func() {
	It("rejects non-positive masses", func() {
		for _, mass := range []float64{0, -5, -1e30} {
			_, err := physics.NewBody(mass, physics.Vec2{}, physics.Vec2{}, 60, "red")
			Expect(err).To(HaveOccurred())
		}
	})

	It("bootstraps the previous position one backward step", func() {
		b := mustBody(1e24, physics.Vec2{X: 100, Y: 200}, physics.Vec2{X: 3, Y: -4}, 10)
		Expect(b.PrevPos).To(Equal(physics.Vec2{X: 70, Y: 240}))
		Expect(b.Velocity(10)).To(Equal(physics.Vec2{X: 3, Y: -4}))
	})
})

var _ = Describe("diagnostics", func() {
	It("reports kinetic plus potential energy", func() {
		// Two slow bodies far apart: kinetic dominates and is exact.
		b1 := mustBody(2, physics.Vec2{X: -1e15}, physics.Vec2{X: 3}, 1)
		b2 := mustBody(4, physics.Vec2{X: 1e15}, physics.Vec2{}, 1)
		e := physics.Energy([]*physics.Body{b1, b2}, 1)
		ke := 0.5 * 2 * 9
		Expect(e).To(BeNumerically("~", ke, math.Abs(ke)*1e-9))
	})

	It("sums linear and angular momentum", func() {
		b1 := mustBody(2, physics.Vec2{X: 1}, physics.Vec2{Y: 3}, 1)
		b2 := mustBody(5, physics.Vec2{X: -1}, physics.Vec2{Y: -2}, 1)
		p := physics.Momentum([]*physics.Body{b1, b2}, 1)
		Expect(p.X).To(BeZero())
		Expect(p.Y).To(BeNumerically("~", 2*3-5*2, 1e-12))

		l := physics.AngularMomentum([]*physics.Body{b1, b2}, 1)
		Expect(l).To(BeNumerically("~", 2*1*3+5*(-1)*(-2), 1e-12))
	})
})
