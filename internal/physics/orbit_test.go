package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravlab/internal/physics"
)

func stepSystem(bodies []*physics.Body, dt float64, n int) {
	for i := 0; i < n; i++ {
		physics.Accelerations(bodies)
		physics.Advance(bodies, dt)
	}
}

var _ = Describe("conservation", func() {
	It("keeps total momentum constant over many steps", func() {
		dt := 3600.0
		bodies := []*physics.Body{
			mustBody(5e29, physics.Vec2{}, physics.Vec2{}, dt),
			mustBody(1e24, physics.Vec2{X: 1.5e11}, physics.Vec2{Y: 2.5e4}, dt),
			mustBody(7e22, physics.Vec2{X: -2e11, Y: 1e10}, physics.Vec2{X: 1e4, Y: -5e3}, dt),
		}

		p0 := physics.Momentum(bodies, dt)
		scale := 0.0
		for _, b := range bodies {
			scale += b.Mass * b.Velocity(dt).Norm()
		}

		stepSystem(bodies, dt, 200)

		drift := physics.Momentum(bodies, dt).Sub(p0).Norm()
		Expect(drift).To(BeNumerically("<", scale*1e-8))
	})

	It("bounds energy drift over an eccentric orbit", func() {
		dt := 300.0
		bodies := []*physics.Body{
			mustBody(1e30, physics.Vec2{X: -1e10}, physics.Vec2{Y: 2e4}, dt),
			mustBody(1e30, physics.Vec2{X: 1e10}, physics.Vec2{Y: -2e4}, dt),
		}

		e0 := physics.Energy(bodies, dt)
		stepSystem(bodies, dt, 2000)
		e1 := physics.Energy(bodies, dt)

		Expect(math.Abs(e1-e0) / math.Abs(e0)).To(BeNumerically("<", 5e-3))
	})
})

var _ = Describe("two-body periodicity", func() {
	// T = 2*pi*sqrt(a^3/mu) with the semi-major axis from vis-viva.
	keplerPeriod := func(m1, m2, separation, vrel float64) float64 {
		mu := physics.G * (m1 + m2)
		a := 1 / (2/separation - vrel*vrel/mu)
		return 2 * math.Pi * math.Sqrt(a*a*a/mu)
	}

	It("returns an eccentric binary near its starting configuration", func() {
		dt := 300.0
		m := 1e30
		bodies := []*physics.Body{
			mustBody(m, physics.Vec2{X: -1e10}, physics.Vec2{Y: 2e4}, dt),
			mustBody(m, physics.Vec2{X: 1e10}, physics.Vec2{Y: -2e4}, dt),
		}
		start := []physics.Vec2{bodies[0].Pos, bodies[1].Pos}

		period := keplerPeriod(m, m, 2e10, 4e4)
		stepSystem(bodies, dt, int(math.Round(period/dt)))

		// Tolerance is a tenth of the initial separation: one orbit of
		// discrete steps through a fast perihelion passage.
		for i, b := range bodies {
			Expect(b.Pos.Sub(start[i]).Norm()).To(BeNumerically("<", 2e9),
				"body %d did not return", i)
		}
	})

	It("closes a circular binary orbit tightly", func() {
		m := 1e30
		r := 1e10
		v := math.Sqrt(physics.G * m / (4 * r))
		period := 2 * math.Pi * r / v
		steps := 20000
		dt := period / float64(steps)

		bodies := []*physics.Body{
			mustBody(m, physics.Vec2{X: -r}, physics.Vec2{Y: v}, dt),
			mustBody(m, physics.Vec2{X: r}, physics.Vec2{Y: -v}, dt),
		}
		start := []physics.Vec2{bodies[0].Pos, bodies[1].Pos}

		stepSystem(bodies, dt, steps)

		for i, b := range bodies {
			Expect(b.Pos.Sub(start[i]).Norm()).To(BeNumerically("<", r*0.05),
				"body %d did not return", i)
		}
	})
})
