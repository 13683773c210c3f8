// Package metrics observes simulation snapshots and reduces them to
// scalar quality figures, mainly conservation-law drift.
package metrics

import (
	"math"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/sim"
)

type Metric interface {
	Name() string
	Observe(bodies []sim.BodyState)
	Value() float64
	Reset()
}

// EnergyDrift tracks the maximum relative deviation of total energy from
// its value at the first observation. Near zero for a well-behaved
// symplectic integration.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(bodies []sim.BodyState) {
	energy := totalEnergy(bodies)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the maximum absolute deviation of total linear
// momentum from its first observation, in kg*m/s. Pairwise forces cancel
// exactly, so anything beyond rounding noise indicates a broken force
// pass.
type MomentumDrift struct {
	initial  physics.Vec2
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(bodies []sim.BodyState) {
	var p physics.Vec2
	for _, b := range bodies {
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, p.Sub(m.initial).Norm())
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = physics.Vec2{}
	m.maxDrift = 0
	m.samples = 0
}

func totalEnergy(bodies []sim.BodyState) float64 {
	e := 0.0
	for i, b := range bodies {
		e += 0.5 * b.Mass * b.Vel.NormSq()
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[j].Pos.Sub(b.Pos).Norm() + physics.Softening
			e -= physics.G * b.Mass * bodies[j].Mass / r
		}
	}
	return e
}
