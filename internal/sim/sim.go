// Package sim owns the body and trail collections and exposes the atomic
// unit of progress. The package is deliberately passive: whether and how
// often Step runs is the caller's policy (a CLI loop, a TUI ticker),
// never state held here.
package sim

import (
	"sync"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/trail"
)

const (
	// DefaultDt is one day in seconds.
	DefaultDt = 86400.0

	DefaultTrailCapacity = 100
)

// BodySpec describes one body for AddBody and Load.
type BodySpec struct {
	Mass   float64
	X, Y   float64
	VX, VY float64
	Color  string
}

// BodyState is one entry of a Snapshot: a copy, safe to hold across
// steps. Vel is the velocity implied by the position history at the
// current step size.
type BodyState struct {
	Pos   physics.Vec2
	Vel   physics.Vec2
	Mass  float64
	Color string
}

// Simulation owns an ordered body collection and one trail buffer per
// body, index-aligned at all observable points. A single mutex makes
// collection mutation, configuration changes, and Step mutually
// exclusive; Snapshot and Trails copy under the same lock, so a renderer
// never observes a half-applied step.
type Simulation struct {
	mu       sync.Mutex
	bodies   []*physics.Body
	trails   []*trail.Buffer
	dt       float64
	trailCap int
	workers  int
	steps    int
	time     float64
}

func New() *Simulation {
	return &Simulation{dt: DefaultDt, trailCap: DefaultTrailCapacity}
}

// AddBody appends one body, bootstrapped with the current step size, and
// its empty trail buffer in the same critical section. Returns the new
// body's index, or a ParamError for a non-positive mass with the
// collection unchanged.
func (s *Simulation) AddBody(spec BodySpec) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.newBody(spec)
	if err != nil {
		return -1, &ParamError{Op: "add_body", Param: "mass", Value: spec.Mass}
	}
	s.bodies = append(s.bodies, b)
	s.trails = append(s.trails, trail.New(s.trailCap))
	return len(s.bodies) - 1, nil
}

// Load replaces the entire collection. Bodies and trail buffers are
// rebuilt together, so the index alignment invariant holds even when a
// spec in the middle of the list is rejected (nothing is replaced then).
func (s *Simulation) Load(specs []BodySpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bodies := make([]*physics.Body, 0, len(specs))
	for _, spec := range specs {
		b, err := s.newBody(spec)
		if err != nil {
			return &ParamError{Op: "load", Param: "mass", Value: spec.Mass}
		}
		bodies = append(bodies, b)
	}
	s.bodies = bodies
	s.trails = make([]*trail.Buffer, len(bodies))
	for i := range s.trails {
		s.trails[i] = trail.New(s.trailCap)
	}
	s.steps = 0
	s.time = 0
	return nil
}

// RemoveAll empties both collections.
func (s *Simulation) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies, s.trails = nil, nil
	s.steps = 0
	s.time = 0
}

func (s *Simulation) newBody(spec BodySpec) (*physics.Body, error) {
	return physics.NewBody(spec.Mass,
		physics.Vec2{X: spec.X, Y: spec.Y},
		physics.Vec2{X: spec.VX, Y: spec.VY},
		s.dt, spec.Color)
}

// SetTimeStep changes the step size used by subsequent Step calls. The
// change is forward-only: position history established under the old dt
// is not re-bootstrapped, so the first step after a change implies a
// velocity discontinuity (see physics.Advance).
func (s *Simulation) SetTimeStep(dt float64) error {
	if dt <= 0 {
		return &ParamError{Op: "set_time_step", Param: "dt", Value: dt}
	}
	s.mu.Lock()
	s.dt = dt
	s.mu.Unlock()
	return nil
}

func (s *Simulation) TimeStep() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dt
}

// SetTrailCapacity resizes every trail buffer, dropping oldest samples
// when shrinking. Zero disables trail recording.
func (s *Simulation) SetTrailCapacity(n int) error {
	if n < 0 {
		return &ParamError{Op: "set_trail_capacity", Param: "capacity", Value: float64(n)}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trailCap = n
	for _, t := range s.trails {
		t.Resize(n)
	}
	return nil
}

func (s *Simulation) TrailCapacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trailCap
}

// SetWorkers selects how many goroutines the force pass may use.
// 0 means GOMAXPROCS, 1 forces the serial pass.
func (s *Simulation) SetWorkers(n int) {
	s.mu.Lock()
	s.workers = n
	s.mu.Unlock()
}

// Step advances the simulation by the current step size: one force pass,
// one Verlet update, then one trail sample per body. Zero bodies is a
// well-defined no-op. If the update produces a non-finite position the
// whole step is rolled back and a NumericError returned, so the bad
// state never poisons later steps.
func (s *Simulation) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bodies) == 0 {
		return nil
	}

	saved := make([]physics.Body, len(s.bodies))
	for i, b := range s.bodies {
		saved[i] = *b
	}

	if s.workers == 1 {
		physics.Accelerations(s.bodies)
	} else {
		physics.ParallelAccelerations(s.bodies, s.workers)
	}
	physics.Advance(s.bodies, s.dt)

	for i, b := range s.bodies {
		if !b.Pos.IsFinite() {
			for j := range saved {
				*s.bodies[j] = saved[j]
			}
			return &NumericError{Body: i}
		}
	}

	for i, b := range s.bodies {
		s.trails[i].Record(b.Pos)
	}
	s.steps++
	s.time += s.dt
	return nil
}

// Snapshot returns per-body state copies in collection order.
func (s *Simulation) Snapshot() []BodyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]BodyState, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = BodyState{
			Pos:   b.Pos,
			Vel:   b.Velocity(s.dt),
			Mass:  b.Mass,
			Color: b.Color,
		}
	}
	return out
}

// Trails returns each body's retained samples, oldest first, in
// collection order. The slices are copies.
func (s *Simulation) Trails() [][]physics.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]physics.Vec2, len(s.trails))
	for i, t := range s.trails {
		out[i] = t.Samples()
	}
	return out
}

func (s *Simulation) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bodies)
}

// Steps reports how many steps completed since the last Load/RemoveAll.
func (s *Simulation) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

// Time reports accumulated simulated seconds, summing whatever dt was in
// effect at each step.
func (s *Simulation) Time() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.time
}

// Energy returns total energy of the current state; zero for an empty
// simulation.
func (s *Simulation) Energy() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return physics.Energy(s.bodies, s.dt)
}

// Momentum returns total linear momentum of the current state.
func (s *Simulation) Momentum() physics.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return physics.Momentum(s.bodies, s.dt)
}
