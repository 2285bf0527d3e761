package debris

import (
	"math"
	"math/rand"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/material"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/vec"
)

// Explosion request limits. Requests outside these ranges come from
// coarse UI controls and are clamped, not rejected.
const (
	MinForce = 100.0
	MaxForce = 1000.0
	MinCount = 5
	MaxCount = 50
)

const (
	minSpawnSize = 3.0
	maxSpawnSize = 15.0

	// Spawn speed is force scaled by a uniform factor in
	// [speedBandLow, 1] and divided by density: the same blast moves
	// heavy material slower.
	speedBandLow = 0.5

	// Explosions kick debris slightly upward.
	upwardBias = 200.0

	// Particles scatter up to this far from the explosion center.
	spawnScatter = 30.0

	maxSpin = 5.0
)

// System owns the live particle population. Storage is a fixed
// capacity FIFO ring: spawning past capacity evicts the oldest
// particles in O(1) per eviction.
type System struct {
	env     Environment
	buf     []*Particle
	head    int
	count   int
	scratch []*Particle
	rng     *rand.Rand
}

func NewSystem(env Environment, capacity int, seed int64) (*System, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &System{
		env:     env,
		buf:     make([]*Particle, capacity),
		scratch: make([]*Particle, 0, capacity),
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *System) Len() int      { return s.count }
func (s *System) Capacity() int { return len(s.buf) }

func (s *System) Environment() Environment { return s.env }

// SetEnvironment swaps the world parameters between ticks.
func (s *System) SetEnvironment(env Environment) error {
	if err := env.Validate(); err != nil {
		return err
	}
	s.env = env
	return nil
}

func (s *System) at(i int) *Particle {
	return s.buf[(s.head+i)%len(s.buf)]
}

func (s *System) push(p *Particle) {
	if s.count == len(s.buf) {
		s.buf[s.head] = nil
		s.head = (s.head + 1) % len(s.buf)
		s.count--
	}
	s.buf[(s.head+s.count)%len(s.buf)] = p
	s.count++
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Spawn creates count particles around center with material-seeded
// initial conditions: uniform direction, speed in a band derived from
// force and density, a small upward kick, and random spin. Returns
// the number spawned after clamping.
func (s *System) Spawn(center vec.Vec, force float64, count int, mt material.Type) int {
	force = clampFloat(force, MinForce, MaxForce)
	count = clampInt(count, MinCount, MaxCount)
	m := material.ForType(mt)

	for i := 0; i < count; i++ {
		dir := vec.FromAngle(s.rng.Float64() * 2 * math.Pi)
		speed := force * (speedBandLow + s.rng.Float64()*(1-speedBandLow)) / m.Density

		velocity := dir.Scale(speed)
		velocity.Y -= s.rng.Float64() * upwardBias

		pos := center.Add(dir.Scale(s.rng.Float64() * spawnScatter))
		size := minSpawnSize + s.rng.Float64()*(maxSpawnSize-minSpawnSize)

		p := NewParticle(pos, velocity, s.rng.Float64()*2*math.Pi, mt, size)
		p.AngularVel = (s.rng.Float64()*2 - 1) * maxSpin
		s.push(p)
	}
	return count
}

// Update integrates every live particle, then drops expired ones.
// Particles never read each other's state, so removal order cannot
// affect the physics.
func (s *System) Update(dt float64) error {
	if dt <= 0 {
		return ErrInvalidTimestep
	}

	for i := 0; i < s.count; i++ {
		if err := s.at(i).Integrate(dt, s.env); err != nil {
			return err
		}
	}

	s.scratch = s.scratch[:0]
	for i := 0; i < s.count; i++ {
		if p := s.at(i); p.IsAlive() {
			s.scratch = append(s.scratch, p)
		}
	}
	copy(s.buf, s.scratch)
	for i := len(s.scratch); i < len(s.buf); i++ {
		s.buf[i] = nil
	}
	s.head = 0
	s.count = len(s.scratch)
	return nil
}

// Clear removes every particle immediately.
func (s *System) Clear() {
	for i := range s.buf {
		s.buf[i] = nil
	}
	s.head = 0
	s.count = 0
}

// Snapshots returns read-only particle views in spawn order for
// rendering and metrics. Nothing in the returned slice aliases
// mutable particle state.
func (s *System) Snapshots() []Snapshot {
	snaps := make([]Snapshot, s.count)
	for i := 0; i < s.count; i++ {
		snaps[i] = s.at(i).Snapshot()
	}
	return snaps
}
