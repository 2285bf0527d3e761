package debris

import (
	"math"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/material"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/vec"
)

const (
	trailCap = 10

	// Stress tuning. Impact speeds run up to ~1000 px/s, so with the
	// gain below a single hard landing of a soft particle adds O(50)
	// stress. The cap bounds deformation; decay heals a saturated
	// particle in a couple of seconds at 60 ticks/s.
	stressGain  = 0.05
	stressCap   = 150.0
	stressDecay = 0.95

	// maxDeform bounds the rendered size change: a fully stressed
	// particle shrinks to 65% of its base size, never further.
	maxDeform = 0.35

	// Impacts slower than restSpeed are resting contact, not
	// collisions: the axis velocity is killed instead of reflected so
	// a particle sitting on the ground stays quiescent under gravity.
	restSpeed = 10.0

	groundFriction = 0.8

	// Particles that have bounced repeatedly and lost almost all
	// speed are settled and removed.
	settleSpeed      = 10.0
	settleCollisions = 5

	// Rigid bodies keep spinning; internal losses barely touch their
	// angular velocity.
	rigidSpinDecay = 0.999
)

type LifeState uint8

const (
	Alive LifeState = iota
	Expired
)

// Particle is one debris body. It owns its kinematic state and its
// collision response; the owning System is the only holder of a
// reference to it.
type Particle struct {
	Pos vec.Vec
	Vel vec.Vec

	Rotation   float64
	AngularVel float64

	Material material.Type

	// BaseSize is the spawn radius; Size is the current rendered
	// radius after deformation.
	BaseSize float64
	Size     float64

	Stress      float64
	Deformation float64
	Age         float64

	mat        material.Material
	trail      []vec.Vec
	state      LifeState
	collisions int
}

// NewParticle constructs an alive particle with zero stress and an
// empty trail. The material record is looked up once; particles never
// own a mutable copy.
func NewParticle(pos, vel vec.Vec, rotation float64, mt material.Type, size float64) *Particle {
	if size <= 0 {
		size = 1
	}
	return &Particle{
		Pos:      pos,
		Vel:      vel,
		Rotation: rotation,
		Material: mt,
		BaseSize: size,
		Size:     size,
		mat:      material.ForType(mt),
		trail:    make([]vec.Vec, 0, trailCap),
	}
}

func (p *Particle) State() LifeState { return p.state }
func (p *Particle) IsAlive() bool    { return p.state == Alive }
func (p *Particle) Collisions() int  { return p.collisions }

// Mass derives from spawn size and material density.
func (p *Particle) Mass() float64 {
	return p.BaseSize * p.BaseSize * p.mat.Density / 1000
}

// Trail returns a copy of the recent positions, oldest first.
func (p *Particle) Trail() []vec.Vec {
	t := make([]vec.Vec, len(p.trail))
	copy(t, p.trail)
	return t
}

// Integrate advances the particle by one fixed step: gravity, global
// air resistance, material damping, position and rotation updates,
// trail append, boundary resolution, stress decay, and expiry.
func (p *Particle) Integrate(dt float64, env Environment) error {
	if dt <= 0 {
		return ErrInvalidTimestep
	}
	if p.state != Alive {
		return nil
	}

	p.Vel = p.Vel.Add(env.Gravity.Scale(dt))
	p.Vel = p.Vel.Scale(env.AirResistance)
	p.Vel = p.Vel.Scale(p.mat.Damping)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	p.Rotation += p.AngularVel * dt
	if p.mat.Deformable {
		p.AngularVel *= p.mat.Damping
	} else {
		p.AngularVel *= rigidSpinDecay
	}

	p.pushTrail(p.Pos)
	p.resolveBounds(env.Bounds)

	p.Stress *= stressDecay
	p.refreshDeformation()

	p.Age += dt
	if !env.Bounds.Contains(p.Pos, env.ExpiryMargin) {
		p.state = Expired
	}
	if env.MaxAge > 0 && p.Age > env.MaxAge {
		p.state = Expired
	}
	if p.collisions > settleCollisions && p.Vel.Magnitude() < settleSpeed {
		p.state = Expired
	}
	return nil
}

func (p *Particle) pushTrail(pos vec.Vec) {
	if len(p.trail) == trailCap {
		copy(p.trail, p.trail[1:])
		p.trail = p.trail[:trailCap-1]
	}
	p.trail = append(p.trail, pos)
}

// resolveBounds checks each axis independently and runs the material
// collision response for any crossed edge. The top of the rect is
// open: blasts may arc above the world and fall back, or expire past
// the margin.
func (p *Particle) resolveBounds(b Bounds) {
	if p.Pos.X-p.Size < b.MinX {
		p.collideAxis(&p.Vel.X, &p.Pos.X, b.MinX+p.Size, false)
	} else if p.Pos.X+p.Size > b.MaxX {
		p.collideAxis(&p.Vel.X, &p.Pos.X, b.MaxX-p.Size, false)
	}

	if p.Pos.Y+p.Size > b.MaxY {
		p.collideAxis(&p.Vel.Y, &p.Pos.Y, b.MaxY-p.Size, true)
	}
}

// collideAxis reflects one velocity component by the material
// elasticity, clamps the particle out of the boundary, and feeds the
// impact into stress accumulation. Impact speed is read before the
// reflection. floor marks ground contact, which also applies
// tangential friction.
func (p *Particle) collideAxis(v *float64, pos *float64, clampTo float64, floor bool) {
	impact := math.Abs(*v)
	*pos = clampTo

	if impact < restSpeed {
		*v = 0
		return
	}

	*v = -*v * p.mat.Elasticity
	if floor {
		f := groundFriction
		if p.mat.Deformable {
			f *= 0.8
		}
		p.Vel.X *= f
	}

	p.collisions++
	p.accumulateStress(impact)
}

// accumulateStress converts excess impact speed into stress, weighted
// by density: heavier particles carry more energy into the boundary.
func (p *Particle) accumulateStress(impact float64) {
	if !p.mat.Deformable || impact <= p.mat.DeformThreshold {
		return
	}
	p.Stress += (impact - p.mat.DeformThreshold) * p.mat.Density * stressGain
	if p.Stress > stressCap {
		p.Stress = stressCap
	}
	p.refreshDeformation()
}

// refreshDeformation recomputes the derived deformation from current
// stress. The square-root mapping keeps small stresses visible while
// saturating toward maxDeform.
func (p *Particle) refreshDeformation() {
	if !p.mat.Deformable {
		p.Deformation = 0
		p.Size = p.BaseSize
		return
	}
	p.Deformation = maxDeform * math.Sqrt(p.Stress/stressCap)
	p.Size = p.BaseSize * (1 - p.Deformation)
}

// Snapshot is the read-only particle view handed to renderers and
// metrics. The trail slice is a copy.
type Snapshot struct {
	Pos         vec.Vec
	Vel         vec.Vec
	Rotation    float64
	Size        float64
	BaseSize    float64
	Stress      float64
	Deformation float64
	Mass        float64
	Material    material.Type
	Trail       []vec.Vec
}

func (p *Particle) Snapshot() Snapshot {
	return Snapshot{
		Pos:         p.Pos,
		Vel:         p.Vel,
		Rotation:    p.Rotation,
		Size:        p.Size,
		BaseSize:    p.BaseSize,
		Stress:      p.Stress,
		Deformation: p.Deformation,
		Mass:        p.Mass(),
		Material:    p.Material,
		Trail:       p.Trail(),
	}
}
