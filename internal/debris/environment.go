package debris

import (
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/vec"
)

// Bounds is the axis-aligned simulation rectangle. MaxY is the ground
// line; particles collide with the side walls and the ground, while
// the top is open.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

func (b Bounds) Center() vec.Vec {
	return vec.New(b.MinX+b.Width()/2, b.MinY+b.Height()/2)
}

// Contains reports whether p lies inside the rect grown by margin on
// all sides.
func (b Bounds) Contains(p vec.Vec, margin float64) bool {
	return p.X >= b.MinX-margin && p.X <= b.MaxX+margin &&
		p.Y >= b.MinY-margin && p.Y <= b.MaxY+margin
}

// Environment carries the world parameters threaded through every
// integration call. It is owned by the driver; the physics core never
// reads ambient state.
type Environment struct {
	Gravity vec.Vec

	// AirResistance is the global per-tick multiplicative velocity
	// decay in (0,1]. It composes with, and is distinct from, the
	// material damping factor.
	AirResistance float64

	Bounds Bounds

	// ExpiryMargin grows the bounds rect for the expiry check, so
	// particles may briefly leave the visible area and return.
	ExpiryMargin float64

	// MaxAge expires particles after this many seconds. Zero disables
	// age-based expiry.
	MaxAge float64
}

// Validate rejects internally inconsistent environments. These are
// programming errors, not runtime conditions.
func (e Environment) Validate() error {
	if !e.Gravity.IsValid() {
		return ErrInvalidGravity
	}
	if e.AirResistance <= 0 || e.AirResistance > 1 {
		return ErrAirResistanceRange
	}
	if e.Bounds.Width() <= 0 || e.Bounds.Height() <= 0 {
		return ErrInvalidBounds
	}
	return nil
}
