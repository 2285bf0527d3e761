package debris

import "errors"

// Domain errors for simulation construction and stepping.
var (
	// ErrInvalidTimestep indicates a zero or negative dt.
	ErrInvalidTimestep = errors.New("debris: timestep must be positive")

	// ErrAirResistanceRange indicates an air resistance factor outside (0,1].
	ErrAirResistanceRange = errors.New("debris: air resistance factor must be in (0,1]")

	// ErrInvalidBounds indicates an inverted or degenerate bounds rect.
	ErrInvalidBounds = errors.New("debris: bounds must have positive extent")

	// ErrInvalidCapacity indicates a non-positive particle capacity.
	ErrInvalidCapacity = errors.New("debris: particle capacity must be positive")

	// ErrInvalidGravity indicates a non-finite gravity vector.
	ErrInvalidGravity = errors.New("debris: gravity must be finite")
)
