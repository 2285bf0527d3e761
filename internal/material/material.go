package material

import "fmt"

// Type tags one of the three material models.
type Type int

const (
	Rigid Type = iota
	SemiRigid
	Soft
)

func (t Type) String() string {
	switch t {
	case Rigid:
		return "rigid"
	case SemiRigid:
		return "semi_rigid"
	case Soft:
		return "soft"
	}
	return "unknown"
}

// Parse maps a config/CLI name to a material type.
func Parse(name string) (Type, error) {
	switch name {
	case "rigid":
		return Rigid, nil
	case "semi_rigid", "semirigid", "semi-rigid":
		return SemiRigid, nil
	case "soft":
		return Soft, nil
	}
	return Rigid, fmt.Errorf("unknown material: %q", name)
}

// Types returns all material types in tag order.
func Types() []Type {
	return []Type{Rigid, SemiRigid, Soft}
}

type RGB struct {
	R, G, B uint8
}

// Material is an immutable property record shared by every particle of
// its type.
//
// Density scales mass-dependent collision response, elasticity is the
// fraction of impact speed returned as rebound speed, damping is the
// per-tick internal velocity decay, and DeformThreshold is the impact
// speed above which stress accumulates. Deformable gates the whole
// stress/deformation path: rigid bodies only reflect.
type Material struct {
	Density         float64
	Elasticity      float64
	Damping         float64
	DeformThreshold float64
	Deformable      bool
	Color           RGB
}

var materials = [...]Material{
	Rigid:     {Density: 2.5, Elasticity: 0.2, Damping: 0.95, DeformThreshold: 1000, Deformable: false, Color: RGB{150, 150, 150}},
	SemiRigid: {Density: 1.8, Elasticity: 0.6, Damping: 0.85, DeformThreshold: 300, Deformable: true, Color: RGB{200, 150, 100}},
	Soft:      {Density: 1.0, Elasticity: 0.9, Damping: 0.7, DeformThreshold: 50, Deformable: true, Color: RGB{100, 200, 150}},
}

// ForType returns the property record for a material type. Unknown
// tags fall back to Rigid.
func ForType(t Type) Material {
	if t < Rigid || t > Soft {
		return materials[Rigid]
	}
	return materials[t]
}
