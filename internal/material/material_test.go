package material

import "testing"

func TestForType(t *testing.T) {
	for _, mt := range Types() {
		m := ForType(mt)
		if m.Density <= 0 {
			t.Errorf("%s: density must be positive, got %f", mt, m.Density)
		}
		if m.Elasticity < 0 || m.Elasticity > 1 {
			t.Errorf("%s: elasticity out of [0,1]: %f", mt, m.Elasticity)
		}
		if m.Damping < 0 || m.Damping > 1 {
			t.Errorf("%s: damping out of [0,1]: %f", mt, m.Damping)
		}
		if m.DeformThreshold < 0 {
			t.Errorf("%s: negative deformation threshold: %f", mt, m.DeformThreshold)
		}
	}
}

func TestRigidDoesNotDeform(t *testing.T) {
	if ForType(Rigid).Deformable {
		t.Error("rigid material must not deform")
	}
	if !ForType(SemiRigid).Deformable {
		t.Error("semi-rigid material should deform")
	}
	if !ForType(Soft).Deformable {
		t.Error("soft material should deform")
	}
}

func TestDensityOrdering(t *testing.T) {
	// Rigid is the densest model, soft the lightest.
	if !(ForType(Rigid).Density > ForType(SemiRigid).Density) {
		t.Error("expected rigid denser than semi-rigid")
	}
	if !(ForType(SemiRigid).Density > ForType(Soft).Density) {
		t.Error("expected semi-rigid denser than soft")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		expected Type
	}{
		{"rigid", Rigid},
		{"semi_rigid", SemiRigid},
		{"semi-rigid", SemiRigid},
		{"soft", Soft},
	}
	for _, tt := range tests {
		mt, err := Parse(tt.name)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.name, err)
		}
		if mt != tt.expected {
			t.Errorf("Parse(%q): expected %v, got %v", tt.name, tt.expected, mt)
		}
	}

	if _, err := Parse("adamantium"); err == nil {
		t.Error("expected error for unknown material name")
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, mt := range Types() {
		parsed, err := Parse(mt.String())
		if err != nil {
			t.Fatalf("Parse(%s): %v", mt, err)
		}
		if parsed != mt {
			t.Errorf("round trip failed for %v", mt)
		}
	}
}
