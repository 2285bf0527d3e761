package vec

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := New(3, 4)
	b := New(-1, 2)

	sum := a.Add(b)
	if sum.X != 2 || sum.Y != 6 {
		t.Errorf("expected (2,6), got (%f,%f)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if diff.X != 4 || diff.Y != 2 {
		t.Errorf("expected (4,2), got (%f,%f)", diff.X, diff.Y)
	}

	scaled := a.Scale(0.5)
	if scaled.X != 1.5 || scaled.Y != 2 {
		t.Errorf("expected (1.5,2), got (%f,%f)", scaled.X, scaled.Y)
	}
}

func TestMagnitude(t *testing.T) {
	v := New(3, 4)
	if v.Magnitude() != 5 {
		t.Errorf("expected magnitude 5, got %f", v.Magnitude())
	}

	if New(0, 0).Magnitude() != 0 {
		t.Error("zero vector should have zero magnitude")
	}
}

func TestNormalize(t *testing.T) {
	v := New(10, 0).Normalize()
	if v.X != 1 || v.Y != 0 {
		t.Errorf("expected (1,0), got (%f,%f)", v.X, v.Y)
	}

	n := New(3, -4).Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-12 {
		t.Errorf("expected unit magnitude, got %f", n.Magnitude())
	}
}

func TestNormalizeZero(t *testing.T) {
	z := New(0, 0).Normalize()
	if z.X != 0 || z.Y != 0 {
		t.Errorf("zero vector should normalize to zero, got (%f,%f)", z.X, z.Y)
	}
}

func TestDot(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)
	if a.Dot(b) != 11 {
		t.Errorf("expected dot 11, got %f", a.Dot(b))
	}

	perp := New(1, 0).Dot(New(0, 1))
	if perp != 0 {
		t.Errorf("perpendicular vectors should have zero dot, got %f", perp)
	}
}

func TestFromAngle(t *testing.T) {
	right := FromAngle(0)
	if math.Abs(right.X-1) > 1e-12 || math.Abs(right.Y) > 1e-12 {
		t.Errorf("expected (1,0), got (%f,%f)", right.X, right.Y)
	}

	up := FromAngle(math.Pi / 2)
	if math.Abs(up.X) > 1e-12 || math.Abs(up.Y-1) > 1e-12 {
		t.Errorf("expected (0,1), got (%f,%f)", up.X, up.Y)
	}
}

func TestIsValid(t *testing.T) {
	if !New(1, 2).IsValid() {
		t.Error("finite vector should be valid")
	}
	if New(math.NaN(), 0).IsValid() {
		t.Error("NaN vector should be invalid")
	}
	if New(0, math.Inf(1)).IsValid() {
		t.Error("Inf vector should be invalid")
	}
}
