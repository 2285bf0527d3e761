package debris

import (
	"errors"
	"testing"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/material"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/vec"
)

func newTestSystem(t *testing.T, capacity int) *System {
	t.Helper()
	s, err := NewSystem(testEnv(), capacity, 42)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return s
}

func TestSpawnCountAndSpeedBand(t *testing.T) {
	s := newTestSystem(t, 200)

	n := s.Spawn(vec.New(400, 300), 500, 20, material.Soft)
	if n != 20 {
		t.Fatalf("expected 20 spawned, got %d", n)
	}
	if s.Len() != 20 {
		t.Fatalf("expected 20 live particles, got %d", s.Len())
	}

	density := material.ForType(material.Soft).Density
	maxSpeed := 500/density + upwardBias
	for i, snap := range s.Snapshots() {
		speed := snap.Vel.Magnitude()
		if speed <= 0 || speed > maxSpeed {
			t.Errorf("particle %d: speed %f outside (0, %f]", i, speed, maxSpeed)
		}
		if snap.Material != material.Soft {
			t.Errorf("particle %d: wrong material %v", i, snap.Material)
		}
		if vec.Distance(snap.Pos, vec.New(400, 300)) > spawnScatter {
			t.Errorf("particle %d: spawned %f away from center", i, vec.Distance(snap.Pos, vec.New(400, 300)))
		}
	}
}

func TestSpawnClampsRequests(t *testing.T) {
	s := newTestSystem(t, 200)

	if n := s.Spawn(vec.New(400, 300), 500, 3, material.Rigid); n != MinCount {
		t.Errorf("count below range: expected %d, got %d", MinCount, n)
	}
	if n := s.Spawn(vec.New(400, 300), 500, 200, material.Rigid); n != MaxCount {
		t.Errorf("count above range: expected %d, got %d", MaxCount, n)
	}

	s.Clear()
	s.Spawn(vec.New(400, 300), 1e6, 10, material.Rigid)
	density := material.ForType(material.Rigid).Density
	limit := MaxForce/density + upwardBias
	for i, snap := range s.Snapshots() {
		if speed := snap.Vel.Magnitude(); speed > limit {
			t.Errorf("particle %d: force not clamped, speed %f > %f", i, speed, limit)
		}
	}
}

func TestCapacityEvictsOldestFirst(t *testing.T) {
	s := newTestSystem(t, 30)

	s.Spawn(vec.New(400, 300), 500, 20, material.Rigid)
	s.Spawn(vec.New(400, 300), 500, 20, material.Soft)

	if s.Len() != 30 {
		t.Fatalf("expected population capped at 30, got %d", s.Len())
	}

	snaps := s.Snapshots()
	for i := 0; i < 10; i++ {
		if snaps[i].Material != material.Rigid {
			t.Errorf("particle %d: expected surviving rigid particle, got %v", i, snaps[i].Material)
		}
	}
	for i := 10; i < 30; i++ {
		if snaps[i].Material != material.Soft {
			t.Errorf("particle %d: expected soft particle, got %v", i, snaps[i].Material)
		}
	}
}

func TestUpdateDropsExpired(t *testing.T) {
	env := testEnv()
	env.MaxAge = 0.05
	s, err := NewSystem(env, 100, 1)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	s.Spawn(vec.New(600, 300), 500, 20, material.Soft)
	for i := 0; i < 20; i++ {
		if err := s.Update(testDt); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if s.Len() != 0 {
		t.Errorf("expected all particles expired, %d remain", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := newTestSystem(t, 100)
	s.Spawn(vec.New(400, 300), 500, 20, material.SemiRigid)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty system after clear, got %d", s.Len())
	}
	if len(s.Snapshots()) != 0 {
		t.Error("expected no snapshots after clear")
	}
}

func TestUpdateRejectsBadTimestep(t *testing.T) {
	s := newTestSystem(t, 10)
	if err := s.Update(0); !errors.Is(err, ErrInvalidTimestep) {
		t.Errorf("expected ErrInvalidTimestep, got %v", err)
	}
}

func TestNewSystemValidation(t *testing.T) {
	bad := testEnv()
	bad.AirResistance = 0
	if _, err := NewSystem(bad, 10, 1); !errors.Is(err, ErrAirResistanceRange) {
		t.Errorf("expected air resistance error, got %v", err)
	}

	if _, err := NewSystem(testEnv(), 0, 1); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("expected capacity error, got %v", err)
	}
}

func TestSnapshotsDoNotAliasState(t *testing.T) {
	s := newTestSystem(t, 10)
	s.Spawn(vec.New(400, 300), 500, 5, material.Soft)
	if err := s.Update(testDt); err != nil {
		t.Fatalf("update: %v", err)
	}

	snaps := s.Snapshots()
	if len(snaps[0].Trail) == 0 {
		t.Fatal("expected trail entries after an update")
	}
	snaps[0].Trail[0] = vec.New(-9999, -9999)

	again := s.Snapshots()
	if again[0].Trail[0] == vec.New(-9999, -9999) {
		t.Error("snapshot trail aliases internal particle state")
	}
}

func TestSpawnIsDeterministicPerSeed(t *testing.T) {
	a, err := NewSystem(testEnv(), 50, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSystem(testEnv(), 50, 7)
	if err != nil {
		t.Fatal(err)
	}

	a.Spawn(vec.New(400, 300), 500, 20, material.SemiRigid)
	b.Spawn(vec.New(400, 300), 500, 20, material.SemiRigid)

	sa, sb := a.Snapshots(), b.Snapshots()
	for i := range sa {
		if sa[i].Pos != sb[i].Pos || sa[i].Vel != sb[i].Vel {
			t.Fatalf("particle %d: same seed produced different spawns", i)
		}
	}
}
