package storage

import (
	"context"
	"testing"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/config"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/sim"
)

func runResult(t *testing.T) *sim.Result {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Simulation.Duration = 0.5
	cfg.Simulation.Seed = 7
	cfg.Explosion.Count = 10
	cfg.Explosion.Material = "soft"

	runner, err := sim.NewRunner(cfg)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	result, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return result
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	result := runResult(t)
	runID, err := store.Save(result)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Material != "soft" {
		t.Errorf("expected material soft, got %s", meta.Material)
	}
	if meta.Steps != result.StepsTaken {
		t.Errorf("expected %d steps, got %d", result.StepsTaken, meta.Steps)
	}
	if _, ok := meta.Metrics["kinetic_energy"]; !ok {
		t.Error("metadata missing kinetic_energy metric")
	}

	frames, err := store.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series: %v", err)
	}
	if len(frames) != len(result.Frames) {
		t.Fatalf("expected %d frames, got %d", len(result.Frames), len(frames))
	}
	if frames[0].Count != result.Frames[0].Count {
		t.Errorf("first frame count mismatch: %d vs %d", frames[0].Count, result.Frames[0].Count)
	}
}

func TestListFindsSavedRuns(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty store, got %d runs", len(runs))
	}

	result := runResult(t)
	runID, err := store.Save(result)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].ID != runID {
		t.Errorf("expected run %s, got %s", runID, runs[0].ID)
	}
}

func TestListMissingBaseDir(t *testing.T) {
	store := New(t.TempDir() + "/never-created")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("missing_0"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := store.LoadSeries("missing_0"); err == nil {
		t.Error("expected error for unknown series")
	}
}
