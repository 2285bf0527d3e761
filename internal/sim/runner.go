// Package sim drives headless, fixed-timestep debris runs.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/config"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/debris"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/metrics"
)

// Frame is one recorded tick of the field.
type Frame struct {
	Time          float64 `json:"time"`
	Count         int     `json:"count"`
	KineticEnergy float64 `json:"kinetic_energy"`
	MaxStress     float64 `json:"max_stress"`
	MeanSpeed     float64 `json:"mean_speed"`
}

// Result holds the full series of a finished run plus summary metrics.
type Result struct {
	Config     *config.Config
	Frames     []Frame
	Metrics    map[string]float64
	StepsTaken int
	Elapsed    time.Duration
}

// Runner owns a system for the duration of one headless run.
type Runner struct {
	cfg     *config.Config
	system  *debris.System
	metrics []metrics.Metric
}

// NewRunner validates the config and prepares the particle system.
func NewRunner(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("sim: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	system, err := debris.NewSystem(cfg.Environment(), cfg.Simulation.MaxParticles, cfg.Simulation.Seed)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return &Runner{
		cfg:     cfg,
		system:  system,
		metrics: metrics.Defaults(),
	}, nil
}

// Run detonates the configured explosion, then steps the field until
// the duration elapses, every particle is gone, or ctx is cancelled.
// The series collected so far is returned either way.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	mt, err := r.cfg.MaterialType()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	for _, m := range r.metrics {
		m.Reset()
	}
	r.system.Clear()
	r.system.Spawn(r.cfg.BlastCenter(), r.cfg.Explosion.Force, r.cfg.Explosion.Count, mt)

	dt := r.cfg.Simulation.Dt
	steps := int(r.cfg.Simulation.Duration / dt)
	result := &Result{
		Config: r.cfg,
		Frames: make([]Frame, 0, steps),
	}

	start := time.Now()
	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			r.summarize(result)
			return result, ctx.Err()
		default:
		}

		if err := r.system.Update(dt); err != nil {
			return nil, fmt.Errorf("sim: step %d: %w", i, err)
		}
		t += dt

		snaps := r.system.Snapshots()
		for _, m := range r.metrics {
			m.Observe(snaps, t)
		}
		result.Frames = append(result.Frames, frameOf(t, snaps))
		result.StepsTaken++

		if r.system.Len() == 0 {
			break
		}
	}

	result.Elapsed = time.Since(start)
	r.summarize(result)
	return result, nil
}

// RunToField steps the configured run and returns the last non-empty
// particle field, for rendering a still image of the debris.
func (r *Runner) RunToField(ctx context.Context) ([]debris.Snapshot, error) {
	mt, err := r.cfg.MaterialType()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	r.system.Clear()
	r.system.Spawn(r.cfg.BlastCenter(), r.cfg.Explosion.Force, r.cfg.Explosion.Count, mt)

	dt := r.cfg.Simulation.Dt
	steps := int(r.cfg.Simulation.Duration / dt)
	last := r.system.Snapshots()
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		default:
		}
		if err := r.system.Update(dt); err != nil {
			return nil, fmt.Errorf("sim: step %d: %w", i, err)
		}
		if r.system.Len() == 0 {
			break
		}
		last = r.system.Snapshots()
	}
	return last, nil
}

func (r *Runner) summarize(result *Result) {
	result.Metrics = make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func frameOf(t float64, snaps []debris.Snapshot) Frame {
	f := Frame{Time: t, Count: len(snaps)}
	f.KineticEnergy = metrics.TotalKinetic(snaps)
	for _, s := range snaps {
		if s.Stress > f.MaxStress {
			f.MaxStress = s.Stress
		}
		f.MeanSpeed += s.Vel.Magnitude()
	}
	if len(snaps) > 0 {
		f.MeanSpeed /= float64(len(snaps))
	}
	return f
}
