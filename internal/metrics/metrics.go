package metrics

import (
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/debris"
)

// Metric observes the particle field once per tick and reduces it to
// a single summary value at the end of a run.
type Metric interface {
	Name() string
	Observe(particles []debris.Snapshot, t float64)
	Value() float64
	Reset()
}

// KineticEnergy averages total kinetic energy over all observed ticks.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(particles []debris.Snapshot, t float64) {
	k.total += TotalKinetic(particles)
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// TotalKinetic sums 0.5*m*v^2 over the field.
func TotalKinetic(particles []debris.Snapshot) float64 {
	sum := 0.0
	for _, p := range particles {
		v := p.Vel.Magnitude()
		sum += 0.5 * p.Mass * v * v
	}
	return sum
}

// PeakStress tracks the highest stress seen on any particle.
type PeakStress struct {
	peak float64
}

func NewPeakStress() *PeakStress { return &PeakStress{} }

func (s *PeakStress) Name() string { return "peak_stress" }

func (s *PeakStress) Observe(particles []debris.Snapshot, t float64) {
	for _, p := range particles {
		if p.Stress > s.peak {
			s.peak = p.Stress
		}
	}
}

func (s *PeakStress) Value() float64 { return s.peak }
func (s *PeakStress) Reset()         { s.peak = 0 }

// PeakPopulation tracks the largest live population.
type PeakPopulation struct {
	peak int
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (p *PeakPopulation) Name() string { return "peak_population" }

func (p *PeakPopulation) Observe(particles []debris.Snapshot, t float64) {
	if len(particles) > p.peak {
		p.peak = len(particles)
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }
func (p *PeakPopulation) Reset()         { p.peak = 0 }

// MeanSpeed averages particle speed across every observation.
type MeanSpeed struct {
	total   float64
	samples int
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(particles []debris.Snapshot, t float64) {
	for _, p := range particles {
		m.total += p.Vel.Magnitude()
		m.samples++
	}
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}

// Defaults is the metric set recorded by headless runs.
func Defaults() []Metric {
	return []Metric{
		NewKineticEnergy(),
		NewPeakStress(),
		NewPeakPopulation(),
		NewMeanSpeed(),
	}
}
