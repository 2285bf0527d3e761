package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/debris"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/material"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/vec"
)

const (
	DefaultWidth        = 1200.0
	DefaultHeight       = 800.0
	DefaultGroundOffset = 50.0
	DefaultGravityY     = 500.0
	DefaultAir          = 0.99
	DefaultMargin       = 100.0
	DefaultDt           = 1.0 / 60.0
	DefaultDuration     = 10.0
	DefaultMaxParticles = 500
	DefaultForce        = 300.0
	DefaultCount        = 20
)

type Config struct {
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
}

type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundOffset  float64 `yaml:"ground_offset"`
	GravityX      float64 `yaml:"gravity_x"`
	GravityY      float64 `yaml:"gravity_y"`
	AirResistance float64 `yaml:"air_resistance"`
	ExpiryMargin  float64 `yaml:"expiry_margin"`
}

type SimulationConfig struct {
	Dt           float64 `yaml:"dt"`
	Duration     float64 `yaml:"duration"`
	Seed         int64   `yaml:"seed"`
	MaxParticles int     `yaml:"max_particles"`
	MaxAge       float64 `yaml:"max_age"`
}

type ExplosionConfig struct {
	Force    float64 `yaml:"force"`
	Count    int     `yaml:"count"`
	Material string  `yaml:"material"`
	// X/Y place the blast; zero means the center of the field.
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Width:         DefaultWidth,
			Height:        DefaultHeight,
			GroundOffset:  DefaultGroundOffset,
			GravityY:      DefaultGravityY,
			AirResistance: DefaultAir,
			ExpiryMargin:  DefaultMargin,
		},
		Simulation: SimulationConfig{
			Dt:           DefaultDt,
			Duration:     DefaultDuration,
			MaxParticles: DefaultMaxParticles,
		},
		Explosion: ExplosionConfig{
			Force:    DefaultForce,
			Count:    DefaultCount,
			Material: material.SemiRigid.String(),
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world extent must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.GroundOffset < 0 || c.World.GroundOffset >= c.World.Height {
		return fmt.Errorf("ground offset %g outside world height %g", c.World.GroundOffset, c.World.Height)
	}
	if c.Simulation.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Simulation.Dt)
	}
	if c.Simulation.MaxParticles <= 0 {
		return fmt.Errorf("max_particles must be positive, got %d", c.Simulation.MaxParticles)
	}
	if _, err := material.Parse(c.Explosion.Material); err != nil {
		return err
	}
	return c.Environment().Validate()
}

// Environment builds the world value threaded into the physics core.
// The core never parses input itself.
func (c *Config) Environment() debris.Environment {
	return debris.Environment{
		Gravity:       vec.New(c.World.GravityX, c.World.GravityY),
		AirResistance: c.World.AirResistance,
		Bounds: debris.Bounds{
			MinX: 0,
			MinY: 0,
			MaxX: c.World.Width,
			MaxY: c.World.Height - c.World.GroundOffset,
		},
		ExpiryMargin: c.World.ExpiryMargin,
		MaxAge:       c.Simulation.MaxAge,
	}
}

// MaterialType resolves the configured material name.
func (c *Config) MaterialType() (material.Type, error) {
	return material.Parse(c.Explosion.Material)
}

// BlastCenter resolves the explosion position; (0,0) means the middle
// of the field.
func (c *Config) BlastCenter() vec.Vec {
	if c.Explosion.X == 0 && c.Explosion.Y == 0 {
		return c.Environment().Bounds.Center()
	}
	return vec.New(c.Explosion.X, c.Explosion.Y)
}
