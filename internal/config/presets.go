package config

import "sort"

// Presets are ready-made scenarios for the run and live commands.
var Presets = map[string]*Config{
	"standard": DefaultConfig(),
	"rigid_hail": {
		World: WorldConfig{
			Width: DefaultWidth, Height: DefaultHeight, GroundOffset: DefaultGroundOffset,
			GravityY: 700, AirResistance: 0.995, ExpiryMargin: DefaultMargin,
		},
		Simulation: SimulationConfig{Dt: DefaultDt, Duration: 15, MaxParticles: 400},
		Explosion:  ExplosionConfig{Force: 800, Count: 40, Material: "rigid"},
	},
	"soft_splash": {
		World: WorldConfig{
			Width: DefaultWidth, Height: DefaultHeight, GroundOffset: DefaultGroundOffset,
			GravityY: DefaultGravityY, AirResistance: 0.97, ExpiryMargin: DefaultMargin,
		},
		Simulation: SimulationConfig{Dt: DefaultDt, Duration: 12, MaxParticles: DefaultMaxParticles},
		Explosion:  ExplosionConfig{Force: 600, Count: 50, Material: "soft"},
	},
	"heavy_gravel": {
		World: WorldConfig{
			Width: DefaultWidth, Height: DefaultHeight, GroundOffset: DefaultGroundOffset,
			GravityY: DefaultGravityY, AirResistance: DefaultAir, ExpiryMargin: DefaultMargin,
		},
		Simulation: SimulationConfig{Dt: DefaultDt, Duration: 20, MaxParticles: 300},
		Explosion:  ExplosionConfig{Force: 1000, Count: 30, Material: "semi_rigid"},
	},
	"low_gravity": {
		World: WorldConfig{
			Width: DefaultWidth, Height: DefaultHeight, GroundOffset: DefaultGroundOffset,
			GravityY: 80, AirResistance: 0.999, ExpiryMargin: 300,
		},
		Simulation: SimulationConfig{Dt: DefaultDt, Duration: 30, MaxParticles: DefaultMaxParticles},
		Explosion:  ExplosionConfig{Force: 400, Count: 35, Material: "soft"},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
