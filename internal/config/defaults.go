package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default game configuration.
// Kept in sync with defaults/asteroids.yaml as a fallback when the embedded
// file cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			MaxSpeed:  10,
			TurnStep:  10,
			Thrust:    1.0,
			SizeMajor: 20,
			SizeMinor: 10,
		},
		Projectiles: ProjectileConfig{
			Speed:   30,
			Length:  10,
			MaxAge:  30,
			MaxLive: 4,
		},
		Rocks: RocksConfig{
			MinRadius:     10,
			MaxRadius:     50,
			RadiusStep:    10,
			MinSpeed:      1,
			MaxSpeed:      3,
			MinPopulation: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				ExtraRocks:      3,
			},
		},
	}
}
