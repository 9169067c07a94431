// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import "fmt"

// AsteroidsConfig contains all tunable parameters for the simulation.
type AsteroidsConfig struct {
	Arena       ArenaConfig      `yaml:"arena"`
	Ship        ShipConfig       `yaml:"ship"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Rocks       RocksConfig      `yaml:"rocks"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the toroidal play field, in arena units (not screen
// cells; the renderer scales arena coordinates onto the terminal).
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines ship handling and geometry parameters.
type ShipConfig struct {
	MaxSpeed  float64 `yaml:"max_speed"`  // Speed cap, arena units per tick
	TurnStep  float64 `yaml:"turn_step"`  // Degrees rotated per tick of input
	Thrust    float64 `yaml:"thrust"`     // Forward acceleration per tick of input
	SizeMajor float64 `yaml:"size_major"` // Nose vertex distance from center
	SizeMinor float64 `yaml:"size_minor"` // Tail vertex distance from center
}

// ProjectileConfig defines projectile parameters.
type ProjectileConfig struct {
	Speed   float64 `yaml:"speed"`    // Arena units per tick
	Length  float64 `yaml:"length"`   // Distance from base point to tip
	MaxAge  int     `yaml:"max_age"`  // Ticks a projectile stays alive (inclusive)
	MaxLive int     `yaml:"max_live"` // Cap on simultaneously live projectiles
}

// RocksConfig defines rock sizing, speed, and population parameters.
// Radii are quantized: the allowed set is {min, min+step, ..., max}.
type RocksConfig struct {
	MinRadius     int     `yaml:"min_radius"`
	MaxRadius     int     `yaml:"max_radius"`
	RadiusStep    int     `yaml:"radius_step"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MinPopulation int     `yaml:"min_population"` // Live rock count restored each frame
}

// Validate checks the configuration for values the simulation cannot run
// with. These are treated as programmer/operator errors and rejected at the
// boundary rather than tolerated.
func (c AsteroidsConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("config: arena dimensions must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Ship.MaxSpeed <= 0 {
		return fmt.Errorf("config: ship max_speed must be positive, got %g", c.Ship.MaxSpeed)
	}
	if c.Projectiles.Speed <= 0 {
		return fmt.Errorf("config: projectile speed must be positive, got %g", c.Projectiles.Speed)
	}
	if c.Projectiles.MaxAge < 0 {
		return fmt.Errorf("config: projectile max_age must be non-negative, got %d", c.Projectiles.MaxAge)
	}
	if c.Projectiles.MaxLive <= 0 {
		return fmt.Errorf("config: projectile max_live must be positive, got %d", c.Projectiles.MaxLive)
	}
	if c.Rocks.MinRadius <= 0 {
		return fmt.Errorf("config: rock min_radius must be positive, got %d", c.Rocks.MinRadius)
	}
	if c.Rocks.MaxRadius < c.Rocks.MinRadius {
		return fmt.Errorf("config: rock radius range [%d, %d] is empty", c.Rocks.MinRadius, c.Rocks.MaxRadius)
	}
	if c.Rocks.RadiusStep <= 0 {
		return fmt.Errorf("config: rock radius_step must be positive, got %d", c.Rocks.RadiusStep)
	}
	if (c.Rocks.MaxRadius-c.Rocks.MinRadius)%c.Rocks.RadiusStep != 0 {
		return fmt.Errorf("config: rock radius range [%d, %d] is not divisible by step %d",
			c.Rocks.MinRadius, c.Rocks.MaxRadius, c.Rocks.RadiusStep)
	}
	if c.Rocks.MinSpeed <= 0 || c.Rocks.MaxSpeed < c.Rocks.MinSpeed {
		return fmt.Errorf("config: rock speed range [%g, %g] is invalid", c.Rocks.MinSpeed, c.Rocks.MaxSpeed)
	}
	if c.Rocks.MinPopulation < 0 {
		return fmt.Errorf("config: rock min_population must be non-negative, got %d", c.Rocks.MinPopulation)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to rock speed at max difficulty
	ExtraRocks      int     `yaml:"extra_rocks"`      // Added to minimum rock population at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
