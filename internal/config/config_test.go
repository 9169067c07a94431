package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid, got: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AsteroidsConfig)
	}{
		{"zero arena width", func(c *AsteroidsConfig) { c.Arena.Width = 0 }},
		{"negative arena height", func(c *AsteroidsConfig) { c.Arena.Height = -600 }},
		{"zero ship max speed", func(c *AsteroidsConfig) { c.Ship.MaxSpeed = 0 }},
		{"zero projectile speed", func(c *AsteroidsConfig) { c.Projectiles.Speed = 0 }},
		{"negative projectile max age", func(c *AsteroidsConfig) { c.Projectiles.MaxAge = -1 }},
		{"zero projectile cap", func(c *AsteroidsConfig) { c.Projectiles.MaxLive = 0 }},
		{"zero min radius", func(c *AsteroidsConfig) { c.Rocks.MinRadius = 0 }},
		{"empty radius range", func(c *AsteroidsConfig) { c.Rocks.MaxRadius = c.Rocks.MinRadius - 1 }},
		{"zero radius step", func(c *AsteroidsConfig) { c.Rocks.RadiusStep = 0 }},
		{"unaligned radius step", func(c *AsteroidsConfig) { c.Rocks.RadiusStep = 7 }},
		{"inverted speed range", func(c *AsteroidsConfig) { c.Rocks.MinSpeed, c.Rocks.MaxSpeed = 3, 1 }},
		{"negative population", func(c *AsteroidsConfig) { c.Rocks.MinPopulation = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have rejected the config")
			}
		})
	}
}

func TestLoadAsteroidsEmbeddedDefault(t *testing.T) {
	cfg, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids() failed: %v", err)
	}

	def := DefaultAsteroidsConfig()
	if cfg.Arena.Width != def.Arena.Width || cfg.Arena.Height != def.Arena.Height {
		t.Errorf("embedded arena = %gx%g, expected %gx%g",
			cfg.Arena.Width, cfg.Arena.Height, def.Arena.Width, def.Arena.Height)
	}
	if cfg.Rocks.MinRadius != def.Rocks.MinRadius || cfg.Rocks.MaxRadius != def.Rocks.MaxRadius {
		t.Errorf("embedded radius range = [%d, %d], expected [%d, %d]",
			cfg.Rocks.MinRadius, cfg.Rocks.MaxRadius, def.Rocks.MinRadius, def.Rocks.MaxRadius)
	}
	if cfg.Projectiles.MaxLive != def.Projectiles.MaxLive {
		t.Errorf("embedded max_live = %d, expected %d", cfg.Projectiles.MaxLive, def.Projectiles.MaxLive)
	}
}

func TestLoadAsteroidsCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := `
arena:
  width: 400
  height: 300
ship:
  max_speed: 5
  turn_step: 15
  thrust: 0.5
  size_major: 10
  size_minor: 5
projectiles:
  speed: 20
  length: 5
  max_age: 20
  max_live: 2
rocks:
  min_radius: 5
  max_radius: 25
  radius_step: 5
  min_speed: 1
  max_speed: 2
  min_population: 3
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("cannot write custom config: %v", err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids(custom) failed: %v", err)
	}

	if cfg.Arena.Width != 400 {
		t.Errorf("custom arena width = %g, expected 400", cfg.Arena.Width)
	}
	if cfg.Projectiles.MaxLive != 2 {
		t.Errorf("custom max_live = %d, expected 2", cfg.Projectiles.MaxLive)
	}
}

func TestLoadAsteroidsMissingCustomPath(t *testing.T) {
	_, err := LoadAsteroids("/nonexistent/asteroids.yaml")
	if err == nil {
		t.Error("LoadAsteroids() should fail for a missing explicit path")
	}
}

func TestLoadAsteroidsRejectsInvalidCustom(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	// Empty radius range
	bad := `
arena: {width: 800, height: 600}
ship: {max_speed: 10, turn_step: 10, thrust: 1, size_major: 20, size_minor: 10}
projectiles: {speed: 30, length: 10, max_age: 30, max_live: 4}
rocks: {min_radius: 50, max_radius: 10, radius_step: 10, min_speed: 1, max_speed: 3, min_population: 5}
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("cannot write bad config: %v", err)
	}

	if _, err := LoadAsteroids(path); err == nil {
		t.Error("LoadAsteroids() should reject a config with an empty radius range")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, ExtraRocks: 4},
	}
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level(0) = %g, expected 0", lvl)
	}
	if lvl := d.Level(50, 0); lvl != 0.5 {
		t.Errorf("Level(50) = %g, expected 0.5", lvl)
	}
	if lvl := d.Level(200, 0); lvl != 1.0 {
		t.Errorf("Level(200) = %g, expected 1 (clamped)", lvl)
	}

	if s := d.SpeedScale(100, 0); s != 2.0 {
		t.Errorf("SpeedScale at max = %g, expected 2", s)
	}
	if p := d.Population(5, 100, 0); p != 9 {
		t.Errorf("Population at max = %d, expected 9", p)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, ExtraRocks: 4},
	}
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(1000, 1000); lvl != 0.7 {
		t.Errorf("disabled Level = %g, expected initial 0.7", lvl)
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	cfg := DefaultAsteroidsConfig()

	ApplyAsteroidsPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%g, expected enabled 0.7",
			cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyAsteroidsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
