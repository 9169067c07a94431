package asteroids

import (
	"github.com/vkarpenko/tui-asteroids/internal/config"
	"github.com/vkarpenko/tui-asteroids/internal/core"
)

// Rand is the random source injected into the simulation. *math/rand.Rand
// satisfies it; tests substitute a seeded or scripted implementation.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// rockPalette holds the visual tags handed out to fresh rocks. Fragments
// inherit their parent's tag instead of rolling a new one.
var rockPalette = []core.Color{
	core.ColorWhite,
	core.ColorGray,
	core.ColorCyan,
	core.ColorYellow,
	core.ColorMagenta,
}

// Spawner produces rocks: fresh ones entering from outside the arena, and
// fragments when a larger rock is destroyed.
type Spawner struct {
	cfg *config.AsteroidsConfig
	rng Rand

	// speedScale multiplies rolled rock speeds; the difficulty layer raises
	// it as the round progresses.
	speedScale float64
}

// NewSpawner creates a spawner drawing randomness from rng.
func NewSpawner(cfg *config.AsteroidsConfig, rng Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, speedScale: 1.0}
}

// SetSpeedScale sets the multiplier applied to rolled rock speeds.
func (sp *Spawner) SetSpeedScale(scale float64) {
	if scale > 0 {
		sp.speedScale = scale
	}
}

// SpawnOffscreen produces count rocks positioned just outside the arena so a
// fresh rock can never collide with the ship on its spawn frame. Half enter
// across the negative-X edge (random Y over the full range), the rest,
// including the odd extra, across the negative-Y edge (random X).
func (sp *Spawner) SpawnOffscreen(count int) []*Rock {
	if count <= 0 {
		return nil
	}

	w := sp.cfg.Arena.Width
	h := sp.cfg.Arena.Height
	fromLeft := count / 2

	rocks := make([]*Rock, 0, count)
	for i := 0; i < count; i++ {
		radius := sp.rollRadius()
		var pos Vec
		if i < fromLeft {
			pos = Vec{X: -float64(radius), Y: sp.rng.Float64() * h}
		} else {
			pos = Vec{X: sp.rng.Float64() * w, Y: -float64(radius)}
		}
		rocks = append(rocks, &Rock{
			Pos:    pos,
			Vel:    sp.rollVelocity(),
			Radius: radius,
			Color:  rockPalette[sp.rng.Intn(len(rockPalette))],
		})
	}
	return rocks
}

// SpawnFragments produces 2 or 3 child rocks at the parent's position, each
// strictly smaller than the parent and inheriting its color tag.
// A parent at the minimum radius is the terminal size class and produces
// nothing.
func (sp *Spawner) SpawnFragments(parent *Rock) []*Rock {
	steps := (parent.Radius - sp.cfg.Rocks.MinRadius) / sp.cfg.Rocks.RadiusStep
	if steps <= 0 {
		return nil
	}

	count := 2 + sp.rng.Intn(2)
	fragments := make([]*Rock, 0, count)
	for i := 0; i < count; i++ {
		fragments = append(fragments, &Rock{
			Pos:    parent.Pos,
			Vel:    sp.rollVelocity(),
			Radius: sp.cfg.Rocks.MinRadius + sp.rng.Intn(steps)*sp.cfg.Rocks.RadiusStep,
			Color:  parent.Color,
		})
	}
	return fragments
}

// rollRadius picks uniformly from the quantized radius set
// {min, min+step, ..., max}.
func (sp *Spawner) rollRadius() int {
	choices := (sp.cfg.Rocks.MaxRadius-sp.cfg.Rocks.MinRadius)/sp.cfg.Rocks.RadiusStep + 1
	return sp.cfg.Rocks.MinRadius + sp.rng.Intn(choices)*sp.cfg.Rocks.RadiusStep
}

// rollVelocity builds a velocity from a uniform heading and a uniform speed
// in [min_speed, max_speed], scaled by the current difficulty multiplier.
func (sp *Spawner) rollVelocity() Vec {
	heading := float64(sp.rng.Intn(360))
	speed := sp.cfg.Rocks.MinSpeed + sp.rng.Float64()*(sp.cfg.Rocks.MaxSpeed-sp.cfg.Rocks.MinSpeed)
	return HeadingVec(heading).Scale(speed * sp.speedScale)
}
