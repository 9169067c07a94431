// Package asteroids implements a toroidal-arena shooter: the player craft
// drifts across a wrap-around field, blasting drifting rocks for score until
// it collides with one. The simulation is pure and deterministic for a given
// seed and input sequence; rendering and input mapping live in the platform
// layer.
package asteroids

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vkarpenko/tui-asteroids/internal/config"
	"github.com/vkarpenko/tui-asteroids/internal/core"
)

// Package-level overrides set by the CLI before game creation, mirroring how
// flag wiring reaches game construction without threading through every call.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for subsequent resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent resets.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts the Round simulation to the platform Game interface, adding
// pause handling, difficulty progression, and arena-to-screen rendering.
type Game struct {
	cfg        config.AsteroidsConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	round  *Round
	paused bool
	tick   int
}

// New creates a new asteroids game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	g.cfg = cfg
	g.runtime = rt
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.paused = false
	g.tick = 0

	rng := rand.New(rand.NewSource(rt.Seed))
	g.round = NewRound(NewSpawner(&g.cfg, rng), rng)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil || g.round.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	g.round.Tune(
		g.difficulty.SpeedScale(g.round.Score(), g.tick),
		g.difficulty.Population(g.cfg.Rocks.MinPopulation, g.round.Score(), g.tick),
	)

	g.round.Advance(Intents{
		TurnLeft:  in.Has(core.ActionLeft),
		TurnRight: in.Has(core.ActionRight),
		Thrust:    in.Has(core.ActionThrust),
		Fire:      in.Has(core.ActionFire),
	})

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.round.Score(),
		GameOver: g.round.Over(),
		Paused:   g.paused,
	}
}

// FinalScore returns the score of the ended round; valid once the round is
// over but safe to call any time.
func (g *Game) FinalScore() int {
	if g.round == nil {
		return 0
	}
	return g.round.Score()
}

// Visual characters for rendering.
const (
	rockChar       = '●'
	rockEdgeChar   = 'o'
	projectileChar = '•'
	shipCenterChar = '▲'
)

// Render draws the current game state to the screen, projecting arena
// coordinates onto the cell grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.round == nil {
		return
	}

	// Reserve the top row for the HUD.
	fieldY := 1
	fieldH := dst.Height() - fieldY
	if fieldH < 1 || dst.Width() < 1 {
		return
	}
	sx := float64(dst.Width()) / g.cfg.Arena.Width
	sy := float64(fieldH) / g.cfg.Arena.Height

	for _, rock := range g.round.RockStates() {
		g.drawRock(dst, rock, sx, sy, fieldY)
	}

	for _, p := range g.round.ProjectileStates() {
		base := p.Pos
		tip := p.Tip(g.cfg.Projectiles.Length)
		dst.SetCell(int(base.X*sx), fieldY+int(base.Y*sy), projectileChar, core.ColorBrightRed)
		dst.SetCell(int(tip.X*sx), fieldY+int(tip.Y*sy), projectileChar, core.ColorBrightRed)
	}

	g.drawShip(dst, sx, sy, fieldY)

	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", g.round.Score()), core.ColorBrightWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.round.Over() {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.round.Score()))
	}
}

// drawRock rasterizes a rock circle onto the cell grid, filling interior
// cells and marking the rim.
func (g *Game) drawRock(dst *core.Screen, rock Rock, sx, sy float64, fieldY int) {
	r := float64(rock.Radius)
	minX := int((rock.Pos.X - r) * sx)
	maxX := int(math.Ceil((rock.Pos.X + r) * sx))
	minY := int((rock.Pos.Y - r) * sy)
	maxY := int(math.Ceil((rock.Pos.Y + r) * sy))

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			// Cell center back in arena coordinates.
			ax := (float64(cx) + 0.5) / sx
			ay := (float64(cy) + 0.5) / sy
			d := Vec{X: ax, Y: ay}.Sub(rock.Pos).Len()
			switch {
			case d <= r*0.7:
				dst.SetCell(cx, fieldY+cy, rockChar, rock.Color)
			case d <= r:
				dst.SetCell(cx, fieldY+cy, rockEdgeChar, rock.Color)
			}
		}
	}
}

// drawShip draws the triangle vertices and a center marker.
func (g *Game) drawShip(dst *core.Screen, sx, sy float64, fieldY int) {
	ship := g.round.ShipState()
	for _, v := range ship.Vertices() {
		dst.SetCell(int(v.X*sx), fieldY+int(v.Y*sy), '+', core.ColorBrightBlue)
	}
	dst.SetCell(int(ship.Pos.X*sx), fieldY+int(ship.Pos.Y*sy), shipCenterChar, core.ColorBrightBlue)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
