// Package core provides fundamental types shared by the game logic and the
// platform layer. It contains no external dependencies (especially no Bubble
// Tea) to keep the simulation pure and testable.
package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface the platform drives. Implementations contain pure
// logic: the platform handles input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier for this game, used for CLI commands
	// and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state. Called once at start and
	// again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick with the input state
	// sampled for that tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	// Render must not mutate simulation state.
	Render(dst *Screen)

	// State returns the current game state (score, game over, paused).
	State() GameState
}
