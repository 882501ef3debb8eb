package core

// RuntimeConfig contains configuration passed to games at initialization.
// The simulation runs in fixed world units; the screen dimensions only
// affect how the world is projected to terminal cells.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in terminal cells
	ScreenH   int     // Screen height in terminal cells
	ViewportW float64 // Simulated viewport width in world units
	ViewportH float64 // Simulated viewport height in world units
	TickRate  int     // Simulation ticks per second (default 60)
	Seed      int64   // RNG seed for deterministic gameplay (0 = time-based, set by platform)
}

// ReferenceFrameMs is the nominal frame interval the physics constants are
// tuned for. Per-tick deltas are normalized against it so the simulation
// is frame-rate independent.
const ReferenceFrameMs = 1000.0 / 60.0

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		ViewportW: 960,
		ViewportH: 540,
		TickRate:  60,
		Seed:      0,
	}
}

// GameState is the platform-visible status of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
