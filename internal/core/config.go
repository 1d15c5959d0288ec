package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to seed their random source.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 30)
	Seed     int64 // RNG seed for reproducible boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Ticks converts a duration in milliseconds to a whole number of ticks,
// rounding up so that a non-zero delay never collapses to zero ticks.
func (c RuntimeConfig) Ticks(ms int) int {
	if ms <= 0 || c.TickRate <= 0 {
		return 0
	}
	return (ms*c.TickRate + 999) / 1000
}

// GameState represents the current state of a puzzle.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Solved bool   // Whether the puzzle is currently solved
	Status string // Status line shown under the board
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Events lists what happened during this tick, for logging.
	Events []string
}
