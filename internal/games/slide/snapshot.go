package slide

import "github.com/vovakirdan/tui-puzzles/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Grid     Grid
	Cursor   core.Pos
	Hint     bool
	Solved   bool
	Cooldown int
	Status   string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Grid:     g.puzzle.Grid(),
		Cursor:   g.cursor,
		Hint:     g.hint,
		Solved:   g.solved,
		Cooldown: g.cooldown,
		Status:   g.status,
	}
}
