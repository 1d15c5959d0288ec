package pipes

import "github.com/vovakirdan/tui-puzzles/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Level     int
	Tiles     []Tile
	Initial   []InitialRotation
	Cursor    core.Pos
	Hint      bool
	Solved    bool
	Checks    []uint64
	Status    string
	Highlight []core.Pos
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	board := g.puzzle.Board()
	return Snapshot{
		Tick:      g.tick,
		Level:     g.puzzle.LevelID(),
		Tiles:     board.Tiles(),
		Initial:   board.InitialRotations(),
		Cursor:    g.cursor,
		Hint:      g.hint,
		Solved:    g.solved,
		Checks:    append([]uint64(nil), g.checks...),
		Status:    g.status,
		Highlight: board.HintHighlight(),
	}
}
