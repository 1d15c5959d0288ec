package pipes

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// Puzzle is one player's pipe puzzle session: the catalog, the active level
// and its board.
type Puzzle struct {
	catalog *Catalog
	levelID int
	board   *Board
	rng     core.Rand
}

// NewPuzzle creates a session on the catalog's first level.
func NewPuzzle(catalog *Catalog, rng core.Rand) *Puzzle {
	p := &Puzzle{catalog: catalog, rng: rng}
	//nolint:errcheck // First() is always a catalog id
	p.Initialize(catalog.First())
	return p
}

// Initialize activates the level and builds a fresh board for it.
func (p *Puzzle) Initialize(levelID int) error {
	level, ok := p.catalog.Level(levelID)
	if !ok {
		return fmt.Errorf("pipes: unknown level %d", levelID)
	}
	p.levelID = levelID
	p.board = NewBoard(level, p.rng)
	return nil
}

// SwitchLevel moves to the next catalog level and re-initializes.
// Returns the new level id.
func (p *Puzzle) SwitchLevel() int {
	next := p.catalog.Next(p.levelID)
	//nolint:errcheck // Next() always returns a catalog id
	p.Initialize(next)
	return next
}

// LevelID returns the active level id.
func (p *Puzzle) LevelID() int {
	return p.levelID
}

// LevelCount returns the number of levels in the catalog.
func (p *Puzzle) LevelCount() int {
	return p.catalog.Len()
}

// Board returns the active board.
func (p *Puzzle) Board() *Board {
	return p.board
}

// Solved reports whether the active board's route is complete.
func (p *Puzzle) Solved() bool {
	return p.board.IsRouteComplete()
}
