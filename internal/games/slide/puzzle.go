package slide

import "github.com/vovakirdan/tui-puzzles/internal/core"

// Puzzle is one player's sliding puzzle session.
type Puzzle struct {
	grid         Grid
	rng          core.Rand
	shuffleMoves int
}

// NewPuzzle creates a session and deals a shuffled board.
func NewPuzzle(rng core.Rand, shuffleMoves int) *Puzzle {
	p := &Puzzle{rng: rng, shuffleMoves: shuffleMoves}
	p.InitBoard()
	return p
}

// InitBoard resets the grid to solved and shuffles it.
func (p *Puzzle) InitBoard() {
	p.grid = Solved
	p.Shuffle()
}

// Shuffle scrambles the current grid with the configured move count.
func (p *Puzzle) Shuffle() {
	Shuffle(&p.grid, p.rng, p.shuffleMoves)
}

// MoveTile slides the tile at index into the blank.
func (p *Puzzle) MoveTile(index int) bool {
	return p.grid.MoveTile(index)
}

// Help applies the best one-step move and returns the index BestMove chose.
func (p *Puzzle) Help() (int, bool) {
	idx, ok := BestMove(p.grid)
	if !ok {
		return -1, false
	}
	p.grid.MoveTile(idx)
	return idx, true
}

// Grid returns a copy of the current grid.
func (p *Puzzle) Grid() Grid {
	return p.grid
}

// IsSolved reports whether the grid is in the target arrangement.
func (p *Puzzle) IsSolved() bool {
	return p.grid.IsSolved()
}
