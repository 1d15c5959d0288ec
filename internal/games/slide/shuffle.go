package slide

import "github.com/vovakirdan/tui-puzzles/internal/core"

// DefaultShuffleMoves is the number of random blank swaps per shuffle.
const DefaultShuffleMoves = 100

// Shuffle performs moveCount random legal blank swaps. Every step is a legal
// move so the grid stays solvable.
func Shuffle(g *Grid, rng core.Rand, moveCount int) {
	for i := 0; i < moveCount; i++ {
		blank := g.Blank()
		options := Neighbors(blank)
		if len(options) == 0 {
			return
		}
		g.Swap(blank, options[rng.Intn(len(options))])
	}
}
