package slide

// BestMove returns the neighbor of the blank whose move leaves the most tiles
// in place. Ties go to the first candidate in Neighbors order. The move may
// not improve the grid; it is a greedy hint, not a solver.
func BestMove(g Grid) (int, bool) {
	blank := g.Blank()
	best, bestScore := -1, -1
	for _, n := range Neighbors(blank) {
		next := g
		next.Swap(blank, n)
		if score := next.CorrectCount(); score > bestScore {
			best, bestScore = n, score
		}
	}
	return best, best >= 0
}
