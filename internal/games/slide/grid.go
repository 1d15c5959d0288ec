// Package slide implements the 8-tile sliding puzzle: a 3x3 grid with one
// blank, a random-walk shuffle and a greedy one-step helper.
package slide

// Size is the grid dimension.
const Size = 3

// Cells is the number of grid positions.
const Cells = Size * Size

// Grid holds tile values in row-major order; 0 is the blank.
// Index i is row i/Size, column i%Size.
type Grid [Cells]int

// Solved is the target arrangement.
var Solved = Grid{1, 2, 3, 4, 5, 6, 7, 8, 0}

// Neighbors returns the indices adjacent to index, in the order
// up, down, left, right. Out-of-range indices have no neighbors.
func Neighbors(index int) []int {
	if index < 0 || index >= Cells {
		return nil
	}
	row, col := index/Size, index%Size
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, index-Size)
	}
	if row < Size-1 {
		out = append(out, index+Size)
	}
	if col > 0 {
		out = append(out, index-1)
	}
	if col < Size-1 {
		out = append(out, index+1)
	}
	return out
}

// isNeighbor reports whether b is adjacent to a.
func isNeighbor(a, b int) bool {
	for _, n := range Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// Blank returns the index holding 0, or -1 if there is none.
func (g Grid) Blank() int {
	for i, v := range g {
		if v == 0 {
			return i
		}
	}
	return -1
}

// Swap exchanges the blank at blankIndex with an adjacent tile.
// Illegal swaps leave the grid unchanged and return false.
func (g *Grid) Swap(blankIndex, targetIndex int) bool {
	if blankIndex < 0 || blankIndex >= Cells || g[blankIndex] != 0 {
		return false
	}
	if !isNeighbor(blankIndex, targetIndex) {
		return false
	}
	g[blankIndex], g[targetIndex] = g[targetIndex], g[blankIndex]
	return true
}

// MoveTile slides the tile at index into the blank if they are adjacent.
func (g *Grid) MoveTile(index int) bool {
	return g.Swap(g.Blank(), index)
}

// IsSolved reports whether the grid equals the target arrangement.
func (g Grid) IsSolved() bool {
	return g == Solved
}

// isPermutation reports whether the grid holds each of 0..8 exactly once.
func (g Grid) isPermutation() bool {
	var seen [Cells]bool
	for _, v := range g {
		if v < 0 || v >= Cells || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// CorrectCount returns how many positions hold their solved value.
// The blank position counts like any other.
func (g Grid) CorrectCount() int {
	n := 0
	for i, v := range g {
		if v == Solved[i] {
			n++
		}
	}
	return n
}

// Correct reports whether index holds its solved value.
func (g Grid) Correct(index int) bool {
	return index >= 0 && index < Cells && g[index] == Solved[index]
}
