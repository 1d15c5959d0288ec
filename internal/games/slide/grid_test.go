package slide

import (
	"math/rand"
	"reflect"
	"testing"
)

// seqRand returns the queued values in order, then zeros.
type seqRand struct {
	values []int
}

func (r *seqRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		index int
		want  []int
	}{
		{0, []int{3, 1}},
		{1, []int{4, 0, 2}},
		{4, []int{1, 7, 3, 5}},
		{6, []int{3, 7}},
		{7, []int{4, 6, 8}},
		{8, []int{5, 7}},
		{-1, nil},
		{9, nil},
	}
	for _, tt := range tests {
		got := Neighbors(tt.index)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Neighbors(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestSwapSolves(t *testing.T) {
	g := Grid{1, 2, 3, 4, 5, 6, 7, 0, 8}
	if g.IsSolved() {
		t.Fatal("grid should not start solved")
	}
	if !g.Swap(7, 8) {
		t.Fatal("Swap(7, 8) rejected")
	}
	if g != Solved {
		t.Errorf("grid = %v, want %v", g, Solved)
	}
	if !g.IsSolved() {
		t.Error("grid should be solved")
	}
}

func TestSwapRejectsIllegal(t *testing.T) {
	tests := []struct {
		name          string
		blank, target int
	}{
		{"not adjacent", 7, 2},
		{"diagonal", 7, 3},
		{"blank index wrong", 6, 3},
		{"self", 7, 7},
		{"out of range target", 7, 9},
		{"out of range blank", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Grid{1, 2, 3, 4, 5, 6, 7, 0, 8}
			before := g
			if g.Swap(tt.blank, tt.target) {
				t.Errorf("Swap(%d, %d) = true, want false", tt.blank, tt.target)
			}
			if g != before {
				t.Errorf("grid changed to %v", g)
			}
		})
	}
}

func TestMoveTile(t *testing.T) {
	g := Grid{1, 2, 3, 4, 5, 6, 7, 0, 8}
	if g.MoveTile(0) {
		t.Error("MoveTile(0) should be rejected")
	}
	if !g.MoveTile(4) {
		t.Fatal("MoveTile(4) rejected")
	}
	want := Grid{1, 2, 3, 4, 0, 6, 7, 5, 8}
	if g != want {
		t.Errorf("grid = %v, want %v", g, want)
	}
}

func TestAdjacentTranspositionNotSolved(t *testing.T) {
	for i := 0; i < Cells; i++ {
		for _, n := range Neighbors(i) {
			g := Solved
			if g[i] == 0 || g[n] == 0 {
				continue
			}
			g[i], g[n] = g[n], g[i]
			if g.IsSolved() {
				t.Errorf("transposition %d<->%d reported solved: %v", i, n, g)
			}
		}
	}
}

func TestCorrectCount(t *testing.T) {
	tests := []struct {
		grid Grid
		want int
	}{
		{Solved, 9},
		{Grid{1, 2, 3, 0, 5, 6, 4, 7, 8}, 5},
		{Grid{1, 2, 3, 4, 5, 6, 7, 0, 8}, 7},
		{Grid{0, 1, 2, 3, 4, 5, 6, 7, 8}, 0},
	}
	for _, tt := range tests {
		if got := tt.grid.CorrectCount(); got != tt.want {
			t.Errorf("CorrectCount(%v) = %d, want %d", tt.grid, got, tt.want)
		}
	}
}

func TestIsPermutation(t *testing.T) {
	if !Solved.isPermutation() {
		t.Error("solved grid should be a permutation")
	}
	if (Grid{1, 1, 3, 4, 5, 6, 7, 8, 0}).isPermutation() {
		t.Error("duplicate value accepted")
	}
	if (Grid{1, 2, 3, 4, 5, 6, 7, 8, 9}).isPermutation() {
		t.Error("out of range value accepted")
	}
}

func TestShuffleStep(t *testing.T) {
	g := Solved
	// Blank at 8 has neighbors {5, 7}; pick the first.
	Shuffle(&g, &seqRand{values: []int{0}}, 1)
	want := Grid{1, 2, 3, 4, 5, 0, 7, 8, 6}
	if g != want {
		t.Errorf("grid = %v, want %v", g, want)
	}

	g = Solved
	Shuffle(&g, &seqRand{}, 0)
	if g != Solved {
		t.Errorf("zero moves changed grid to %v", g)
	}
}

func TestShufflePreservesPermutation(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := Solved
		Shuffle(&g, rng, DefaultShuffleMoves)
		// Mix in random swap attempts, legal or not
		for i := 0; i < 50; i++ {
			g.Swap(rng.Intn(Cells), rng.Intn(Cells))
			g.MoveTile(rng.Intn(Cells))
		}
		if !g.isPermutation() {
			t.Fatalf("seed %d: grid %v is not a permutation", seed, g)
		}
		if g.Blank() < 0 {
			t.Fatalf("seed %d: no blank", seed)
		}
	}
}

func TestBestMove(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want int
	}{
		{"example", Grid{1, 2, 3, 4, 5, 6, 0, 7, 8}, 7},
		{"finishing move", Grid{1, 2, 3, 4, 5, 0, 7, 8, 6}, 8},
		// Both moves score 1; down is enumerated before right
		{"tie goes to first neighbor", Grid{0, 8, 7, 6, 5, 4, 3, 2, 1}, 3},
		// Leaving the solved state is still a move
		{"from solved", Solved, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestMove(tt.grid)
			if !ok || got != tt.want {
				t.Errorf("BestMove(%v) = %d, %v; want %d, true", tt.grid, got, ok, tt.want)
			}
		})
	}

	if _, ok := BestMove(Grid{1, 2, 3, 4, 5, 6, 7, 8, 9}); ok {
		t.Error("BestMove without a blank should report no move")
	}
}

func TestPuzzleHelp(t *testing.T) {
	p := NewPuzzle(&seqRand{}, 0)
	if !p.IsSolved() {
		t.Fatal("zero shuffle moves should leave the board solved")
	}

	p.grid = Grid{1, 2, 3, 4, 5, 6, 0, 7, 8}
	for i := 0; i < 2; i++ {
		if _, ok := p.Help(); !ok {
			t.Fatal("Help found no move")
		}
	}
	if !p.IsSolved() {
		t.Errorf("grid = %v, want solved after two helps", p.Grid())
	}
}

func TestPuzzleInitBoard(t *testing.T) {
	p := NewPuzzle(rand.New(rand.NewSource(3)), DefaultShuffleMoves)
	if !p.Grid().isPermutation() {
		t.Errorf("grid %v is not a permutation", p.Grid())
	}
	p.InitBoard()
	if !p.Grid().isPermutation() {
		t.Errorf("grid %v is not a permutation", p.Grid())
	}
}
