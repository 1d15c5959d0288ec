package pipes

import "github.com/vovakirdan/tui-puzzles/internal/core"

// Rotations are the four orientations a corner can be drawn in.
var Rotations = [4]int{0, 90, 180, 270}

// Board holds the tiles of one level and the rotations they started with.
type Board struct {
	level   Level
	tiles   []Tile // row-major: index = y*cols + x
	initial []InitialRotation
	rng     core.Rand
}

// NewBoard creates a board for the level and initializes it.
func NewBoard(level Level, rng core.Rand) *Board {
	b := &Board{rng: rng}
	b.Initialize(level)
	return b
}

// Initialize builds one tile per layout cell. Constrained corners draw a
// rotation other than their answer so the board never starts solved;
// unconstrained corners draw any rotation. Previous initial records are
// discarded.
func (b *Board) Initialize(level Level) {
	b.level = level
	b.tiles = make([]Tile, 0, level.Rows()*level.Cols())
	b.initial = nil

	for y, row := range level.Layout {
		for x, typ := range row {
			t := Tile{Type: typ, X: x, Y: y}
			if typ == TileCorner {
				if req, ok := level.RequiredAt(core.P(x, y)); ok {
					t.Rotation = b.drawExcluding(Normalize(req))
				} else {
					t.Rotation = b.draw()
				}
				b.initial = append(b.initial, InitialRotation{Y: y, X: x, Rotation: t.Rotation})
			}
			b.tiles = append(b.tiles, t)
		}
	}
}

// draw picks one of the four rotations uniformly.
func (b *Board) draw() int {
	return Rotations[b.rng.Intn(len(Rotations))]
}

// drawExcluding picks uniformly among the rotations other than skip.
func (b *Board) drawExcluding(skip int) int {
	choices := make([]int, 0, len(Rotations))
	for _, r := range Rotations {
		if r != skip {
			choices = append(choices, r)
		}
	}
	return choices[b.rng.Intn(len(choices))]
}

// index converts a position to a tile index, or -1 out of bounds.
func (b *Board) index(p core.Pos) int {
	if !b.level.InBounds(p) {
		return -1
	}
	return p.Y*b.level.Cols() + p.X
}

// Level returns the level the board was built from.
func (b *Board) Level() Level {
	return b.level
}

// Tile returns the tile at p.
func (b *Board) Tile(p core.Pos) (Tile, bool) {
	i := b.index(p)
	if i < 0 {
		return Tile{}, false
	}
	return b.tiles[i], true
}

// Tiles returns a copy of all tiles in row-major order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// InitialRotations returns a copy of the rotations recorded at Initialize.
func (b *Board) InitialRotations() []InitialRotation {
	out := make([]InitialRotation, len(b.initial))
	copy(out, b.initial)
	return out
}

// Corners returns the positions of all corner tiles, row-major.
func (b *Board) Corners() []core.Pos {
	var out []core.Pos
	for _, t := range b.tiles {
		if t.Type == TileCorner {
			out = append(out, t.Pos())
		}
	}
	return out
}

// RotateCorner turns the corner at p by +90 degrees. Rotation keeps
// accumulating past 360. Non-corner or out-of-range cells are ignored and
// false is returned.
func (b *Board) RotateCorner(p core.Pos) bool {
	i := b.index(p)
	if i < 0 || b.tiles[i].Type != TileCorner {
		return false
	}
	b.tiles[i].Rotation += 90
	return true
}

// ShuffleAll gives every corner a fresh random rotation. Unlike Initialize it
// may land on the answer, and it leaves the initial records untouched.
func (b *Board) ShuffleAll() {
	for i := range b.tiles {
		if b.tiles[i].Type == TileCorner {
			b.tiles[i].Rotation = b.draw()
		}
	}
}

// ResetAll restores every corner to the exact rotation recorded at Initialize.
func (b *Board) ResetAll() {
	for _, rec := range b.initial {
		i := b.index(core.P(rec.X, rec.Y))
		if i < 0 || b.tiles[i].Type != TileCorner {
			continue
		}
		b.tiles[i].Rotation = rec.Rotation
	}
}
