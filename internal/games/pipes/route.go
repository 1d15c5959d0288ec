package pipes

import "github.com/vovakirdan/tui-puzzles/internal/core"

// straightVBias is the fixed display offset of vertical straight pieces,
// which share the horizontal piece's artwork turned a quarter.
const straightVBias = 90

// Normalize maps any rotation, including negative ones, to [0, 360).
func Normalize(deg int) int {
	return ((deg % 360) + 360) % 360
}

// VisualRotation returns the rotation a tile is drawn with. It only differs
// from Rotation for straight_v tiles and must not be used for answers.
func VisualRotation(t Tile) int {
	v := t.Rotation
	if t.Type == TileStraightV {
		v += straightVBias
	}
	return Normalize(v)
}

// matches reports whether the tile at p is constrained and whether it
// currently has its required orientation.
func (b *Board) matches(p core.Pos) (constrained, ok bool) {
	req, constrained := b.level.RequiredAt(p)
	if !constrained {
		return false, false
	}
	t, _ := b.Tile(p)
	return true, Normalize(t.Rotation) == Normalize(req)
}

// IsRouteComplete reports whether every constrained corner matches its
// required rotation. Unconstrained cells are ignored whatever their rotation.
func (b *Board) IsRouteComplete() bool {
	for _, p := range b.level.Constrained() {
		if _, ok := b.matches(p); !ok {
			return false
		}
	}
	return true
}

// HintHighlight returns the constrained corners that currently have their
// required rotation, row-major. It does not modify the board.
func (b *Board) HintHighlight() []core.Pos {
	var out []core.Pos
	for _, p := range b.level.Constrained() {
		if _, ok := b.matches(p); ok {
			out = append(out, p)
		}
	}
	return out
}

// Mismatched returns the constrained corners that are still wrong, row-major.
func (b *Board) Mismatched() []core.Pos {
	var out []core.Pos
	for _, p := range b.level.Constrained() {
		if _, ok := b.matches(p); !ok {
			out = append(out, p)
		}
	}
	return out
}
