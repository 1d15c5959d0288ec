// Package pipes implements the pipe-rotation puzzle: rotate the corner pieces
// until every constrained corner matches its required rotation, connecting
// the start cell to the goal cell.
package pipes

import "github.com/vovakirdan/tui-puzzles/internal/core"

// TileType is the kind of piece occupying a board cell.
type TileType string

const (
	TileEmpty     TileType = "empty"
	TileStart     TileType = "start"
	TileGoal      TileType = "goal"
	TileCorner    TileType = "corner"
	TileStraightH TileType = "straight_h"
	TileStraightV TileType = "straight_v"
)

// Valid reports whether t is a known tile type.
func (t TileType) Valid() bool {
	switch t {
	case TileEmpty, TileStart, TileGoal, TileCorner, TileStraightH, TileStraightV:
		return true
	default:
		return false
	}
}

// Tile is a single board cell.
// Rotation is in degrees and accumulates without wrapping; compare it
// through Normalize.
type Tile struct {
	Type     TileType
	Rotation int
	X, Y     int
}

// Pos returns the tile's board position.
func (t Tile) Pos() core.Pos {
	return core.P(t.X, t.Y)
}

// InitialRotation records the rotation a corner received when the board was
// initialized, so the board can be reset to it.
type InitialRotation struct {
	Y, X     int
	Rotation int
}
