// Package core provides fundamental types and utilities for the puzzle platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Pos is a cell position on a puzzle board.
// X is the column, Y is the row.
type Pos struct {
	X, Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String formats the position as (row,col), matching the on-board labels.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Y, p.X)
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// GridLayout maps screen coordinates to cells of a board drawn with fixed
// cell sizes starting at Origin.
type GridLayout struct {
	Origin     Pos // Screen position of the top-left cell
	CellW      int // Cell width in characters, including spacing
	CellH      int // Cell height in characters, including spacing
	Cols, Rows int
}

// CellRect returns the screen rectangle of a board cell.
func (l GridLayout) CellRect(p Pos) Rect {
	return NewRect(l.Origin.X+p.X*l.CellW, l.Origin.Y+p.Y*l.CellH, l.CellW, l.CellH)
}

// CellAt returns the board cell under the screen point (x, y).
func (l GridLayout) CellAt(x, y int) (Pos, bool) {
	if l.CellW <= 0 || l.CellH <= 0 {
		return Pos{}, false
	}
	board := NewRect(l.Origin.X, l.Origin.Y, l.Cols*l.CellW, l.Rows*l.CellH)
	if !board.Contains(x, y) {
		return Pos{}, false
	}
	return P((x-l.Origin.X)/l.CellW, (y-l.Origin.Y)/l.CellH), true
}
