package pipes

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell in characters
	cellHeight = 3 // Height of each cell in characters
	hudHeight  = 3 // Title and level lines above the board
)

// Openings are indexed clockwise from the top.
const (
	sideUp = iota
	sideRight
	sideDown
	sideLeft
)

// baseOpenings are the sides a piece connects at visual rotation 0.
var baseOpenings = map[TileType][]int{
	TileCorner:    {sideLeft, sideUp},
	TileStraightH: {sideLeft, sideRight},
	TileStraightV: {sideLeft, sideRight}, // drawn with the vertical bias
}

// openings returns which sides of the cell the tile's pipe reaches.
func openings(t Tile) [4]bool {
	var open [4]bool
	steps := VisualRotation(t) / 90
	for _, side := range baseOpenings[t.Type] {
		open[(side+steps)%4] = true
	}
	return open
}

// pipeGlyph returns the centre rune joining the open sides.
func pipeGlyph(open [4]bool) rune {
	switch {
	case open[sideUp] && open[sideRight]:
		return '└'
	case open[sideRight] && open[sideDown]:
		return '┌'
	case open[sideDown] && open[sideLeft]:
		return '┐'
	case open[sideLeft] && open[sideUp]:
		return '┘'
	case open[sideLeft] && open[sideRight]:
		return '─'
	case open[sideUp] && open[sideDown]:
		return '│'
	default:
		return ' '
	}
}

// layout returns the board position on screen.
func (g *Game) layout() core.GridLayout {
	level := g.puzzle.Board().Level()
	boardW := level.Cols() * cellWidth
	return core.GridLayout{
		Origin: core.P((g.screenW-boardW)/2, hudHeight+1),
		CellW:  cellWidth,
		CellH:  cellHeight,
		Cols:   level.Cols(),
		Rows:   level.Rows(),
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst)

	// Frame around the board
	frame := core.NewRect(l.Origin.X-1, l.Origin.Y-1, l.Cols*l.CellW+2, l.Rows*l.CellH+2)
	frameColor := core.ColorGray
	if g.solved {
		frameColor = core.ColorBrightGreen
	}
	dst.DrawBox(frame, frameColor)

	highlighted := make(map[core.Pos]bool)
	if g.hint {
		for _, p := range g.puzzle.Board().HintHighlight() {
			highlighted[p] = true
		}
	}

	for _, t := range g.puzzle.Board().Tiles() {
		g.renderTile(dst, l.CellRect(t.Pos()), t, highlighted[t.Pos()])
	}
	g.renderCursor(dst, l.CellRect(g.cursor))

	statusColor := core.ColorDefault
	if g.solved {
		statusColor = core.ColorBrightGreen
	}
	dst.DrawTextCentered(frame.Bottom()+1, g.status, statusColor)

	if g.hint && !g.solved {
		wrong := len(g.puzzle.Board().Mismatched())
		total := len(g.puzzle.Board().Level().Constrained())
		dst.DrawTextCentered(frame.Bottom()+2, fmt.Sprintf("%d of %d corners still wrong", wrong, total), core.ColorBrightYellow)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the title, level and cursor info.
func (g *Game) renderHUD(dst *core.Screen) {
	level := g.puzzle.Board().Level()

	dst.DrawTextCentered(0, g.Title(), core.ColorBrightYellow)
	dst.DrawTextCentered(1, fmt.Sprintf("Puzzle %d/%d: %s", level.ID, g.puzzle.LevelCount(), level.Name), core.ColorDefault)

	if !g.cfg.ShowLabels {
		return
	}
	t, ok := g.puzzle.Board().Tile(g.cursor)
	if !ok {
		return
	}
	info := fmt.Sprintf("%s %s", g.cursor, t.Type)
	if t.Type == TileCorner {
		info = fmt.Sprintf("%s corner rotation=%d (%d°)", g.cursor, t.Rotation, Normalize(t.Rotation))
	}
	dst.DrawTextCentered(2, info, core.ColorGray)
}

// renderTile draws one cell's piece.
func (g *Game) renderTile(dst *core.Screen, r core.Rect, t Tile, highlighted bool) {
	cx := r.X + cellWidth/2
	cy := r.Y + cellHeight/2

	switch t.Type {
	case TileEmpty:
		return
	case TileStart:
		dst.SetColor(cx, cy, 'S', core.ColorGreen)
		return
	case TileGoal:
		dst.SetColor(cx, cy, 'G', core.ColorRed)
		return
	}

	color := core.ColorWhite
	switch {
	case g.solved:
		color = core.ColorBrightGreen
	case highlighted:
		color = core.ColorBrightYellow
	case t.Type == TileCorner:
		color = core.ColorBrightBlue
	}

	open := openings(t)
	if open[sideUp] {
		dst.SetColor(cx, r.Y, '│', color)
	}
	if open[sideDown] {
		dst.SetColor(cx, r.Bottom()-1, '│', color)
	}
	if open[sideLeft] {
		for x := r.X; x < cx; x++ {
			dst.SetColor(x, cy, '─', color)
		}
	}
	if open[sideRight] {
		for x := cx + 1; x < r.Right(); x++ {
			dst.SetColor(x, cy, '─', color)
		}
	}
	dst.SetColor(cx, cy, pipeGlyph(open), color)
}

// renderCursor marks the four corners of the cursor cell.
func (g *Game) renderCursor(dst *core.Screen, r core.Rect) {
	dst.SetColor(r.X, r.Y, '+', core.ColorYellow)
	dst.SetColor(r.Right()-1, r.Y, '+', core.ColorYellow)
	dst.SetColor(r.X, r.Bottom()-1, '+', core.ColorYellow)
	dst.SetColor(r.Right()-1, r.Bottom()-1, '+', core.ColorYellow)
}
