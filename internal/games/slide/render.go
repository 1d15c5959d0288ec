package slide

import (
	"strconv"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

const (
	cellWidth  = 7 // Width of each tile box
	cellHeight = 3 // Height of each tile box
	hudHeight  = 3 // Title and hint lines above the board
)

// layout returns the board position on screen.
func (g *Game) layout() core.GridLayout {
	return core.GridLayout{
		Origin: core.P((g.screenW-Size*cellWidth)/2, hudHeight+1),
		CellW:  cellWidth,
		CellH:  cellHeight,
		Cols:   Size,
		Rows:   Size,
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

	frame := core.NewRect(l.Origin.X-1, l.Origin.Y-1, Size*cellWidth+2, Size*cellHeight+2)
	frameColor := core.ColorGray
	if g.solved {
		frameColor = core.ColorBrightGreen
	}
	dst.DrawBox(frame, frameColor)

	grid := g.puzzle.Grid()
	for i, v := range grid {
		p := position(i)
		g.renderTile(dst, l.CellRect(p), v, g.hint && v != 0 && grid.Correct(i), p == g.cursor)
	}

	statusColor := core.ColorDefault
	if g.solved {
		statusColor = core.ColorBrightGreen
	}
	dst.DrawTextCentered(frame.Bottom()+1, g.status, statusColor)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the title and the hint/help indicators.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightYellow)

	hint := "Hint OFF"
	if g.hint {
		hint = "Hint ON"
	}
	help := "Help ready"
	helpColor := core.ColorGreen
	if !g.HelpReady() {
		help = "Help cooling down"
		helpColor = core.ColorGray
	}
	dst.DrawTextCentered(1, hint, core.ColorDefault)
	dst.DrawTextCentered(2, help, helpColor)
}

// renderTile draws one boxed tile, or nothing for the blank.
func (g *Game) renderTile(dst *core.Screen, r core.Rect, value int, correct, cursor bool) {
	boxColor := core.ColorBlue
	switch {
	case cursor:
		boxColor = core.ColorYellow
	case g.solved:
		boxColor = core.ColorBrightGreen
	case correct:
		boxColor = core.ColorBrightYellow
	}

	if value == 0 {
		if cursor {
			dst.DrawBox(r, core.ColorGray)
		}
		return
	}

	dst.DrawBox(r, boxColor)
	textColor := core.ColorWhite
	if correct {
		textColor = core.ColorBrightYellow
	}
	label := strconv.Itoa(value)
	dst.DrawTextColor(r.X+(cellWidth-len(label))/2, r.Y+cellHeight/2, label, textColor)
}
