package slide

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// Status messages
const (
	msgPrompt   = "Slide the tiles into order 1-8 with the blank last."
	msgSolved   = "Solved! Press R for a new board."
	msgShuffled = "Board shuffled!"
	msgNewBoard = "New board dealt."
	msgHintOn   = "Hint ON: tiles in their place are highlighted."
	msgHintOff  = "Hint OFF."
	msgCooldown = "Help is cooling down..."
	msgHelpPlan = "Help moved tile %d."
)

// Game implements the sliding puzzle for the platform.
type Game struct {
	cfg      config.SlideConfig
	rtc      core.RuntimeConfig
	puzzle   *Puzzle
	tick     uint64
	cursor   core.Pos
	hint     bool
	solved   bool
	cooldown int // ticks until help is available again, 0 = ready
	status   string

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new sliding puzzle game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("slide", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "slide"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Slide Puzzle"
}

// Actions returns the actions this game reacts to.
func (g *Game) Actions() []core.Action {
	return []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionConfirm, core.ActionShuffle, core.ActionReset,
		core.ActionHint, core.ActionHelp,
	}
}

// Reset deals a new board from config and the runtime seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rtc = cfg
	g.tick = 0
	g.hint = false
	g.cooldown = 0
	g.cursor = core.P(Size-1, Size-1)
	g.status = msgPrompt

	scfg, err := config.LoadSlide(configPath)
	if err != nil {
		scfg = config.DefaultSlideConfig()
		g.status = "Warning: " + err.Error()
	}
	g.cfg = scfg

	g.puzzle = NewPuzzle(rand.New(rand.NewSource(cfg.Seed)), g.cfg.ShuffleMoves)
	g.solved = g.puzzle.IsSolved()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := Size*cellWidth + 2
	minH := Size*cellHeight + hudHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []string

	// Help cooldown latch
	if g.cooldown > 0 {
		g.cooldown--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		events = append(events, g.move(index(g.cursor))...)
	}

	for _, click := range in.Clicks {
		if p, ok := g.layout().CellAt(click.X, click.Y); ok {
			g.cursor = p
			events = append(events, g.move(index(p))...)
		}
	}

	switch {
	case in.Has(core.ActionShuffle):
		g.puzzle.Shuffle()
		g.solved = g.puzzle.IsSolved()
		g.status = msgShuffled
		events = append(events, "shuffle")
	case in.Has(core.ActionReset):
		g.puzzle.InitBoard()
		g.solved = g.puzzle.IsSolved()
		g.status = msgNewBoard
		events = append(events, "new board")
	}

	if in.Has(core.ActionHint) {
		g.hint = !g.hint
		if g.hint {
			g.status = msgHintOn
		} else {
			g.status = msgHintOff
		}
	}

	if in.Has(core.ActionHelp) {
		events = append(events, g.help()...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// index converts a grid position to a linear index.
func index(p core.Pos) int {
	return p.Y*Size + p.X
}

// position converts a linear index to a grid position.
func position(i int) core.Pos {
	return core.P(i%Size, i/Size)
}

// moveCursor applies cursor movement actions.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, Size-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, Size-1)
}

// move slides the tile at i and reports a solve.
func (g *Game) move(i int) []string {
	value := g.puzzle.Grid()[i]
	if !g.puzzle.MoveTile(i) {
		return nil
	}
	events := []string{fmt.Sprintf("move tile=%d from=%s", value, position(i))}
	return append(events, g.afterMove()...)
}

// help applies one helper move unless the cooldown latch is set.
// The latch is set even when no move was available.
func (g *Game) help() []string {
	if g.cooldown > 0 {
		g.status = msgCooldown
		return nil
	}
	g.cooldown = g.rtc.Ticks(g.cfg.HelpCooldownMs)

	before := g.puzzle.Grid()
	idx, ok := g.puzzle.Help()
	if !ok {
		return nil
	}
	value := before[idx]
	g.status = fmt.Sprintf(msgHelpPlan, value)
	events := []string{fmt.Sprintf("help tile=%d from=%s", value, position(idx))}
	return append(events, g.afterMove()...)
}

// afterMove updates the solved state after a tile moved.
func (g *Game) afterMove() []string {
	was := g.solved
	g.solved = g.puzzle.IsSolved()
	if g.solved {
		g.status = msgSolved
		if !was {
			return []string{"solved"}
		}
		return nil
	}
	if was {
		g.status = msgPrompt
	}
	return nil
}

// HelpReady reports whether the help action is available.
func (g *Game) HelpReady() bool {
	return g.cooldown == 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Solved: g.solved,
		Status: g.status,
	}
}
