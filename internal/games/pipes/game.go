package pipes

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// Status messages
const (
	msgPrompt   = "Rotate the blue corner pieces to build a route from S to G."
	msgSolved   = "Perfect! The route from start to goal is complete!"
	msgShuffled = "Corner pieces shuffled!"
	msgReset    = "Corner pieces reset to their starting rotation."
	msgHintOn   = "Correctly oriented pieces are highlighted."
	msgHintOff  = "Hint hidden."
)

// Game implements the pipe-rotation puzzle for the platform.
type Game struct {
	cfg     config.PipesConfig
	rtc     core.RuntimeConfig
	puzzle  *Puzzle
	tick    uint64
	cursor  core.Pos
	hint    bool
	solved  bool     // route state as of the last evaluation
	checks  []uint64 // ticks of the pending route checks, ascending
	status  string

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level variables for config
var (
	configPath         string
	selectedStartLevel int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the level id to start on. 0 means use the config.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a new pipe puzzle game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pipes", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pipes"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pipe Puzzle"
}

// Actions returns the actions this game reacts to.
func (g *Game) Actions() []core.Action {
	return []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionConfirm, core.ActionShuffle, core.ActionReset,
		core.ActionHint, core.ActionSwitch,
	}
}

// Reset builds a new session from config and the runtime seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rtc = cfg
	g.tick = 0
	g.hint = false
	g.checks = nil
	g.status = msgPrompt
	g.cursor = core.P(-1, -1)

	var warn string
	pcfg, err := config.LoadPipes(configPath)
	if err != nil {
		warn = err.Error()
		pcfg = config.DefaultPipesConfig()
	}
	g.cfg = pcfg

	catalog := DefaultCatalog()
	if g.cfg.LevelsFile != "" {
		custom, loadErr := LoadCatalog(g.cfg.LevelsFile)
		if loadErr != nil {
			warn = loadErr.Error()
		} else {
			catalog = custom
		}
	}

	g.puzzle = NewPuzzle(catalog, rand.New(rand.NewSource(cfg.Seed)))

	start := g.cfg.StartLevel
	if selectedStartLevel > 0 {
		start = selectedStartLevel
	}
	if start != g.puzzle.LevelID() {
		if err := g.puzzle.Initialize(start); err != nil {
			warn = err.Error()
		}
	}

	g.afterBoardChange()
	if warn != "" {
		g.status = "Warning: " + warn
	}

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
	level := g.puzzle.Board().Level()
	minW := level.Cols()*cellWidth + 2
	minH := level.Rows()*cellHeight + hudHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// afterBoardChange drops pending checks, re-evaluates the route at once and
// puts the cursor on the first corner if it fell off the board.
// Returns "solved" if the change completed the route.
func (g *Game) afterBoardChange() []string {
	g.checks = nil
	was := g.solved
	g.solved = g.puzzle.Solved()

	level := g.puzzle.Board().Level()
	if !level.InBounds(g.cursor) {
		g.cursor = core.P(0, 0)
		if corners := g.puzzle.Board().Corners(); len(corners) > 0 {
			g.cursor = corners[0]
		}
	}

	if g.solved && !was {
		return []string{"solved"}
	}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []string

	// Deferred route checks, one per rotation
	due := 0
	for due < len(g.checks) && g.checks[due] <= g.tick {
		due++
	}
	if due > 0 {
		g.checks = g.checks[due:]
		events = append(events, g.evaluate()...)
	}

	if g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		events = append(events, g.rotate(g.cursor)...)
	}

	for _, click := range in.Clicks {
		if p, ok := g.layout().CellAt(click.X, click.Y); ok {
			g.cursor = p
			events = append(events, g.rotate(p)...)
		}
	}

	switch {
	case in.Has(core.ActionShuffle):
		g.puzzle.Board().ShuffleAll()
		events = append(events, "shuffle")
		events = append(events, g.afterBoardChange()...)
		g.status = msgShuffled
		if g.solved {
			g.status = msgShuffled + " " + msgSolved
		}
	case in.Has(core.ActionReset):
		g.puzzle.Board().ResetAll()
		g.afterBoardChange()
		g.status = msgReset
		events = append(events, "reset")
	case in.Has(core.ActionSwitch):
		id := g.puzzle.SwitchLevel()
		g.afterBoardChange()
		g.checkScreenSize()
		g.status = fmt.Sprintf("Switched to puzzle %d.", id)
		events = append(events, fmt.Sprintf("switch level=%d", id))
	}

	if in.Has(core.ActionHint) {
		g.hint = !g.hint
		if g.hint {
			g.status = msgHintOn
		} else {
			g.status = msgHintOff
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor applies cursor movement actions.
func (g *Game) moveCursor(in core.InputFrame) {
	level := g.puzzle.Board().Level()
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
	g.cursor.X = core.Clamp(g.cursor.X, 0, level.Cols()-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, level.Rows()-1)
}

// rotate turns the corner at p and schedules its own deferred route check.
func (g *Game) rotate(p core.Pos) []string {
	board := g.puzzle.Board()
	if !board.RotateCorner(p) {
		return nil
	}
	t, _ := board.Tile(p)
	event := fmt.Sprintf("rotate %s rotation=%d normalized=%d", p, t.Rotation, Normalize(t.Rotation))

	delay := g.rtc.Ticks(g.cfg.CheckDelayMs)
	if delay == 0 {
		return append([]string{event}, g.evaluate()...)
	}
	g.checks = append(g.checks, g.tick+uint64(delay))
	return []string{event}
}

// evaluate checks the route and updates the status line.
func (g *Game) evaluate() []string {
	was := g.solved
	g.solved = g.puzzle.Solved()
	if g.solved {
		g.status = msgSolved
	} else {
		g.status = msgPrompt
	}
	if g.solved != was {
		if g.solved {
			return []string{"solved"}
		}
		return []string{"unsolved"}
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Solved: g.solved,
		Status: g.status,
	}
}
