package slide

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	if g1.Snapshot().Grid != g2.Snapshot().Grid {
		t.Fatalf("initial grids differ: %v vs %v", g1.Snapshot().Grid, g2.Snapshot().Grid)
	}

	input := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		input.Clear()
		switch i % 7 {
		case 1:
			input.Set(core.ActionUp)
		case 2:
			input.Set(core.ActionConfirm)
		case 3:
			input.Set(core.ActionLeft)
		case 5:
			input.Set(core.ActionHelp)
		}
		if i == 60 {
			input.Set(core.ActionShuffle)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestMoveSolves(t *testing.T) {
	g := newTestGame(t, 1)
	g.puzzle.grid = Grid{1, 2, 3, 4, 5, 6, 7, 0, 8}
	g.solved = false
	g.cursor = position(8)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := g.Step(in)

	if !g.State().Solved {
		t.Fatal("game should be solved")
	}
	if g.State().Status != msgSolved {
		t.Errorf("status = %q, want %q", g.State().Status, msgSolved)
	}
	var solved bool
	for _, e := range res.Events {
		if e == "solved" {
			solved = true
		}
	}
	if !solved {
		t.Errorf("events = %v, want solved", res.Events)
	}
}

func TestIllegalMoveIgnored(t *testing.T) {
	g := newTestGame(t, 1)
	g.puzzle.grid = Grid{1, 2, 3, 4, 5, 6, 7, 0, 8}
	g.cursor = position(0)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := g.Step(in)

	if g.puzzle.Grid() != (Grid{1, 2, 3, 4, 5, 6, 7, 0, 8}) {
		t.Errorf("grid changed to %v", g.puzzle.Grid())
	}
	if len(res.Events) != 0 {
		t.Errorf("events = %v, want none", res.Events)
	}
}

func TestClickMovesTile(t *testing.T) {
	g := newTestGame(t, 1)
	g.puzzle.grid = Grid{1, 2, 3, 4, 5, 6, 7, 0, 8}

	r := g.layout().CellRect(position(4))
	in := core.NewInputFrame()
	in.Click(r.X+2, r.Y+1)
	g.Step(in)

	want := Grid{1, 2, 3, 4, 0, 6, 7, 5, 8}
	if g.puzzle.Grid() != want {
		t.Errorf("grid = %v, want %v", g.puzzle.Grid(), want)
	}
	if g.cursor != position(4) {
		t.Errorf("cursor = %s, want %s", g.cursor, position(4))
	}
}

func TestHelpCooldown(t *testing.T) {
	g := newTestGame(t, 7)
	g.puzzle.grid = Grid{1, 2, 3, 4, 5, 0, 7, 8, 6}

	help := core.NewInputFrame()
	help.Set(core.ActionHelp)
	idle := core.NewInputFrame()

	g.Step(help)
	afterFirst := g.puzzle.Grid()
	if afterFirst == (Grid{1, 2, 3, 4, 5, 0, 7, 8, 6}) {
		t.Fatal("first help should move a tile")
	}
	if g.HelpReady() {
		t.Fatal("help should be cooling down")
	}

	// Blocked inside the window
	g.Step(help)
	if g.puzzle.Grid() != afterFirst {
		t.Errorf("second help moved a tile during cooldown")
	}
	if g.State().Status != msgCooldown {
		t.Errorf("status = %q, want %q", g.State().Status, msgCooldown)
	}

	window := g.rtc.Ticks(g.cfg.HelpCooldownMs)
	if window != 90 {
		t.Fatalf("cooldown = %d ticks, want 90", window)
	}
	// One tick of the window was spent on the blocked attempt
	for i := 0; i < window-2; i++ {
		g.Step(idle)
	}
	if g.HelpReady() {
		t.Fatal("help released early")
	}
	g.Step(idle)
	if !g.HelpReady() {
		t.Fatal("help should be released after the window")
	}

	g.Step(help)
	if g.puzzle.Grid() == afterFirst {
		t.Error("help after cooldown should move a tile")
	}
}

func TestHintToggle(t *testing.T) {
	g := newTestGame(t, 2)
	g.puzzle.grid = Grid{1, 2, 3, 4, 5, 6, 0, 7, 8}

	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	g.Step(in)
	if !g.hint || g.State().Status != msgHintOn {
		t.Fatalf("hint = %v status = %q, want on", g.hint, g.State().Status)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	l := g.layout()
	// Tile 1 is in place, tile 7 is not
	r1 := l.CellRect(position(0))
	if c := scr.GetCell(r1.X+cellWidth/2, r1.Y+1); c.Rune != '1' || c.Color != core.ColorBrightYellow {
		t.Errorf("tile 1 = %q/%v, want highlighted 1", c.Rune, c.Color)
	}
	r7 := l.CellRect(position(7))
	if c := scr.GetCell(r7.X+cellWidth/2, r7.Y+1); c.Rune != '7' || c.Color != core.ColorWhite {
		t.Errorf("tile 7 = %q/%v, want plain 7", c.Rune, c.Color)
	}

	g.Step(in)
	if g.hint || g.State().Status != msgHintOff {
		t.Errorf("hint = %v status = %q, want off", g.hint, g.State().Status)
	}
}

func TestShuffleAndNewBoard(t *testing.T) {
	g := newTestGame(t, 9)
	in := core.NewInputFrame()

	in.Set(core.ActionShuffle)
	g.Step(in)
	if g.State().Status != msgShuffled || !g.puzzle.Grid().isPermutation() {
		t.Errorf("shuffle: status %q grid %v", g.State().Status, g.puzzle.Grid())
	}

	in.Clear()
	in.Set(core.ActionReset)
	g.Step(in)
	if g.State().Status != msgNewBoard || !g.puzzle.Grid().isPermutation() {
		t.Errorf("new board: status %q grid %v", g.State().Status, g.puzzle.Grid())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 4)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"Slide Puzzle", "Hint OFF", "Help ready"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 18, ScreenH: 8, TickRate: 30, Seed: 1})

	scr := core.NewScreen(18, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too small message")
	}
}
