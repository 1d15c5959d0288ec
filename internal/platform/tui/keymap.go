package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// KeyMap defines the key bindings shared by all puzzles.
// Each binding produces one core action.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Shuffle    key.Binding
	Reset      key.Binding
	Hint       key.Binding
	Help       key.Binding
	Switch     key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding

	// move only documents the arrow keys in the help footer
	move key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "turn/slide"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "shuffle"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		Help: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "help move"),
		),
		Switch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", "move"),
		),
	}
}

// binding returns the binding that produces an action.
func (k KeyMap) binding(a core.Action) (key.Binding, bool) {
	switch a {
	case core.ActionUp:
		return k.Up, true
	case core.ActionDown:
		return k.Down, true
	case core.ActionLeft:
		return k.Left, true
	case core.ActionRight:
		return k.Right, true
	case core.ActionConfirm:
		return k.Confirm, true
	case core.ActionShuffle:
		return k.Shuffle, true
	case core.ActionReset:
		return k.Reset, true
	case core.ActionHint:
		return k.Hint, true
	case core.ActionHelp:
		return k.Help, true
	case core.ActionSwitch:
		return k.Switch, true
	case core.ActionBack:
		return k.Back, true
	case core.ActionQuit:
		return k.Quit, true
	default:
		return key.Binding{}, false
	}
}

// actionOrder is the order keys are matched and listed in help.
var actionOrder = []core.Action{
	core.ActionQuit,
	core.ActionBack,
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionConfirm,
	core.ActionShuffle,
	core.ActionReset,
	core.ActionHint,
	core.ActionHelp,
	core.ActionSwitch,
}

// Action translates a key message to a core action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range actionOrder {
		b, _ := k.binding(a)
		if key.Matches(msg, b) {
			return a
		}
	}
	return core.ActionNone
}

// ForGame returns a help key map listing only the actions a game uses.
func (k KeyMap) ForGame(actions []core.Action) GameHelp {
	used := make(map[core.Action]bool, len(actions))
	for _, a := range actions {
		used[a] = true
	}

	h := GameHelp{}
	if used[core.ActionUp] || used[core.ActionDown] || used[core.ActionLeft] || used[core.ActionRight] {
		h.short = append(h.short, k.move)
		h.full = append(h.full, []key.Binding{k.Up, k.Down, k.Left, k.Right})
	}

	var puzzle []key.Binding
	for _, a := range actionOrder {
		switch a {
		case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
			core.ActionBack, core.ActionQuit:
			continue
		}
		if !used[a] {
			continue
		}
		b, _ := k.binding(a)
		puzzle = append(puzzle, b)
	}
	h.short = append(h.short, puzzle...)
	h.short = append(h.short, k.Back, k.Quit)
	h.full = append(h.full, puzzle, []key.Binding{k.Back, k.Quit, k.Screenshot})
	return h
}

// GameHelp implements help.KeyMap for one game's footer.
type GameHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (h GameHelp) ShortHelp() []key.Binding {
	return h.short
}

// FullHelp returns key bindings for the full help view.
func (h GameHelp) FullHelp() [][]key.Binding {
	return h.full
}
