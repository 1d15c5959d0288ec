package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "┌─", core.ColorBlue)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Styling may add escape codes but never changes the visible text
	if got := lipgloss.Width(lines[0]); got != 6 {
		t.Errorf("line 0 width = %d, want 6", got)
	}
	for _, want := range []string{"ab", "┌─"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 missing %q: %q", want, lines[0])
		}
	}
	if !strings.HasPrefix(lines[1], "xyz") {
		t.Errorf("line 1 = %q, want xyz prefix", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
