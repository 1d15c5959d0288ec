package pipes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	require.Equal(t, 2, cat.Len())
	assert.Equal(t, []int{1, 2}, cat.IDs())
	assert.Equal(t, 1, cat.First())

	one, ok := cat.Level(1)
	require.True(t, ok)
	assert.Equal(t, 4, one.Rows())
	assert.Equal(t, 5, one.Cols())
	assert.Equal(t, TileStart, one.TypeAt(core.P(0, 3)))
	assert.Equal(t, TileGoal, one.TypeAt(core.P(4, 2)))
	assert.Equal(t, []core.Pos{core.P(2, 0), core.P(4, 0), core.P(2, 3)}, one.Constrained())

	req, ok := one.RequiredAt(core.P(2, 0))
	require.True(t, ok)
	assert.Equal(t, 180, req)

	two, ok := cat.Level(2)
	require.True(t, ok)
	assert.Len(t, two.Constrained(), 5)
	req, ok = two.RequiredAt(core.P(2, 3))
	require.True(t, ok)
	assert.Equal(t, 90, req)

	_, ok = cat.Level(3)
	assert.False(t, ok)
}

func TestCatalogNextCycles(t *testing.T) {
	cat := DefaultCatalog()
	assert.Equal(t, 2, cat.Next(1))
	assert.Equal(t, 1, cat.Next(2))
	assert.Equal(t, 1, cat.Next(99))
}

func TestLevelValidate(t *testing.T) {
	ninety := 90
	fortyFive := 45
	tests := []struct {
		name  string
		level Level
		code  string
	}{
		{
			name:  "bad id",
			level: Level{ID: 0, Layout: [][]TileType{{TileStart, TileGoal}}},
			code:  "INVALID_ID",
		},
		{
			name:  "empty",
			level: Level{ID: 1},
			code:  "EMPTY_LAYOUT",
		},
		{
			name:  "ragged",
			level: Level{ID: 1, Layout: [][]TileType{{TileStart, TileGoal}, {TileEmpty}}},
			code:  "RAGGED_LAYOUT",
		},
		{
			name:  "unknown tile",
			level: Level{ID: 1, Layout: [][]TileType{{TileStart, TileGoal, "tee"}}},
			code:  "UNKNOWN_TILE",
		},
		{
			name:  "no goal",
			level: Level{ID: 1, Layout: [][]TileType{{TileStart, TileCorner}}},
			code:  "MISSING_ENDPOINT",
		},
		{
			name: "required shape",
			level: Level{
				ID:       1,
				Layout:   [][]TileType{{TileStart, TileCorner, TileGoal}},
				Required: [][]*int{{nil, &ninety}},
			},
			code: "SHAPE_MISMATCH",
		},
		{
			name: "required on straight",
			level: Level{
				ID:       1,
				Layout:   [][]TileType{{TileStart, TileStraightH, TileGoal}},
				Required: [][]*int{{nil, &ninety, nil}},
			},
			code: "CONSTRAINED_NON_CORNER",
		},
		{
			name: "rotation off the quarter turns",
			level: Level{
				ID:       1,
				Layout:   [][]TileType{{TileStart, TileCorner, TileGoal}},
				Required: [][]*int{{nil, &fortyFive, nil}},
			},
			code: "UNREACHABLE_ROTATION",
		},
		{
			name:  "no required map",
			level: Level{ID: 1, Layout: [][]TileType{{TileStart, TileCorner, TileGoal}}},
			code:  "NO_CONSTRAINT",
		},
		{
			name: "all corners unconstrained",
			level: Level{
				ID:       1,
				Layout:   [][]TileType{{TileStart, TileCorner, TileGoal}},
				Required: [][]*int{{nil, nil, nil}},
			},
			code: "NO_CONSTRAINT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate()
			require.Error(t, err)
			var lerr LevelError
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.code, lerr.Code)
		})
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	ninety := 90
	lvl := Level{
		ID:       1,
		Layout:   [][]TileType{{TileStart, TileCorner, TileGoal}},
		Required: [][]*int{{nil, &ninety, nil}},
	}
	_, err := NewCatalog(lvl, lvl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = NewCatalog()
	require.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	data := `levels:
  - id: 7
    name: Tiny
    layout:
      - [start, corner]
      - [empty, goal]
    required:
      - [~, 90]
      - [~, ~]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, cat.IDs())
	assert.Equal(t, 7, cat.Next(7))

	lvl, _ := cat.Level(7)
	req, ok := lvl.RequiredAt(core.P(1, 0))
	require.True(t, ok)
	assert.Equal(t, 90, req)

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	offGrid := filepath.Join(dir, "off-grid.yaml")
	require.NoError(t, os.WriteFile(offGrid, []byte("levels:\n  - id: 1\n    layout: [[start, corner, goal]]\n    required: [[~, 45, ~]]\n"), 0o644))
	_, err = LoadCatalog(offGrid)
	var lerr LevelError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "UNREACHABLE_ROTATION", lerr.Code)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("levels:\n  - id: 1\n    layout: [[start, pipe, goal]]\n"), 0o644))
	_, err = LoadCatalog(bad)
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "UNKNOWN_TILE", lerr.Code)
}

func TestPuzzleSwitchLevel(t *testing.T) {
	p := NewPuzzle(DefaultCatalog(), &seqRand{})
	assert.Equal(t, 1, p.LevelID())
	assert.Equal(t, 2, p.LevelCount())

	assert.Equal(t, 2, p.SwitchLevel())
	assert.Equal(t, 2, p.Board().Level().ID)
	assert.Len(t, p.Board().InitialRotations(), 5)
	assert.False(t, p.Solved())

	assert.Equal(t, 1, p.SwitchLevel())
	assert.Equal(t, 1, p.Board().Level().ID)

	require.Error(t, p.Initialize(42))
	assert.Equal(t, 1, p.LevelID())
}
