package pipes

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

//go:embed levels.yaml
var defaultLevelsYAML []byte

// Level is an immutable board layout plus the required rotation of each
// constrained corner. Required is indexed like Layout; nil means unconstrained.
type Level struct {
	ID       int          `yaml:"id"`
	Name     string       `yaml:"name"`
	Layout   [][]TileType `yaml:"layout"`
	Required [][]*int     `yaml:"required"`
}

// Rows returns the number of board rows.
func (l Level) Rows() int {
	return len(l.Layout)
}

// Cols returns the number of board columns.
func (l Level) Cols() int {
	if len(l.Layout) == 0 {
		return 0
	}
	return len(l.Layout[0])
}

// InBounds returns true if p is a cell of the level.
func (l Level) InBounds(p core.Pos) bool {
	return p.Y >= 0 && p.Y < l.Rows() && p.X >= 0 && p.X < l.Cols()
}

// TypeAt returns the tile type of a cell, or TileEmpty out of bounds.
func (l Level) TypeAt(p core.Pos) TileType {
	if !l.InBounds(p) {
		return TileEmpty
	}
	return l.Layout[p.Y][p.X]
}

// RequiredAt returns the required rotation of a cell.
// Only corner cells can be constrained.
func (l Level) RequiredAt(p core.Pos) (int, bool) {
	if !l.InBounds(p) || l.TypeAt(p) != TileCorner {
		return 0, false
	}
	if p.Y >= len(l.Required) || p.X >= len(l.Required[p.Y]) {
		return 0, false
	}
	req := l.Required[p.Y][p.X]
	if req == nil {
		return 0, false
	}
	return *req, true
}

// Constrained returns the positions that carry a required rotation, row-major.
func (l Level) Constrained() []core.Pos {
	var out []core.Pos
	for y := 0; y < l.Rows(); y++ {
		for x := 0; x < l.Cols(); x++ {
			if _, ok := l.RequiredAt(core.P(x, y)); ok {
				out = append(out, core.P(x, y))
			}
		}
	}
	return out
}

// LevelError describes why a level definition was rejected.
type LevelError struct {
	Level   int
	Code    string
	Message string
}

func (e LevelError) Error() string {
	return fmt.Sprintf("level %d: [%s] %s", e.Level, e.Code, e.Message)
}

// Validate checks the level's shape and constraints.
func (l Level) Validate() error {
	fail := func(code, format string, args ...any) error {
		return LevelError{Level: l.ID, Code: code, Message: fmt.Sprintf(format, args...)}
	}

	if l.ID <= 0 {
		return fail("INVALID_ID", "id must be positive")
	}
	if l.Rows() == 0 || l.Cols() == 0 {
		return fail("EMPTY_LAYOUT", "layout has no cells")
	}

	starts, goals := 0, 0
	for y, row := range l.Layout {
		if len(row) != l.Cols() {
			return fail("RAGGED_LAYOUT", "row %d has %d cells, expected %d", y, len(row), l.Cols())
		}
		for x, t := range row {
			if !t.Valid() {
				return fail("UNKNOWN_TILE", "unknown tile type %q at (%d,%d)", t, y, x)
			}
			switch t {
			case TileStart:
				starts++
			case TileGoal:
				goals++
			}
		}
	}
	if starts == 0 || goals == 0 {
		return fail("MISSING_ENDPOINT", "layout needs a start and a goal")
	}

	if len(l.Required) == 0 {
		return fail("NO_CONSTRAINT", "layout needs at least one constrained corner")
	}
	if len(l.Required) != l.Rows() {
		return fail("SHAPE_MISMATCH", "required has %d rows, layout has %d", len(l.Required), l.Rows())
	}
	for y, row := range l.Required {
		if len(row) != l.Cols() {
			return fail("SHAPE_MISMATCH", "required row %d has %d cells, expected %d", y, len(row), l.Cols())
		}
		for x, req := range row {
			if req != nil && l.Layout[y][x] != TileCorner {
				return fail("CONSTRAINED_NON_CORNER", "rotation required at (%d,%d) which is %s", y, x, l.Layout[y][x])
			}
			if req != nil && *req%90 != 0 {
				return fail("UNREACHABLE_ROTATION", "rotation %d at (%d,%d) is not a multiple of 90", *req, y, x)
			}
		}
	}
	if len(l.Constrained()) == 0 {
		return fail("NO_CONSTRAINT", "layout needs at least one constrained corner")
	}

	return nil
}

// Catalog holds the available levels ordered by id.
type Catalog struct {
	levels []Level
}

// NewCatalog validates the levels and builds a catalog.
func NewCatalog(levels ...Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("pipes: catalog has no levels")
	}

	seen := make(map[int]bool, len(levels))
	sorted := make([]Level, 0, len(levels))
	for _, lvl := range levels {
		if err := lvl.Validate(); err != nil {
			return nil, fmt.Errorf("pipes: %w", err)
		}
		if seen[lvl.ID] {
			return nil, fmt.Errorf("pipes: duplicate level id %d", lvl.ID)
		}
		seen[lvl.ID] = true
		sorted = append(sorted, lvl)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	return &Catalog{levels: sorted}, nil
}

// catalogFile is the YAML structure of a level file.
type catalogFile struct {
	Levels []Level `yaml:"levels"`
}

// ParseCatalog parses a YAML level file.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("pipes: yaml unmarshal: %w", err)
	}
	return NewCatalog(f.Levels...)
}

// LoadCatalog reads and parses a YAML level file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipes: reading levels %s: %w", path, err)
	}
	return ParseCatalog(data)
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(defaultLevelsYAML)
})

// DefaultCatalog returns the built-in levels.
// It panics if the embedded level file is invalid.
func DefaultCatalog() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// IDs returns the level ids in order.
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.levels))
	for i, lvl := range c.levels {
		ids[i] = lvl.ID
	}
	return ids
}

// First returns the id of the first level.
func (c *Catalog) First() int {
	return c.levels[0].ID
}

// Level returns the level with the given id.
func (c *Catalog) Level(id int) (Level, bool) {
	for _, lvl := range c.levels {
		if lvl.ID == id {
			return lvl, true
		}
	}
	return Level{}, false
}

// Next returns the id following id, wrapping to the first level.
// With two levels this toggles between them.
func (c *Catalog) Next(id int) int {
	for i, lvl := range c.levels {
		if lvl.ID == id {
			return c.levels[(i+1)%len(c.levels)].ID
		}
	}
	return c.First()
}
