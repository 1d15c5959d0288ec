// Package config provides YAML-based puzzle configuration loading
// with embedded defaults.
package config

// PipesConfig contains all configuration for the pipe-rotation puzzle.
type PipesConfig struct {
	// CheckDelayMs is how long after a rotation the route status is re-evaluated,
	// leaving room for the visual transition.
	CheckDelayMs int `yaml:"check_delay_ms"`
	// StartLevel is the level id loaded first.
	StartLevel int `yaml:"start_level"`
	// LevelsFile replaces the built-in level catalog when set.
	LevelsFile string `yaml:"levels_file"`
	// ShowLabels shows the (row,col) and rotation of the cell under the cursor.
	ShowLabels bool `yaml:"show_labels"`
}

// SlideConfig contains all configuration for the sliding puzzle.
type SlideConfig struct {
	// ShuffleMoves is the number of random blank swaps per shuffle.
	ShuffleMoves int `yaml:"shuffle_moves"`
	// HelpCooldownMs is the minimum interval between two help moves.
	HelpCooldownMs int `yaml:"help_cooldown_ms"`
}

// sanitize replaces out-of-range values with defaults.
func (c *PipesConfig) sanitize() {
	def := DefaultPipesConfig()
	if c.CheckDelayMs < 0 {
		c.CheckDelayMs = def.CheckDelayMs
	}
	if c.StartLevel <= 0 {
		c.StartLevel = def.StartLevel
	}
}

// sanitize replaces out-of-range values with defaults.
func (c *SlideConfig) sanitize() {
	def := DefaultSlideConfig()
	if c.ShuffleMoves < 0 {
		c.ShuffleMoves = def.ShuffleMoves
	}
	if c.HelpCooldownMs < 0 {
		c.HelpCooldownMs = def.HelpCooldownMs
	}
}
