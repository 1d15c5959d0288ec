package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultPipesYAML []byte

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

// DefaultPipesConfig returns the default pipe puzzle configuration.
func DefaultPipesConfig() PipesConfig {
	return PipesConfig{
		CheckDelayMs: 300,
		StartLevel:   1,
		LevelsFile:   "",
		ShowLabels:   true,
	}
}

// DefaultSlideConfig returns the default sliding puzzle configuration.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		ShuffleMoves:   100,
		HelpCooldownMs: 3000,
	}
}

// defaultYAML returns the embedded default YAML for a game.
func defaultYAML(gameID string) []byte {
	switch gameID {
	case "pipes":
		return defaultPipesYAML
	case "slide":
		return defaultSlideYAML
	default:
		return nil
	}
}
