package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPipes loads the pipe puzzle configuration.
// Search order: customPath -> ~/.puzzles/configs/pipes.yaml -> ./configs/pipes.yaml -> embedded default
func LoadPipes(customPath string) (PipesConfig, error) {
	cfg, err := load(customPath, "pipes", DefaultPipesConfig())
	if err != nil {
		return cfg, err
	}
	cfg.sanitize()
	return cfg, nil
}

// LoadSlide loads the sliding puzzle configuration.
// Search order: customPath -> ~/.puzzles/configs/slide.yaml -> ./configs/slide.yaml -> embedded default
func LoadSlide(customPath string) (SlideConfig, error) {
	cfg, err := load(customPath, "slide", DefaultSlideConfig())
	if err != nil {
		return cfg, err
	}
	cfg.sanitize()
	return cfg, nil
}

// load resolves a game's config file by the search order and decodes it over
// base, so keys missing from the file keep their default values.
func load[T any](customPath, gameID string, base T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := base
	if err := yaml.Unmarshal(defaultYAML(gameID), &cfg); err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzles", "configs", filename)
}
