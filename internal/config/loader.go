package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "island.yaml"

// LoadIsland loads the Island Jumper configuration.
// Search order: customPath -> ~/.island/configs/island.yaml -> ./configs/island.yaml -> embedded default
// Files are layered over the built-in defaults, so partial files are fine.
func LoadIsland(customPath string) (IslandConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return IslandConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return IslandConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultIslandYAML)
	if err != nil {
		return DefaultIslandConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults and validates the result.
func Parse(data []byte) (IslandConfig, error) {
	cfg := DefaultIslandConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return IslandConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return IslandConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".island", "configs", filename)
}

// ApplyIslandPreset modifies the config based on a difficulty preset.
func ApplyIslandPreset(cfg *IslandConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Trap.FuseTime = 4.0
		cfg.Frenzy.CollapseTime = 3.0
		cfg.Boat.Lives = 5
	case DifficultyHard:
		cfg.Trap.FuseTime = 2.0
		cfg.Frenzy.CollapseTime = 1.5
		cfg.Boat.Lives = 2
	}
}
