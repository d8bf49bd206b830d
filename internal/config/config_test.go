package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultIslandConfig()) {
		t.Errorf("embedded yaml and DefaultIslandConfig drifted apart\nyaml: %+v\ncode: %+v", cfg, DefaultIslandConfig())
	}
}

func TestLoadIslandCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "island.yaml")
	data := []byte("jump:\n  distance: 120\npenalties:\n  policy: fatal\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadIsland(path)
	if err != nil {
		t.Fatalf("LoadIsland: %v", err)
	}
	if cfg.Jump.Distance != 120 {
		t.Errorf("jump.distance = %v, expected 120", cfg.Jump.Distance)
	}
	if cfg.Penalties.Policy != PenaltiesFatal {
		t.Errorf("penalties.policy = %q, expected fatal", cfg.Penalties.Policy)
	}
	// Untouched sections keep their defaults
	if cfg.Trap.FuseTime != 3.0 {
		t.Errorf("trap.fuse_time = %v, expected default 3.0", cfg.Trap.FuseTime)
	}
}

func TestLoadIslandErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadIsland(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("jump: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadIsland(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("jump:\n  duration: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadIsland(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero jump duration should be ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IslandConfig)
	}{
		{"tick rate", func(c *IslandConfig) { c.Physics.TickRate = 0 }},
		{"negative distance", func(c *IslandConfig) { c.Jump.Distance = -1 }},
		{"window", func(c *IslandConfig) { c.Tiles.Window = 0 }},
		{"tile wider than river", func(c *IslandConfig) { c.Tiles.Size = 500 }},
		{"initial tiles", func(c *IslandConfig) { c.Tiles.InitialTiles = 7 }},
		{"range mode", func(c *IslandConfig) { c.Jump.RangeMode = "far" }},
		{"policy", func(c *IslandConfig) { c.Penalties.Policy = "lenient" }},
		{"selection", func(c *IslandConfig) { c.Modes.Selection = "shuffle" }},
		{"exit range", func(c *IslandConfig) { c.Boat.ExitMinObstacle = 30 }},
	}

	if err := DefaultIslandConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultIslandConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"", DifficultyNormal, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyIslandPreset(t *testing.T) {
	cfg := DefaultIslandConfig()
	ApplyIslandPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultIslandConfig()
	ApplyIslandPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Boat.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", cfg.Boat.Lives)
	}
}
