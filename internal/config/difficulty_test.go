package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{1000, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	})
	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(500, 500); got != 0.3 {
		t.Errorf("disabled Level = %v, expected initial 0.3", got)
	}
	if got := d.Speed(10, 500, 0); math.Abs(got-13) > 1e-9 {
		t.Errorf("Speed = %v, expected 13", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:     ScalingConfig{WeightMultiplier: 0.5},
	})
	if got := d.WeightScale(0, 300); math.Abs(got-1.25) > 1e-9 {
		t.Errorf("WeightScale at half time = %v, expected 1.25", got)
	}
}

func TestDifficultySpacingFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpacingReduction: 300},
	})
	if got := d.Spacing(350, 200, 0, 0); got != 350 {
		t.Errorf("Spacing at level 0 = %v, expected 350", got)
	}
	if got := d.Spacing(350, 200, 10, 0); got != 200 {
		t.Errorf("Spacing at max level = %v, expected floor 200", got)
	}
}
