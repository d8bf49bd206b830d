package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/island-jumper/internal/games/island"
)

func TestSimulateIsDeterministic(t *testing.T) {
	a, err := simulate(island.VariantAutoplay, 11, 900, "")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := simulate(island.VariantAutoplay, 11, 900, "")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if a != b {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
	if a.Seed != 11 || a.Variant != island.VariantAutoplay || a.Ticks == 0 {
		t.Errorf("run = %+v", a)
	}
}

func TestSimulateRecordingVerifies(t *testing.T) {
	tests := []string{island.VariantAutoplay, island.VariantEconomy}
	for _, variant := range tests {
		t.Run(variant, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "run.ijr")
			run, err := simulate(variant, 5, 600, path)
			if err != nil {
				t.Fatalf("simulate: %v", err)
			}
			n, err := verifyRecording(path)
			if err != nil {
				t.Fatalf("verifyRecording: %v", err)
			}
			if uint64(n) != run.Ticks {
				t.Errorf("verified %d frames, run lasted %d ticks", n, run.Ticks)
			}
		})
	}
}

func TestIslandGameRejectsUnknownVariant(t *testing.T) {
	if _, err := islandGame("nope"); err == nil {
		t.Error("unknown variant accepted")
	}
}
