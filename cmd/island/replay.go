package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-jumper/internal/core"
	"github.com/vovakirdan/island-jumper/internal/replay"
)

var flagReplayVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Summarize a recorded run",
	Long: `Print a summary of a recording made with 'island sim --record'.

With --verify the recorded inputs are replayed on a fresh session and every
tick is compared with the recording. Use the same --config and --difficulty
as the recording run.

Examples:
  island replay run.ijr
  island replay run.ijr --verify`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayVerify, "verify", false, "Replay the inputs and compare every tick")
}

func runReplay(_ *cobra.Command, args []string) {
	if _, err := newLogger(false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r, err := replay.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sum, err := replay.Summarize(r)
	r.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	h := sum.Header
	fmt.Printf("Recording %s\n\n", args[0])
	fmt.Printf("  Variant:    %s\n", h.Variant)
	fmt.Printf("  Seed:       %d\n", h.Seed)
	fmt.Printf("  Tick rate:  %d\n", h.TickRate)
	fmt.Printf("  Frames:     %d (last tick %d)\n", sum.Frames, sum.LastTick)
	fmt.Printf("  Score:      %d (best %d)\n", sum.FinalScore, sum.BestScore)
	fmt.Printf("  End state:  %s\n", sum.FinalState)
	fmt.Printf("  Tiles:      %d\n", sum.TilesLanded)
	fmt.Printf("  Boats:      %d\n", sum.BoatSegments)
	fmt.Printf("  Obstacles:  %d\n", sum.ObstaclesPassed)

	if !flagReplayVerify {
		return
	}

	n, err := verifyRecording(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nVerify failed after %d frames: %v\n", n, err)
		os.Exit(1)
	}
	fmt.Printf("\nVerified %d frames.\n", n)
}

func verifyRecording(path string) (int, error) {
	r, err := replay.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	h := r.Header()
	g, err := islandGame(h.Variant)
	if err != nil {
		return 0, err
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: h.TickRate, Seed: h.Seed})
	return replay.Verify(r, g.Session())
}
