package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-jumper/internal/games/island"
	"github.com/vovakirdan/island-jumper/internal/platform/tui"
	"github.com/vovakirdan/island-jumper/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: island).

Controls:
  A/D, Left/Right  - Aim, or steer the boat
  Space/W/Up       - Jump
  X                - Toggle shooting
  F                - Fire
  T                - Toggle autoplay
  R                - Restart (costs points mid-run in the economy variants)
  P                - Pause
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.island/screenshots

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  island play
  island play island_hardcore
  island play --difficulty hard --seed 42
  island play --config ./my-island.yaml --log-file island.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	variant := island.VariantEconomy
	if len(args) == 1 {
		variant = args[0]
	}

	logger, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'island list' to see available variants.")
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, runtimeConfig())
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
