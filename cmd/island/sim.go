package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-jumper/internal/core"
	"github.com/vovakirdan/island-jumper/internal/games/island"
	"github.com/vovakirdan/island-jumper/internal/registry"
	"github.com/vovakirdan/island-jumper/internal/replay"
	"github.com/vovakirdan/island-jumper/internal/storage"
)

var (
	flagSimRuns     int
	flagSimVariant  string
	flagSimMaxTicks int
	flagSimSave     bool
	flagSimRecord   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autoplay sessions without a terminal",
	Long: `Run seeded sessions with the autoplay bot and print a summary.

Run i uses seed --seed + i (a zero --seed picks one from the clock). A
session ends at game over or after --max-ticks. The bot is switched on at
the first tick for variants that start without it.

Examples:
  island sim
  island sim --runs 50 --seed 1 --save
  island sim --variant island_hardcore --runs 5
  island sim --seed 7 --record run.ijr`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of sessions")
	simCmd.Flags().StringVar(&flagSimVariant, "variant", island.VariantAutoplay, "Variant to simulate")
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 60*60*5, "Tick limit per session")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save finished runs to the run store")
	simCmd.Flags().StringVar(&flagSimRecord, "record", "", "Record the first session to this replay file")
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !registry.Exists(flagSimVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagSimVariant)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimSave {
		if store = openStore(logger); store != nil {
			defer store.Close()
		}
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	fmt.Printf("  %-20s  %6s  %5s  %5s  %9s  %-10s  %7s\n", "Seed", "Score", "Tiles", "Boats", "Obstacles", "End", "Ticks")
	var total, best int
	for i := range flagSimRuns {
		seed := base + int64(i)
		record := ""
		if i == 0 {
			record = flagSimRecord
		}

		res, err := simulate(flagSimVariant, seed, flagSimMaxTicks, record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: seed %d: %v\n", seed, err)
			os.Exit(1)
		}
		logger.Debug("session simulated", "seed", seed, "score", res.Score, "end", res.EndState)

		fmt.Printf("  %-20d  %6d  %5d  %5d  %9d  %-10s  %7d\n",
			seed, res.Score, res.TilesLanded, res.BoatSegments, res.ObstaclesPassed, res.EndState, res.Ticks)
		total += res.Score
		best = max(best, res.Score)

		if store != nil {
			if _, err := store.SaveRun(res); err != nil {
				logger.Warn("run not saved", "seed", seed, "err", err)
			}
		}
	}

	if flagSimRuns > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", flagSimRuns, best, float64(total)/float64(flagSimRuns))
	}
	if flagSimRecord != "" {
		fmt.Printf("Recorded seed %d to %s\n", base, flagSimRecord)
	}
}

// simulate plays one session headless and returns it as a stored run.
func simulate(variant string, seed int64, maxTicks int, recordPath string) (storage.Run, error) {
	g, err := islandGame(variant)
	if err != nil {
		return storage.Run{}, err
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed}
	g.Reset(cfg)

	var rec *replay.Recorder
	if recordPath != "" {
		rec, err = replay.Create(recordPath, replay.Header{Variant: variant, Seed: seed, TickRate: cfg.TickRate})
		if err != nil {
			return storage.Run{}, err
		}
		defer rec.Close()
	}

	s := g.Session()
	for range maxTicks {
		frame := core.NewInputFrame()
		if !s.Autoplay() {
			frame.Set(core.ActionToggleAutoplay)
		}
		g.Step(frame)
		if rec != nil {
			f := replay.Frame{Tick: s.Ticks(), Input: island.InputFromFrame(frame), Snapshot: s.Snapshot()}
			if err := rec.Record(f); err != nil {
				return storage.Run{}, err
			}
		}
		if s.State() == island.StateGameOver {
			break
		}
	}
	if rec != nil {
		if err := rec.Close(); err != nil {
			return storage.Run{}, err
		}
	}

	sum := g.Summary()
	return storage.Run{
		Variant:         variant,
		Seed:            sum.Seed,
		Score:           s.Score(),
		TilesLanded:     sum.TilesLanded,
		BoatSegments:    sum.BoatSegments,
		ObstaclesPassed: sum.ObstaclesPassed,
		EndState:        sum.EndState,
		Ticks:           sum.Ticks,
	}, nil
}

// islandGame creates variant and checks it is an Island Jumper game.
func islandGame(variant string) (*island.Game, error) {
	game, err := registry.Create(variant)
	if err != nil {
		return nil, err
	}
	g, ok := game.(*island.Game)
	if !ok {
		return nil, fmt.Errorf("variant %q has no headless session", variant)
	}
	return g, nil
}
