package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-jumper/internal/registry"
	"github.com/vovakirdan/island-jumper/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded runs",
	Long: `Without a variant, show per-variant statistics. With a variant, list its
best runs (or the most recent ones with --recent).

Examples:
  island scores
  island scores island
  island scores island_hardcore --recent --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Newest runs first instead of best")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printStats(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	variant := args[0]
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'island list' to see available variants.")
		os.Exit(1)
	}
	if err := printRuns(store, variant); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

func printStats(store *storage.Store) error {
	stats, err := store.VariantStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %5s  %6s  %8s  %6s  %6s  %s\n", "Variant", "Runs", "Best", "Average", "Tiles", "Boats", "Last played")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-18s  %5d  %6d  %8.1f  %6d  %6d  %s\n",
			id, st.Runs, st.HighScore, st.AvgScore, st.MostTiles, st.BoatSegments,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRuns(store *storage.Store, variant string) error {
	var (
		runs []storage.Run
		err  error
	)
	if flagScoresRecent {
		runs, err = store.RecentRuns(variant, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(variant, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Runs - %s\n\n", variant)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'island play %s' to record the first one!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %6s  %5s  %5s  %-10s  %-16s  %s\n", "Rank", "Score", "Tiles", "Boats", "End", "Date", "Run")
	for i, r := range runs {
		fmt.Printf("  %-4d  %6d  %5d  %5d  %-10s  %-16s  %s\n",
			i+1, r.Score, r.TilesLanded, r.BoatSegments, r.EndState,
			r.CreatedAt.Format("2006-01-02 15:04"), r.ID)
	}

	if high, err := store.HighScore(variant); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}
