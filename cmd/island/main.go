// island runs Island Jumper in the terminal.
//
// Usage:
//
//	island list               - List variants
//	island play [variant]     - Play a variant (default: island)
//	island menu               - Pick variants interactively
//	island sim                - Run autoplay sessions headless
//	island replay <file>      - Summarize or verify a recording
//	island scores [variant]   - Show recorded runs
//	island serve              - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Run store (default: ~/.island/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/island-jumper/internal/config"
	"github.com/vovakirdan/island-jumper/internal/core"
	"github.com/vovakirdan/island-jumper/internal/games/island"
	"github.com/vovakirdan/island-jumper/internal/platform/tui"
	"github.com/vovakirdan/island-jumper/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "island",
	Short: "Island Jumper - hop across a drifting river in your terminal",
	Long: `Island Jumper is a terminal game: aim, jump from tile to tile as they
drift down the river, ride the boat between islands, and shoot what gets in
the way.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  sim      - Run autoplay sessions without a terminal
  replay   - Summarize or verify a recorded run
  scores   - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  island play
  island play island_hardcore --difficulty hard
  island sim --runs 20 --save
  island serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.island/scores.db", "Path to the run store")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGlobalFlags validates the shared flags and hands them to the game
// package before any variant is created.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	island.SetConfigPath(flagConfig)
	island.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newLogger builds the process logger. Interactive commands own the terminal,
// so without --log-file their logs are dropped.
func newLogger(interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("--log-file: %w", err)
		}
		w = f
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "island",
		Level:           level,
	})
	island.SetLogger(logger)
	tui.SetLogger(logger)
	return logger, nil
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run store. Failures are reported and the caller goes
// on without run history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run store unavailable", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run store: %v\n", err)
		return nil
	}
	return store
}
