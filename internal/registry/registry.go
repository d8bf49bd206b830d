// Package registry maps variant IDs to game factories. Variants register
// themselves in init(), so hosts only need a blank import of the game
// package to discover them.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/island-jumper/internal/core"
)

// ErrUnknownVariant is returned by Create for an ID nobody registered.
var ErrUnknownVariant = errors.New("unknown variant")

// Game is what a host drives. Implementations hold no terminal state: the
// platform maps keys to actions, owns the clock and paints the screen.
type Game interface {
	// ID is the variant identifier used on the command line and in storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Summarizer is implemented by games that can describe a finished run for
// the run history.
type Summarizer interface {
	Summary() core.RunSummary
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Create instantiates the variant id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", id, ErrUnknownVariant)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
