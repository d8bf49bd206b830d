// Package island implements Island Jumper: the player aims and jumps between
// tiles drifting down a river, rides boat segments between the islands, and
// may shoot trees, coconuts and sharks along the way.
//
// Session holds the deterministic simulation. Game adapts it to the
// registry so the terminal platform can host it.
package island

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/island-jumper/internal/config"
	"github.com/vovakirdan/island-jumper/internal/core"
	"github.com/vovakirdan/island-jumper/internal/registry"
)

// Registered variant IDs.
const (
	VariantEconomy  = "island"
	VariantHardcore = "island_hardcore"
	VariantAutoplay = "island_autoplay"
)

// bannerTicks is how long a cue stays in the HUD.
const bannerTicks = 90

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes the logs of every game created afterwards to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game is the registry adapter around a Session.
type Game struct {
	id       string
	title    string
	policy   string
	autoplay bool

	session *Session
	runtime core.RuntimeConfig
	paused  bool

	banner     string
	bannerLeft int
}

// New creates the default variant: the score pays for mistakes.
func New() *Game {
	return &Game{id: VariantEconomy, title: "Island Jumper", policy: config.PenaltiesEconomy}
}

// NewHardcore creates the variant where any mistake ends the run.
func NewHardcore() *Game {
	return &Game{id: VariantHardcore, title: "Island Jumper (Hardcore)", policy: config.PenaltiesFatal}
}

// NewAutoplay creates the economy variant with the bot driving.
func NewAutoplay() *Game {
	return &Game{id: VariantAutoplay, title: "Island Jumper (Autoplay)", policy: config.PenaltiesEconomy, autoplay: true}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the config and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadIsland(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultIslandConfig()
	}
	if difficultyPreset != "" {
		config.ApplyIslandPreset(&cfg, difficultyPreset)
	}
	if runtime.TickRate > 0 {
		cfg.Physics.TickRate = runtime.TickRate
	}

	rules := DefaultRules(cfg)
	rules.Penalties = PolicyFor(g.policy)
	rules.Autoplay = g.autoplay

	g.session = NewSession(cfg, rules, WithLogger(logger.With("variant", g.id)))
	g.session.Reset(runtime.Seed)
	g.paused = false
	g.banner = ""
	g.bannerLeft = 0
}

// Session exposes the simulation, for the headless simulator and replays.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	if in.Has(core.ActionPause) && g.session.State() != StateGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	ev := g.session.Tick(g.runtime.StepDuration(), InputFromFrame(in))
	g.noteEvents(ev)
	return core.StepResult{State: g.State()}
}

// InputFromFrame maps platform actions to session input.
func InputFromFrame(in core.InputFrame) Input {
	var out Input
	if in.Has(core.ActionAimLeft) {
		out.Aim--
	}
	if in.Has(core.ActionAimRight) {
		out.Aim++
	}
	out.Jump = in.Has(core.ActionJump)
	out.Fire = in.Has(core.ActionFire)
	out.ToggleShooting = in.Has(core.ActionToggleShooting)
	out.ToggleAutoplay = in.Has(core.ActionToggleAutoplay)
	out.Restart = in.Has(core.ActionRestart)
	return out
}

// noteEvents keeps the most notable cue of a tick for the HUD banner.
func (g *Game) noteEvents(ev TickEvents) {
	if g.bannerLeft > 0 {
		g.bannerLeft--
	}
	for _, c := range ev.Cues {
		text := bannerText(c)
		if text == "" {
			continue
		}
		g.banner = text
		g.bannerLeft = bannerTicks
	}
}

func bannerText(c Cue) string {
	switch c.Kind {
	case CueTrapArmed:
		return "TRAP ARMED - MOVE!"
	case CueTrapFired:
		return "TRAP!"
	case CueFrenzyCollapse:
		return "THE ISLAND SANK"
	case CuePowerUp:
		return "BOOST!"
	case CueTreeShot, CueCoconutShot, CueCoconutCollected, CueSharkShot:
		return fmt.Sprintf("%s +%d", strings.ToUpper(strings.ReplaceAll(c.Kind.String(), "_", " ")), c.Value)
	case CueSharkBite:
		return fmt.Sprintf("SHARK BITE - %d lives left", c.Value)
	case CueObstacleHit:
		return "CRASH!"
	case CueBoatEntered:
		return "ALL ABOARD"
	case CueExitDock:
		return "EXIT DOCK AHEAD"
	case CueBoatExited:
		return "BACK ON LAND"
	case CuePenalty:
		return fmt.Sprintf("PENALTY -%d", c.Value)
	case CueModeChanged:
		return "NEW MODE"
	default:
		return ""
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Summary describes the current run for the run history.
func (g *Game) Summary() core.RunSummary {
	if g.session == nil {
		return core.RunSummary{}
	}
	st := g.session.Stats()
	return core.RunSummary{
		Seed:            g.session.Seed(),
		Ticks:           g.session.Ticks(),
		TilesLanded:     st.TilesLanded,
		BoatSegments:    st.BoatSegments,
		ObstaclesPassed: st.ObstaclesPassed,
		EndState:        g.session.State().String(),
	}
}

func init() {
	registry.Register(VariantEconomy, func() registry.Game {
		return New()
	})
	registry.Register(VariantHardcore, func() registry.Game {
		return NewHardcore()
	})
	registry.Register(VariantAutoplay, func() registry.Game {
		return NewAutoplay()
	})
}
