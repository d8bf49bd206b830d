package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/island-jumper/internal/core"
	"github.com/vovakirdan/island-jumper/internal/registry"
	"github.com/vovakirdan/island-jumper/internal/storage"
)

var logger = log.New(io.Discard)

// SetLogger routes platform logs to l. The alt screen owns stdout, so l
// should write to a file or stderr of a detached process.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Model runs one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     GameKeyMap
	input    core.InputFrame
	state    core.GameState
	embedded bool // Inside a session: Back returns to the menu
	quitting bool
	back     bool
	saved    bool // Run recorded for the current game over
}

// NewModel creates a model for game. A zero seed is replaced by the clock.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		input:  core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	logger.Info("run started", "variant", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The renderer adapts to any size, so the run keeps going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.embedded && (m.state.GameOver || m.state.Paused) {
			m.back = true
		}
	default:
		m.input.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.back || m.quitting {
		return m, nil
	}
	m.state = m.game.Step(m.input).State
	m.input.Clear()

	switch {
	case m.state.GameOver && !m.saved:
		m.recordRun()
		m.saved = true
	case !m.state.GameOver:
		m.saved = false
	}
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run. Storage failures never stop the game.
func (m Model) recordRun() {
	logger.Info("run over", "variant", m.game.ID(), "score", m.state.Score)
	if m.store == nil {
		return
	}
	sm, ok := m.game.(registry.Summarizer)
	if !ok {
		if _, err := m.store.SaveScore(m.game.ID(), m.state.Score); err != nil {
			logger.Warn("score not saved", "err", err)
		}
		return
	}
	id, err := m.store.SaveRun(runRecord(m.game.ID(), m.state.Score, sm.Summary()))
	if err != nil {
		logger.Warn("run not saved", "err", err)
		return
	}
	logger.Debug("run saved", "run_id", id)
}

// runRecord builds the storage row for a finished run.
func runRecord(variant string, score int, sum core.RunSummary) storage.Run {
	return storage.Run{
		Variant:         variant,
		Seed:            sum.Seed,
		Score:           score,
		TilesLanded:     sum.TilesLanded,
		BoatSegments:    sum.BoatSegments,
		ObstaclesPassed: sum.ObstaclesPassed,
		EndState:        sum.EndState,
		Ticks:           sum.Ticks,
	}
}

func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".island", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("screenshot not written", "err", err)
	}
}

// View renders the game.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked for the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run plays game full screen until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
