package island

import (
	"math"

	"github.com/vovakirdan/island-jumper/internal/config"
	"github.com/vovakirdan/island-jumper/internal/core"
)

// Mode names with special generator behavior. Any other name only
// contributes its weight profile.
const (
	ModeSafe        = "safe"
	ModePowerUp     = "power_up"
	ModeFrenzy      = "frenzy"
	ModeBoat        = "boat"
	ModeProgressive = "progressive"
)

var fallbackMode = config.ModeConfig{Name: ModeSafe, Tiles: 1}

// ModeScheduler walks the mode table, one budgeted run of tiles at a time.
type ModeScheduler struct {
	table     []config.ModeConfig
	selection string
	index     int
	remaining int
}

// NewModeScheduler starts at the configured start mode.
func NewModeScheduler(cfg config.IslandModes) *ModeScheduler {
	m := &ModeScheduler{table: cfg.Table, selection: cfg.Selection}
	for i, row := range m.table {
		if row.Name == cfg.Start {
			m.index = i
			break
		}
	}
	m.remaining = max(1, m.Current().Tiles)
	return m
}

// Current returns the active mode. An empty table behaves as endless safe.
func (m *ModeScheduler) Current() config.ModeConfig {
	if len(m.table) == 0 {
		return fallbackMode
	}
	return m.table[m.index]
}

// Remaining returns how many tiles the active mode still owns.
func (m *ModeScheduler) Remaining() int {
	return m.remaining
}

// Take consumes one tile of budget, selecting a new mode first when the
// current one is exhausted. changed is true when the mode switched.
func (m *ModeScheduler) Take(rng *Rand) (mode config.ModeConfig, changed bool) {
	if m.remaining <= 0 && len(m.table) > 0 {
		prev := m.index
		if m.selection == config.SelectCycle {
			m.index = (m.index + 1) % len(m.table)
		} else {
			m.index = rng.IntRange(0, len(m.table)-1)
		}
		m.remaining = m.budget(rng)
		changed = m.index != prev
	}
	m.remaining--
	return m.Current(), changed
}

// budget returns the tile budget of the freshly selected mode. One-shot
// modes always get exactly one tile; random selection jitters the rest.
func (m *ModeScheduler) budget(rng *Rand) int {
	base := m.Current().Tiles
	if base <= 1 {
		return 1
	}
	if m.selection == config.SelectCycle {
		return base
	}
	return rng.IntRange(max(3, base-3), base+5)
}

// rampWeight evaluates a weight ramp at score. scale stretches the
// score-driven part only.
func rampWeight(w config.WeightRamp, score int, scale float64) float64 {
	v := w.Base + w.Slope*math.Max(0, float64(score-w.Threshold))*scale
	if w.Cap > 0 {
		v = math.Min(v, w.Cap)
	}
	return core.SanitizeWeight(v)
}
