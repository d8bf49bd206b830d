package island

import "github.com/vovakirdan/island-jumper/internal/config"

// PenaltyPolicy decides what a failure costs.
type PenaltyPolicy interface {
	// Name returns the config value selecting this policy.
	Name() string
	// Settle charges cost against score. It returns the new score and
	// whether the run survives.
	Settle(score, cost int) (int, bool)
	// RestartKeepsScore reports whether a mid-run restart keeps the
	// remaining score instead of starting over from zero.
	RestartKeepsScore() bool
}

// FatalPenalties ends the run on every failure.
type FatalPenalties struct{}

func (FatalPenalties) Name() string { return config.PenaltiesFatal }

func (FatalPenalties) Settle(score, _ int) (int, bool) { return score, false }

func (FatalPenalties) RestartKeepsScore() bool { return false }

// EconomyPenalties lets the score pay for mistakes while it can.
type EconomyPenalties struct{}

func (EconomyPenalties) Name() string { return config.PenaltiesEconomy }

func (EconomyPenalties) Settle(score, cost int) (int, bool) {
	if cost < 0 {
		cost = 0
	}
	if score < cost {
		return score, false
	}
	return score - cost, true
}

func (EconomyPenalties) RestartKeepsScore() bool { return true }

// PolicyFor maps a config value to a policy. Unknown names are fatal.
func PolicyFor(name string) PenaltyPolicy {
	if name == config.PenaltiesEconomy {
		return EconomyPenalties{}
	}
	return FatalPenalties{}
}

// Rules bundles the penalty policy with the optional feature modules.
type Rules struct {
	Penalties PenaltyPolicy
	Shooting  bool // Shooting toggle is available
	Sharks    bool // Sharks chase the boat
	PowerUps  bool // power_up mode emits power-up tiles
	Frenzy    bool // frenzy mode emits collapsing tiles
	Boat      bool // Boat docks and the boat segment
	Autoplay  bool // Bot engaged from the start of every run
}

// DefaultRules enables every feature with the policy named in cfg.
func DefaultRules(cfg config.IslandConfig) Rules {
	return Rules{
		Penalties: PolicyFor(cfg.Penalties.Policy),
		Shooting:  true,
		Sharks:    cfg.Sharks.Enabled,
		PowerUps:  true,
		Frenzy:    true,
		Boat:      true,
	}
}

func (r Rules) policy() PenaltyPolicy {
	if r.Penalties == nil {
		return FatalPenalties{}
	}
	return r.Penalties
}
