// Package config provides YAML-based game configuration loading and
// difficulty management for Island Jumper.
package config

import (
	"errors"
	"fmt"
)

// IslandConfig contains all tunables of the island jumping game.
type IslandConfig struct {
	Physics    IslandPhysics    `yaml:"physics"`
	Jump       IslandJump       `yaml:"jump"`
	River      IslandRiver      `yaml:"river"`
	Tiles      IslandTiles      `yaml:"tiles"`
	Trap       IslandTrap       `yaml:"trap"`
	Frenzy     IslandFrenzy     `yaml:"frenzy"`
	Boat       IslandBoat       `yaml:"boat"`
	Shooting   IslandShooting   `yaml:"shooting"`
	Sharks     IslandSharks     `yaml:"sharks"`
	PowerUps   IslandPowerUps   `yaml:"power_ups"`
	Penalties  IslandPenalties  `yaml:"penalties"`
	Modes      IslandModes      `yaml:"modes"`
	Autoplay   IslandAutoplay   `yaml:"autoplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// IslandPhysics defines the simulation clock and drowning kinematics.
type IslandPhysics struct {
	TickRate      int     `yaml:"tick_rate"`      // Host ticks per second
	MaxStep       float64 `yaml:"max_step"`       // Largest dt accepted by one tick, seconds
	DrownSpeed    float64 `yaml:"drown_speed"`    // Sink rate, units per second
	DrownDuration float64 `yaml:"drown_duration"` // Seconds spent sinking
}

// Jump range modes.
const (
	RangeFixed      = "fixed"
	RangeToNextTile = "to_next_tile"
)

// IslandJump defines the jump arc.
type IslandJump struct {
	Distance  float64 `yaml:"distance"`   // Tile spacing along the travel axis
	Duration  float64 `yaml:"duration"`   // Seconds in the air
	Height    float64 `yaml:"height"`     // Peak of the parabola
	AimStep   float64 `yaml:"aim_step"`   // Degrees per aim key event
	RangeMode string  `yaml:"range_mode"` // "fixed" or "to_next_tile"
}

// IslandRiver defines the playfield.
type IslandRiver struct {
	HalfWidth float64 `yaml:"half_width"`
}

// IslandTiles defines tile generation.
type IslandTiles struct {
	Size             float64 `yaml:"size"`
	Height           float64 `yaml:"height"`
	Window           int     `yaml:"window"`            // Max tiles kept alive
	InitialTiles     int     `yaml:"initial_tiles"`     // Tiles generated ahead of the start tile
	MaxSwingDeg      float64 `yaml:"max_swing_deg"`     // Lateral swing angle on odd spawns
	MovingBaseSpeed  float64 `yaml:"moving_base_speed"` // Units per second
	MovingScoreSpeed float64 `yaml:"moving_score_speed"`
	CoconutCooldown  int     `yaml:"coconut_cooldown"` // Recent tiles checked for a coconut
	CoconutBonus     int     `yaml:"coconut_bonus"`    // Extra landing score on a shot tree
	TreeShotBonus    int     `yaml:"tree_shot_bonus"`  // Score for shooting a tree
	MatchTolerance   float64 `yaml:"match_tolerance"`  // Player-on-tile lookup tolerance
}

// IslandTrap defines trap tiles.
type IslandTrap struct {
	FuseTime   float64 `yaml:"fuse_time"`
	PulseSpeed float64 `yaml:"pulse_speed"`
}

// IslandFrenzy defines the frenzy mode.
type IslandFrenzy struct {
	Bonus        int     `yaml:"bonus"`         // Score per frenzy landing
	CollapseTime float64 `yaml:"collapse_time"` // Seconds before a frenzy tile sinks
}

// IslandBoat defines the boat segment.
type IslandBoat struct {
	ForwardSpeed    float64 `yaml:"forward_speed"`
	StrafeSpeed     float64 `yaml:"strafe_speed"`
	StrafeHold      float64 `yaml:"strafe_hold"` // Seconds one strafe event keeps the boat moving
	HalfWidth       float64 `yaml:"half_width"`
	HalfLength      float64 `yaml:"half_length"`
	Lives           int     `yaml:"lives"`
	PassBonus       int     `yaml:"pass_bonus"` // Score per obstacle passed
	DockChance      float64 `yaml:"dock_chance"`
	DockMinTiles    int     `yaml:"dock_min_tiles"`
	DockScale       float64 `yaml:"dock_scale"`
	ExitScale       float64 `yaml:"exit_scale"`
	ExitAhead       float64 `yaml:"exit_ahead"`
	ExitMinObstacle int     `yaml:"exit_min_obstacles"`
	ExitMaxObstacle int     `yaml:"exit_max_obstacles"`
	Milestones      []int   `yaml:"milestones"` // Scores that force a boat dock, once each

	ObstacleSpacing float64 `yaml:"obstacle_spacing"`
	FirstObstacle   float64 `yaml:"first_obstacle"` // Anchor distance ahead of the player
	ObstacleJitter  float64 `yaml:"obstacle_jitter"`
	AheadChance     float64 `yaml:"ahead_chance"`
	AheadJitter     float64 `yaml:"ahead_jitter"`
	EdgeMargin      float64 `yaml:"edge_margin"`
	ObstacleMinSize float64 `yaml:"obstacle_min_size"`
	ObstacleMaxSize float64 `yaml:"obstacle_max_size"`
	BehindCutoff    float64 `yaml:"behind_cutoff"`

	CoconutEvery    int     `yaml:"coconut_every"` // Obstacles passed per floating coconut
	MaxCoconuts     int     `yaml:"max_coconuts"`
	CoconutBonus    int     `yaml:"coconut_bonus"`
	CoconutRadius   float64 `yaml:"coconut_radius"`
	CoconutMinAhead float64 `yaml:"coconut_min_ahead"`
	CoconutMaxAhead float64 `yaml:"coconut_max_ahead"`
	CoconutMinY     float64 `yaml:"coconut_min_y"`
	CoconutMaxY     float64 `yaml:"coconut_max_y"`
}

// IslandShooting defines bullets.
type IslandShooting struct {
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRange  float64 `yaml:"bullet_range"`
	BulletRadius float64 `yaml:"bullet_radius"`
	MuzzleHeight float64 `yaml:"muzzle_height"`
	TrunkOffset  float64 `yaml:"trunk_offset"` // Fraction of tile size
	TrunkRadius  float64 `yaml:"trunk_radius"`
	TrunkHeight  float64 `yaml:"trunk_height"` // Height band above the tile top
}

// IslandSharks defines the sharks that chase the boat.
type IslandSharks struct {
	Enabled      bool    `yaml:"enabled"`
	SpawnRate    float64 `yaml:"spawn_rate"` // Expected spawns per second
	MinAhead     float64 `yaml:"min_ahead"`
	MaxAhead     float64 `yaml:"max_ahead"`
	MinSpeed     float64 `yaml:"min_speed"` // Units per second towards the player
	MaxSpeed     float64 `yaml:"max_speed"`
	HitRadius    float64 `yaml:"hit_radius"`
	ShotRadius   float64 `yaml:"shot_radius"`
	ShotBonus    int     `yaml:"shot_bonus"`
	BehindCutoff float64 `yaml:"behind_cutoff"`
	EdgeMargin   float64 `yaml:"edge_margin"`
}

// IslandPowerUps defines the calm and boost effects.
type IslandPowerUps struct {
	Tiles          int     `yaml:"tiles"` // Generated tiles an effect lasts
	CalmSizeScale  float64 `yaml:"calm_size_scale"`
	CalmSpeedScale float64 `yaml:"calm_speed_scale"`
	BoostSize      float64 `yaml:"boost_size"`
	BoostDuration  float64 `yaml:"boost_duration"` // Jump duration while boosted
}

// Penalty policies.
const (
	PenaltiesFatal   = "fatal"
	PenaltiesEconomy = "economy"
)

// IslandPenalties defines the score economy.
type IslandPenalties struct {
	Policy      string `yaml:"policy"` // "fatal" or "economy"
	Water       int    `yaml:"water"`
	OutOfBounds int    `yaml:"out_of_bounds"`
	Trap        int    `yaml:"trap"`
	Obstacle    int    `yaml:"obstacle"`
	Restart     int    `yaml:"restart"`
}

// Mode selection strategies.
const (
	SelectCycle  = "cycle"
	SelectRandom = "random"
)

// IslandModes defines the game mode table.
type IslandModes struct {
	Selection string       `yaml:"selection"` // "cycle" or "random"
	Start     string       `yaml:"start"`
	Table     []ModeConfig `yaml:"table"`
}

// ModeConfig is one row of the mode table.
type ModeConfig struct {
	Name    string     `yaml:"name"`
	Tiles   int        `yaml:"tiles"` // Budget of generated tiles
	Trap    WeightRamp `yaml:"trap"`
	Moving  WeightRamp `yaml:"moving"`
	Coconut WeightRamp `yaml:"coconut"`
}

// WeightRamp is a probability that grows linearly with score past a threshold.
type WeightRamp struct {
	Base      float64 `yaml:"base"`
	Slope     float64 `yaml:"slope"`
	Threshold int     `yaml:"threshold"`
	Cap       float64 `yaml:"cap"` // 0 means uncapped
}

// IslandAutoplay defines the bot.
type IslandAutoplay struct {
	Gain          float64 `yaml:"gain"`           // Proportional aim gain per tick
	FireThreshold float64 `yaml:"fire_threshold"` // Degrees of error that trigger the jump
	DodgeLookout  float64 `yaml:"dodge_lookout"`  // Obstacles closer than this are dodged
	DodgeMargin   float64 `yaml:"dodge_margin"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to moving tile speed at max difficulty
	WeightMultiplier float64 `yaml:"weight_multiplier"` // Added to progressive weights at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Obstacle spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c IslandConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"physics.tick_rate", float64(c.Physics.TickRate)},
		{"physics.max_step", c.Physics.MaxStep},
		{"physics.drown_duration", c.Physics.DrownDuration},
		{"jump.distance", c.Jump.Distance},
		{"jump.duration", c.Jump.Duration},
		{"river.half_width", c.River.HalfWidth},
		{"tiles.size", c.Tiles.Size},
		{"tiles.window", float64(c.Tiles.Window)},
		{"trap.fuse_time", c.Trap.FuseTime},
		{"frenzy.collapse_time", c.Frenzy.CollapseTime},
		{"boat.forward_speed", c.Boat.ForwardSpeed},
		{"boat.obstacle_spacing", c.Boat.ObstacleSpacing},
		{"shooting.bullet_speed", c.Shooting.BulletSpeed},
		{"shooting.bullet_range", c.Shooting.BulletRange},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.v, ErrInvalidConfig)
		}
	}

	if c.Tiles.Size >= 2*c.River.HalfWidth {
		return fmt.Errorf("config: tiles.size %v does not fit the river: %w", c.Tiles.Size, ErrInvalidConfig)
	}
	if c.Tiles.InitialTiles >= c.Tiles.Window {
		return fmt.Errorf("config: tiles.initial_tiles must be below tiles.window: %w", ErrInvalidConfig)
	}
	if c.Boat.ExitMinObstacle > c.Boat.ExitMaxObstacle {
		return fmt.Errorf("config: boat.exit_min_obstacles exceeds exit_max_obstacles: %w", ErrInvalidConfig)
	}

	switch c.Jump.RangeMode {
	case RangeFixed, RangeToNextTile:
	default:
		return fmt.Errorf("config: jump.range_mode %q: %w", c.Jump.RangeMode, ErrInvalidConfig)
	}
	switch c.Penalties.Policy {
	case PenaltiesFatal, PenaltiesEconomy:
	default:
		return fmt.Errorf("config: penalties.policy %q: %w", c.Penalties.Policy, ErrInvalidConfig)
	}
	switch c.Modes.Selection {
	case SelectCycle, SelectRandom:
	default:
		return fmt.Errorf("config: modes.selection %q: %w", c.Modes.Selection, ErrInvalidConfig)
	}
	return nil
}
