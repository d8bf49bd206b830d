package config

import (
	_ "embed"
)

//go:embed defaults/island.yaml
var defaultIslandYAML []byte

// DefaultModeTable returns the built-in mode rotation.
func DefaultModeTable() []ModeConfig {
	return []ModeConfig{
		{Name: "safe", Tiles: 12},
		{Name: "power_up", Tiles: 1},
		{Name: "moving", Tiles: 8, Moving: WeightRamp{Base: 0.7}},
		{Name: "mixed", Tiles: 12, Moving: WeightRamp{Base: 0.4}},
		{Name: "frenzy", Tiles: 10},
		{Name: "trap", Tiles: 8, Trap: WeightRamp{Base: 0.4}},
		{Name: "coconut", Tiles: 10, Coconut: WeightRamp{Base: 0.5}},
		{Name: "chaos", Tiles: 15,
			Trap:    WeightRamp{Base: 0.2},
			Moving:  WeightRamp{Base: 0.2},
			Coconut: WeightRamp{Base: 0.2},
		},
		{Name: "boat", Tiles: 1},
		{Name: "progressive", Tiles: 20,
			Trap:    WeightRamp{Slope: 0.025, Threshold: 15, Cap: 0.3},
			Moving:  WeightRamp{Slope: 0.04, Threshold: 5, Cap: 0.4},
			Coconut: WeightRamp{Slope: 0.08, Threshold: 5, Cap: 0.25},
		},
	}
}

// DefaultIslandConfig returns the hard-coded Island Jumper configuration.
// It is the last fallback when neither a file nor the embedded YAML loads.
func DefaultIslandConfig() IslandConfig {
	return IslandConfig{
		Physics: IslandPhysics{
			TickRate:      60,
			MaxStep:       0.25,
			DrownSpeed:    20,
			DrownDuration: 2.0,
		},
		Jump: IslandJump{
			Distance:  150,
			Duration:  0.4,
			Height:    40,
			AimStep:   4,
			RangeMode: RangeToNextTile,
		},
		River: IslandRiver{
			HalfWidth: 200,
		},
		Tiles: IslandTiles{
			Size:             60,
			Height:           10,
			Window:           7,
			InitialTiles:     3,
			MaxSwingDeg:      40,
			MovingBaseSpeed:  10,
			MovingScoreSpeed: 0.75,
			CoconutCooldown:  4,
			CoconutBonus:     1,
			TreeShotBonus:    5,
			MatchTolerance:   0.1,
		},
		Trap: IslandTrap{
			FuseTime:   3.0,
			PulseSpeed: 8,
		},
		Frenzy: IslandFrenzy{
			Bonus:        5,
			CollapseTime: 2.0,
		},
		Boat: IslandBoat{
			ForwardSpeed:    300,
			StrafeSpeed:     300,
			StrafeHold:      0.15,
			HalfWidth:       25,
			HalfLength:      50,
			Lives:           3,
			PassBonus:       1,
			DockChance:      0.08,
			DockMinTiles:    10,
			DockScale:       1.5,
			ExitScale:       2.0,
			ExitAhead:       150,
			ExitMinObstacle: 15,
			ExitMaxObstacle: 25,
			Milestones:      []int{20, 60, 120},

			ObstacleSpacing: 350,
			FirstObstacle:   800,
			ObstacleJitter:  120,
			AheadChance:     0.4,
			AheadJitter:     30,
			EdgeMargin:      50,
			ObstacleMinSize: 40,
			ObstacleMaxSize: 60,
			BehindCutoff:    200,

			CoconutEvery:    2,
			MaxCoconuts:     10,
			CoconutBonus:    5,
			CoconutRadius:   5,
			CoconutMinAhead: 200,
			CoconutMaxAhead: 400,
			CoconutMinY:     30,
			CoconutMaxY:     40,
		},
		Shooting: IslandShooting{
			BulletSpeed:  4200,
			BulletRange:  420,
			BulletRadius: 1,
			MuzzleHeight: 35,
			TrunkOffset:  0.35,
			TrunkRadius:  20,
			TrunkHeight:  40,
		},
		Sharks: IslandSharks{
			Enabled:      true,
			SpawnRate:    0.2,
			MinAhead:     1500,
			MaxAhead:     2000,
			MinSpeed:     240,
			MaxSpeed:     420,
			HitRadius:    40,
			ShotRadius:   45,
			ShotBonus:    5,
			BehindCutoff: 300,
			EdgeMargin:   30,
		},
		PowerUps: IslandPowerUps{
			Tiles:          5,
			CalmSizeScale:  1.25,
			CalmSpeedScale: 0.2,
			BoostSize:      80,
			BoostDuration:  0.09,
		},
		Penalties: IslandPenalties{
			Policy:      PenaltiesEconomy,
			Water:       2,
			OutOfBounds: 5,
			Trap:        5,
			Obstacle:    3,
			Restart:     10,
		},
		Modes: IslandModes{
			Selection: SelectRandom,
			Start:     "safe",
			Table:     DefaultModeTable(),
		},
		Autoplay: IslandAutoplay{
			Gain:          0.15,
			FireThreshold: 1.0,
			DodgeLookout:  200,
			DodgeMargin:   40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				WeightMultiplier: 0.5,
				SpacingReduction: 100,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultIslandYAML
}
