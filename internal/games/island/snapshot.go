package island

import "github.com/go-gl/mathgl/mgl64"

// Stage names shown in the HUD.
const (
	StageIslands = "Island Jumping"
	StageFrenzy  = "Frenzy Mode"
	StageBoat    = "Boat Segment"
)

// PlayerView is the read-only view of the player.
type PlayerView struct {
	Pos          mgl64.Vec3
	Facing       float64
	Aim          float64
	State        string
	JumpProgress float64
	Lives        int
	Boost        int
}

// TileView is a tile with its kind payload flattened out.
type TileView struct {
	ID       int
	Pos      mgl64.Vec3
	Size     float64
	Kind     string
	Color    int
	Frenzy   bool
	Armed    bool    `msgpack:",omitempty"`
	Pulse    float64 `msgpack:",omitempty"`
	TreeShot bool    `msgpack:",omitempty"`
	Consumed bool    `msgpack:",omitempty"`
	MoveDir  float64 `msgpack:",omitempty"`
}

// ObstacleView is a rock in the boat lane.
type ObstacleView struct {
	Pos    mgl64.Vec3
	Size   float64
	Passed bool
}

// HazardView is a shark, a floating coconut or a bullet.
type HazardView struct {
	Pos    mgl64.Vec3
	Radius float64
}

// Snapshot is a deep copy of everything a renderer or a replay needs.
type Snapshot struct {
	Tick          uint64
	Clock         float64
	Seed          int64
	Score         int
	State         string
	Stage         string
	Mode          string
	ModeTilesLeft int
	Player        PlayerView
	Autoplay      bool
	Shooting      bool
	FrenzyLeft    float64
	Calm          int
	ExitIn        int // Obstacles to pass before the exit dock, boat only
	RiverHalf     float64

	Tiles     []TileView
	Obstacles []ObstacleView
	Sharks    []HazardView
	Coconuts  []HazardView
	Bullets   []HazardView
	Stats     Stats
}

// Snapshot returns the current state. Nothing in it aliases the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.ticks,
		Clock:         s.clock,
		Seed:          s.seed,
		Score:         s.score,
		State:         s.player.State.String(),
		Stage:         s.Stage(),
		Mode:          s.modes.Current().Name,
		ModeTilesLeft: s.modes.Remaining(),
		Player: PlayerView{
			Pos:          s.player.Pos,
			Facing:       s.player.Facing,
			Aim:          s.player.Aim,
			State:        s.player.State.String(),
			JumpProgress: s.player.JumpProgress(),
			Lives:        s.player.Lives,
			Boost:        s.player.Boost,
		},
		Autoplay:   s.autoplay,
		Shooting:   s.player.Shooting,
		FrenzyLeft: s.FrenzyLeft(),
		Calm:       s.calm,
		RiverHalf:  s.cfg.River.HalfWidth,
		Stats:      s.stats,
	}
	if s.player.State != StateJumping {
		snap.Player.JumpProgress = 0
	}
	if s.player.State == StateBoat {
		snap.ExitIn = max(0, s.boat.exitTarget-s.boat.passed)
	}

	snap.Tiles = make([]TileView, 0, len(s.store.Tiles))
	for _, t := range s.store.Tiles {
		snap.Tiles = append(snap.Tiles, tileView(t))
	}
	snap.Obstacles = make([]ObstacleView, 0, len(s.store.Obstacles))
	for _, o := range s.store.Obstacles {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{Pos: o.Pos, Size: o.Size, Passed: o.Passed})
	}
	for _, sh := range s.store.Sharks {
		if !sh.Defeated {
			snap.Sharks = append(snap.Sharks, HazardView{Pos: sh.Pos, Radius: s.cfg.Sharks.HitRadius})
		}
	}
	for _, c := range s.store.Coconuts {
		if !c.Collected {
			snap.Coconuts = append(snap.Coconuts, HazardView{Pos: c.Pos, Radius: c.Radius})
		}
	}
	for _, b := range s.store.Bullets {
		snap.Bullets = append(snap.Bullets, HazardView{Pos: b.Pos, Radius: b.Radius})
	}
	return snap
}

func tileView(t *Tile) TileView {
	v := TileView{
		ID:     t.ID,
		Pos:    t.Pos,
		Size:   t.Size,
		Kind:   t.Kind.String(),
		Color:  int(t.Color),
		Frenzy: t.Frenzy,
	}
	switch st := t.State.(type) {
	case *TrapState:
		v.Armed = st.Armed
		v.Pulse = st.Pulse
	case *CoconutState:
		v.TreeShot = st.TreeShot
	case *PowerUpState:
		v.Consumed = st.Consumed
	case *MovingState:
		v.MoveDir = st.Dir
	}
	return v
}

// Stage names the part of the run the player is in.
func (s *Session) Stage() string {
	switch {
	case s.player.State == StateBoat:
		return StageBoat
	case s.modes.Current().Name == ModeFrenzy:
		return StageFrenzy
	default:
		return StageIslands
	}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// State returns the player motion state.
func (s *Session) State() MotionState { return s.player.State }

// Autoplay reports whether the bot is driving.
func (s *Session) Autoplay() bool { return s.autoplay }

// Stats returns the run counters.
func (s *Session) Stats() Stats { return s.stats }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.seed }

// Ticks returns how many ticks the current run has simulated.
func (s *Session) Ticks() uint64 { return s.ticks }

// Rules returns the rule set the session was built with.
func (s *Session) Rules() Rules { return s.rules }
