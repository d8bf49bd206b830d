package island

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/island-jumper/internal/config"
	"github.com/vovakirdan/island-jumper/internal/core"
)

// bulletSweepStep bounds the distance between two bullet hit samples so fast
// bullets cannot tunnel through a trunk.
const bulletSweepStep = 5.0

// Input is the player intent for one tick.
type Input struct {
	Aim            int // -1 left, +1 right; strafes in the boat
	Jump           bool
	Fire           bool
	ToggleShooting bool
	ToggleAutoplay bool
	Restart        bool
}

// Stats counts the milestones of the current run.
type Stats struct {
	TilesLanded     int
	BoatSegments    int
	ObstaclesPassed int
}

// boatSegment is the bookkeeping of one boat ride.
type boatSegment struct {
	exitTarget      int
	passed          int
	coconutsSpawned int
	obstacleIndex   int
	exitSpawned     bool
}

// Session is the whole game state. It is advanced only by Tick and is not
// safe for concurrent use.
type Session struct {
	cfg   config.IslandConfig
	rules Rules
	log   *log.Logger
	diff  *config.DifficultyManager

	rng   *Rand
	seed  int64
	clock float64
	ticks uint64

	player Player
	store  *EntityStore
	modes  *ModeScheduler
	score  int
	stats  Stats

	autoplay   bool
	spawnIndex int
	tileCount  int
	tileSeq    int
	calm       int
	milestones map[int]bool
	lastSafe   *Tile

	frenzyAt    float64
	frenzyArmed bool

	strafeDir  float64
	strafeHold float64

	boat boatSegment
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession creates a session and resets it with seed 0.
func NewSession(cfg config.IslandConfig, rules Rules, opts ...Option) *Session {
	s := &Session{
		cfg:   cfg,
		rules: rules,
		log:   log.New(io.Discard),
		diff:  config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(0)
	return s
}

// Reset starts a new run. The same seed and the same inputs always produce
// the same run.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.rng = NewRand(seed)
	s.clock = 0
	s.ticks = 0
	s.score = 0
	s.stats = Stats{}
	s.tileSeq = 0
	s.autoplay = s.rules.Autoplay
	s.milestones = make(map[int]bool)
	s.player = Player{}
	s.resetWorld()
	s.log.Debug("session reset", "seed", seed)
}

// resetWorld rebuilds the river around a fresh start tile. Score, stats and
// used milestones survive.
func (s *Session) resetWorld() {
	if s.store == nil {
		s.store = NewEntityStore(s.cfg.Tiles.Window)
	}
	s.store.Reset()
	s.modes = NewModeScheduler(s.cfg.Modes)
	s.spawnIndex = 0
	s.tileCount = 0
	s.calm = 0
	s.frenzyAt = 0
	s.frenzyArmed = false
	s.strafeDir = 0
	s.strafeHold = 0
	s.boat = boatSegment{}

	s.player = Player{State: StateAiming, Shooting: s.player.Shooting}
	start := s.pushStartTile(0, 0)
	s.player.placeOn(start, s.standY())
	s.lastSafe = start
	s.spawnAhead(nil)
}

func (s *Session) spawnAhead(ev *TickEvents) {
	for i := 0; i < s.cfg.Tiles.InitialTiles; i++ {
		s.spawnTile(ev)
	}
}

func (s *Session) standY() float64 {
	return s.cfg.Tiles.Height / 2
}

// Tick advances the simulation by dt seconds. A non-positive or NaN dt is
// ignored; a long one is capped.
func (s *Session) Tick(dt float64, in Input) TickEvents {
	var ev TickEvents
	if !(dt > 0) {
		return ev
	}
	dt = math.Min(dt, s.cfg.Physics.MaxStep)
	startScore, startState := s.score, s.player.State

	s.applyToggles(in)
	if in.Restart {
		s.restart(&ev)
	} else if s.player.State != StateGameOver {
		s.clock += dt
		s.ticks++
		s.step(dt, in, &ev)
	}

	ev.ScoreDelta = s.score - startScore
	if s.player.State != startState {
		ev.Transition = &Transition{From: startState, To: s.player.State}
		s.log.Debug("state", "from", startState, "to", s.player.State, "score", s.score)
	}
	return ev
}

func (s *Session) step(dt float64, in Input, ev *TickEvents) {
	if s.autoplay {
		s.autoplayStep()
	} else {
		s.applyInput(in, ev)
	}

	for _, b := range s.store.Bullets {
		b.advance(dt)
	}
	s.updateTraps(ev)
	s.checkFrenzy(ev)

	switch s.player.State {
	case StateJumping:
		s.player.advanceJump(dt, s.cfg.Jump.Height)
	case StateLanded:
		s.resolveLanding(ev)
	case StateDrowning:
		if s.player.advanceDrown(dt, s.cfg.Physics.DrownSpeed, s.cfg.Physics.DrownDuration) {
			if s.player.Respawn {
				s.respawn(ev)
			} else {
				s.gameOver("drowned")
			}
		}
	case StateBoat:
		s.advanceBoat(dt)
	}

	s.resolveProjectiles(ev)

	if s.player.State == StateBoat {
		s.resolveBoat(ev)
	} else {
		s.moveTiles(dt)
	}
	if s.player.State == StateBoat {
		s.spawnBoatHazards(dt)
		s.moveSharks(dt, ev)
	}

	s.store.Compact(s.player.Pos.Z(), s.cfg.Boat.BehindCutoff, s.cfg.Sharks.BehindCutoff, s.cfg.Shooting.BulletRange)
}

func (s *Session) applyToggles(in Input) {
	if in.ToggleAutoplay {
		s.autoplay = !s.autoplay
		s.player.Shooting = false
		s.log.Info("autoplay", "on", s.autoplay)
	}
	if in.ToggleShooting && s.rules.Shooting &&
		(s.player.State == StateAiming || s.player.State == StateBoat) {
		s.player.Shooting = !s.player.Shooting
	}
}

func (s *Session) applyInput(in Input, ev *TickEvents) {
	switch s.player.State {
	case StateAiming:
		if in.Aim != 0 {
			s.player.turn(-float64(in.Aim) * s.cfg.Jump.AimStep)
		}
		if in.Fire && s.player.Shooting {
			s.fire(ev)
		}
		if in.Jump {
			s.jump()
		}
	case StateBoat:
		if in.Aim != 0 {
			s.strafeDir = float64(in.Aim)
			s.strafeHold = s.cfg.Boat.StrafeHold
		}
		if in.Fire && s.player.Shooting {
			s.fire(ev)
		}
	}
}

// currentTileIndex finds the tile the player stands on, by center first and
// by footprint second.
func (s *Session) currentTileIndex() int {
	if i := s.store.TileIndexAt(s.player.Pos, s.cfg.Tiles.MatchTolerance); i >= 0 {
		return i
	}
	return s.store.LandingIndex(s.player.Pos)
}

// nextTile returns the tile after the one under the player, or nil.
func (s *Session) nextTile() *Tile {
	i := s.currentTileIndex()
	if i < 0 || i+1 >= len(s.store.Tiles) {
		return nil
	}
	return s.store.Tiles[i+1]
}

func (s *Session) jumpRange() float64 {
	if s.cfg.Jump.RangeMode == config.RangeToNextTile {
		if next := s.nextTile(); next != nil {
			return core.HorizontalDist(s.player.Pos, next.Pos)
		}
	}
	return s.cfg.Jump.Distance
}

func (s *Session) jumpDuration() float64 {
	if s.player.Boost > 0 {
		return s.cfg.PowerUps.BoostDuration
	}
	return s.cfg.Jump.Duration
}

func (s *Session) jump() {
	to := s.player.Pos.Add(core.Heading(s.player.Aim).Mul(s.jumpRange()))
	s.player.startJump(to, s.jumpDuration())
}

func (s *Session) fire(ev *TickEvents) {
	sh := s.cfg.Shooting
	dir := core.Heading(s.player.Aim)
	if s.player.State == StateBoat {
		dir = core.Heading(0)
	}
	start := s.player.Pos.Add(core.Vec(0, sh.MuzzleHeight, 0))
	s.store.Bullets = append(s.store.Bullets, &Bullet{
		Pos:    start,
		Start:  start,
		Dir:    dir,
		Speed:  sh.BulletSpeed,
		Radius: sh.BulletRadius,
		prev:   start,
	})
	ev.cue(CueShot, start, 0)
}

// charge settles a penalty under the active policy. It reports whether the
// run survives.
func (s *Session) charge(cost int, reason string, ev *TickEvents) bool {
	score, ok := s.rules.policy().Settle(s.score, cost)
	if !ok {
		return false
	}
	s.score = score
	ev.cue(CuePenalty, s.player.Pos, cost)
	s.log.Info("penalty", "reason", reason, "cost", cost, "score", s.score)
	return true
}

func (s *Session) gameOver(reason string) {
	s.player.State = StateGameOver
	s.strafeDir = 0
	s.strafeHold = 0
	s.log.Info("game over", "reason", reason, "score", s.score, "seed", s.seed)
}

// fall handles a landing over open water or past the banks.
func (s *Session) fall(ev *TickEvents) {
	ev.cue(CueSplash, s.player.Pos, 0)
	inRiver := math.Abs(s.player.Pos.X()) < s.cfg.River.HalfWidth
	cost, reason := s.cfg.Penalties.Water, "water"
	if !inRiver {
		cost, reason = s.cfg.Penalties.OutOfBounds, "out of bounds"
	}

	switch {
	case s.charge(cost, reason, ev):
		s.player.startDrowning(true)
	case inRiver:
		s.player.startDrowning(false)
	default:
		s.gameOver(reason)
	}
}

// respawnable reports whether a failure may put the player back on t.
func respawnable(t *Tile) bool {
	switch t.Kind {
	case KindTrap, KindBoatDock, KindExitDock:
		return false
	}
	return true
}

// respawnTile picks where a funded failure puts the player back.
func (s *Session) respawnTile() *Tile {
	if s.store.Contains(s.lastSafe) {
		return s.lastSafe
	}
	for _, t := range s.store.Tiles {
		if respawnable(t) {
			return t
		}
	}
	if len(s.store.Tiles) > 0 {
		return s.store.Tiles[0]
	}
	return s.pushStartTile(s.player.Pos.X(), s.player.Pos.Z())
}

func (s *Session) respawn(ev *TickEvents) {
	t := s.respawnTile()
	if t.Kind == KindMoving {
		t.makeSafe()
	}
	s.player.placeOn(t, s.standY())
	s.player.State = StateAiming
	s.player.Aim = 0
	s.player.Facing = 0
	s.frenzyArmed = false
	s.lastSafe = t
	if t == s.store.LastTile() {
		s.spawnAhead(ev)
	}
	ev.cue(CueRespawn, t.Pos, 0)
}

func (s *Session) restart(ev *TickEvents) {
	ev.cue(CueRestart, s.player.Pos, 0)
	if s.player.State == StateGameOver || !s.rules.policy().RestartKeepsScore() {
		s.Reset(s.rng.Int63())
		return
	}
	if !s.charge(s.cfg.Penalties.Restart, "restart", ev) {
		s.gameOver("restart unpaid")
		return
	}
	s.resetWorld()
}

// updateTraps pulses armed traps and fires the one under the player once
// its fuse has burnt.
func (s *Session) updateTraps(ev *TickEvents) {
	if s.player.State == StateBoat || s.player.State == StateGameOver {
		return
	}
	for _, t := range s.store.Tiles {
		tr := t.Trap()
		if tr == nil || !tr.Armed {
			continue
		}
		elapsed := s.clock - tr.ArmedAt
		tr.Pulse = 0.5 + 0.5*math.Sin(elapsed*s.cfg.Trap.PulseSpeed)
		if elapsed > s.cfg.Trap.FuseTime && s.player.State == StateAiming &&
			FootprintOverlap(s.player.Pos, t.Pos, t.Size) {
			s.fireTrap(t, ev)
			return
		}
	}
}

func (s *Session) fireTrap(t *Tile, ev *TickEvents) {
	ev.cue(CueTrapFired, t.Pos, 0)
	if !s.charge(s.cfg.Penalties.Trap, "trap", ev) {
		s.gameOver("trap")
		return
	}
	t.makeSafe()
	s.respawn(ev)
}

func (s *Session) checkFrenzy(ev *TickEvents) {
	if !s.frenzyArmed || s.player.State != StateAiming {
		return
	}
	if s.clock-s.frenzyAt <= s.cfg.Frenzy.CollapseTime {
		return
	}
	s.frenzyArmed = false
	ev.cue(CueFrenzyCollapse, s.player.Pos, 0)
	s.sinkTile(s.lastSafe, ev)
	s.fall(ev)
}

// sinkTile takes a collapsed tile out of the river and moves the respawn
// point to the next tile the player could stand on, generating one if the
// window runs out.
func (s *Session) sinkTile(t *Tile, ev *TickEvents) {
	if !s.store.Contains(t) {
		return
	}
	next := s.tileAfter(t)
	for i := 0; next == nil && i < s.cfg.Tiles.InitialTiles; i++ {
		if spawned := s.spawnTile(ev); respawnable(spawned) {
			next = spawned
		}
	}
	s.store.RemoveTile(t)
	s.lastSafe = next
	s.log.Debug("tile sank", "tile", t.ID)
}

// tileAfter returns the first respawnable tile generated after t, or nil.
func (s *Session) tileAfter(t *Tile) *Tile {
	seen := false
	for _, tile := range s.store.Tiles {
		if seen && respawnable(tile) {
			return tile
		}
		seen = seen || tile == t
	}
	return nil
}

// FrenzyLeft returns the seconds before the current frenzy tile sinks, or 0.
func (s *Session) FrenzyLeft() float64 {
	if !s.frenzyArmed {
		return 0
	}
	return math.Max(0, s.cfg.Frenzy.CollapseTime-(s.clock-s.frenzyAt))
}

func (s *Session) resolveLanding(ev *TickEvents) {
	idx := s.store.LandingIndex(s.player.Pos)
	if idx < 0 {
		s.fall(ev)
		return
	}
	t := s.store.Tiles[idx]
	s.player.placeOn(t, s.standY())
	s.player.State = StateAiming
	ev.cue(CueLanded, t.Pos, 0)

	switch t.Kind {
	case KindBoatDock:
		s.enterBoat(ev)
		return
	case KindExitDock:
		s.lastSafe = t
		s.spawnAhead(ev)
		return
	case KindMoving:
		t.makeSafe()
	case KindTrap:
		if tr := t.Trap(); !tr.Armed {
			tr.Armed = true
			tr.ArmedAt = s.clock
			ev.cue(CueTrapArmed, t.Pos, 0)
			s.log.Debug("trap armed", "tile", t.ID)
		}
		// Traps do not extend the path, but the path must not run dry.
		if s.store.LastTile() == t {
			s.spawnTile(ev)
		}
		return
	case KindPowerUp:
		if pu := t.PowerUp(); !pu.Consumed {
			pu.Consumed = true
			s.player.Boost = s.cfg.PowerUps.Tiles
			ev.cue(CuePowerUp, t.Pos, 0)
		}
	}

	gain := 1
	if t.Frenzy {
		gain = s.cfg.Frenzy.Bonus
		s.frenzyAt = s.clock
		s.frenzyArmed = true
		s.player.Aim = 0
		s.player.Facing = 0
	} else {
		s.frenzyArmed = false
	}
	if c := t.Coconut(); c != nil && c.TreeShot {
		gain += s.cfg.Tiles.CoconutBonus
	}
	s.score += gain
	s.lastSafe = t
	s.stats.TilesLanded++
	s.spawnTile(ev)
}

func (s *Session) moveTiles(dt float64) {
	for _, t := range s.store.Tiles {
		m := t.Moving()
		if m == nil {
			continue
		}
		t.Pos[0], m.Dir = Bounce(t.Pos.X(), m.Dir, m.Speed, t.Half(), s.cfg.River.HalfWidth, dt)
	}
}

// resolveProjectiles lets every bullet hit at most one target. Trunks are
// checked before floating coconuts, floating coconuts before sharks.
func (s *Session) resolveProjectiles(ev *TickEvents) {
	for i := 0; i < len(s.store.Bullets); {
		b := s.store.Bullets[i]
		if b.sweep(bulletSweepStep, func(p mgl64.Vec3) bool { return s.bulletHit(b, p, ev) }) {
			s.store.Bullets = removeAt(s.store.Bullets, i)
			continue
		}
		i++
	}
}

func (s *Session) bulletHit(b *Bullet, p mgl64.Vec3, ev *TickEvents) bool {
	sh := s.cfg.Shooting
	for _, t := range s.store.Tiles {
		c := t.Coconut()
		if c == nil || c.TreeShot {
			continue
		}
		yMin := t.Pos.Y() + s.cfg.Tiles.Height/2
		if CylinderBandOverlap(p, t.TrunkPos(sh.TrunkOffset), sh.TrunkRadius, yMin, yMin+sh.TrunkHeight) {
			c.TreeShot = true
			s.score += s.cfg.Tiles.TreeShotBonus
			ev.cue(CueTreeShot, t.Pos, s.cfg.Tiles.TreeShotBonus)
			return true
		}
	}
	for _, c := range s.store.Coconuts {
		if !c.Collected && SphereOverlap(p, b.Radius, c.Pos, c.Radius) {
			c.Collected = true
			s.score += s.cfg.Boat.CoconutBonus
			ev.cue(CueCoconutShot, c.Pos, s.cfg.Boat.CoconutBonus)
			return true
		}
	}
	for _, shark := range s.store.Sharks {
		if !shark.Defeated && SphereOverlap(p, b.Radius, shark.Pos, s.cfg.Sharks.ShotRadius) {
			shark.Defeated = true
			s.score += s.cfg.Sharks.ShotBonus
			ev.cue(CueSharkShot, shark.Pos, s.cfg.Sharks.ShotBonus)
			return true
		}
	}
	return false
}
