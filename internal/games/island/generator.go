package island

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/island-jumper/internal/config"
	"github.com/vovakirdan/island-jumper/internal/core"
)

// coconutEdgeMargin keeps floating coconuts off the banks.
const coconutEdgeMargin = 20

// clampToRiver keeps a footprint of edge size inside the banks.
func (s *Session) clampToRiver(x, size float64) float64 {
	limit := math.Max(0, s.cfg.River.HalfWidth-size/2)
	return core.ClampF(x, -limit, limit)
}

// nextTileSize applies the active power-up effects and ticks them down.
// Both effects are counted in generated tiles.
func (s *Session) nextTileSize() (size, speedScale float64) {
	size, speedScale = s.cfg.Tiles.Size, 1.0
	if s.player.Boost > 0 {
		size = s.cfg.PowerUps.BoostSize
		s.player.Boost--
	}
	if s.calm > 0 {
		size = s.cfg.Tiles.Size * s.cfg.PowerUps.CalmSizeScale
		speedScale = s.cfg.PowerUps.CalmSpeedScale
		s.calm--
	}
	return size, speedScale
}

// spawnTile generates the next tile after the last one in the window.
// It never fails: an empty window restarts the path under the player.
func (s *Session) spawnTile(ev *TickEvents) *Tile {
	prev := s.store.LastTile()
	if prev == nil {
		prev = s.pushStartTile(s.player.Pos.X(), s.player.Pos.Z())
	}

	size, speedScale := s.nextTileSize()
	z := prev.Pos.Z() - s.cfg.Jump.Distance

	if s.boatDockDue(prev) {
		return s.pushDock(prev.Pos.X(), z, size*s.cfg.Boat.DockScale)
	}

	mode, changed := s.modes.Take(s.rng)
	if changed {
		s.log.Debug("mode changed", "mode", mode.Name, "tiles", s.modes.Remaining()+1)
		ev.cue(CueModeChanged, prev.Pos, 0)
	}
	if mode.Name == ModeBoat && s.rules.Boat {
		return s.pushDock(prev.Pos.X(), z, size*s.cfg.Boat.DockScale)
	}

	idx := s.spawnIndex
	s.spawnIndex++
	s.tileCount++

	frenzy := mode.Name == ModeFrenzy && s.rules.Frenzy
	x := prev.Pos.X()
	if !frenzy && idx%2 == 1 {
		theta := mgl64.DegToRad(s.rng.Uniform(-s.cfg.Tiles.MaxSwingDeg, s.cfg.Tiles.MaxSwingDeg))
		x = prev.Pos.X() - s.cfg.Jump.Distance*math.Sin(theta)
	}
	x = s.clampToRiver(x, size)

	var kind TileKind
	switch {
	case frenzy:
		kind = KindSafe
	case mode.Name == ModePowerUp && s.rules.PowerUps:
		kind = KindPowerUp
		s.calm = s.cfg.PowerUps.Tiles
	default:
		kind = s.chooseKind(mode, prev)
	}

	t := newTile(s.nextID(), core.Vec(x, 0, z), size, kind)
	if frenzy {
		t.Frenzy = true
		t.Color = core.ColorYellow
	}
	if kind == KindMoving {
		base := s.cfg.Tiles.MovingBaseSpeed + float64(s.score)*s.cfg.Tiles.MovingScoreSpeed
		t.State = &MovingState{
			Dir:   s.rng.Sign(),
			Speed: s.diff.Speed(base, s.score, int(s.ticks)) * speedScale,
		}
	}
	s.store.PushTile(t)
	return t
}

// chooseKind runs the cascading weighted draw for one tile:
// trap, then moving, then coconut, else safe.
func (s *Session) chooseKind(mode config.ModeConfig, prev *Tile) TileKind {
	scale := s.diff.WeightScale(s.score, int(s.ticks))
	trap := rampWeight(mode.Trap, s.score, scale)
	moving := rampWeight(mode.Moving, s.score, scale)
	coconut := rampWeight(mode.Coconut, s.score, scale)

	r := s.rng.Float()
	switch {
	case r < trap && prev.Kind != KindTrap:
		return KindTrap
	case r < trap+moving:
		return KindMoving
	case r < trap+moving+coconut && !s.store.RecentKind(KindCoconut, s.cfg.Tiles.CoconutCooldown):
		return KindCoconut
	default:
		return KindSafe
	}
}

// boatDockDue checks the score milestones and the random dock chance.
func (s *Session) boatDockDue(prev *Tile) bool {
	if !s.rules.Boat {
		return false
	}
	for _, m := range s.cfg.Boat.Milestones {
		if s.score >= m && !s.milestones[m] {
			s.milestones[m] = true
			return true
		}
	}
	return s.tileCount > s.cfg.Boat.DockMinTiles &&
		prev.Kind != KindBoatDock &&
		s.rng.Chance(s.cfg.Boat.DockChance)
}

// pushDock places a boat dock. It keeps the previous lateral position so
// the dock is always one straight hop away.
func (s *Session) pushDock(x, z, size float64) *Tile {
	t := newTile(s.nextID(), core.Vec(s.clampToRiver(x, size), 0, z), size, KindBoatDock)
	s.store.PushTile(t)
	s.log.Debug("boat dock generated", "z", z)
	return t
}

// pushStartTile places a plain tile at the given spot.
func (s *Session) pushStartTile(x, z float64) *Tile {
	size := s.cfg.Tiles.Size
	t := newTile(s.nextID(), core.Vec(s.clampToRiver(x, size), 0, z), size, KindSafe)
	s.store.PushTile(t)
	return t
}

// spawnExitDock replaces the (empty) tile window with the dock that ends
// the boat segment.
func (s *Session) spawnExitDock(ev *TickEvents) {
	size := s.cfg.Tiles.Size * s.cfg.Boat.ExitScale
	x := s.clampToRiver(s.player.Pos.X(), size)
	t := newTile(s.nextID(), core.Vec(x, 0, s.player.Pos.Z()-s.cfg.Boat.ExitAhead), size, KindExitDock)
	s.store.ClearTiles()
	s.store.PushTile(t)
	ev.cue(CueExitDock, t.Pos, 0)
}

// spawnObstacle adds the next rock to the boat lane.
func (s *Session) spawnObstacle() {
	b := s.cfg.Boat
	anchor := core.Vec(s.player.Pos.X(), 0, s.player.Pos.Z()-b.FirstObstacle)
	spacing := 0.0
	if last := s.store.LastObstacle(); last != nil {
		anchor = last.Pos
		spacing = s.obstacleSpacing()
	}

	idx := s.boat.obstacleIndex
	s.boat.obstacleIndex++

	var x float64
	switch {
	case s.rng.Chance(b.AheadChance):
		x = s.player.Pos.X() + s.rng.Uniform(-b.AheadJitter, b.AheadJitter)
	case idx%2 == 0:
		x = anchor.X()
	default:
		x = anchor.X() + s.rng.Uniform(-b.ObstacleJitter, b.ObstacleJitter)
	}
	size := s.rng.Uniform(b.ObstacleMinSize, b.ObstacleMaxSize)
	limit := s.cfg.River.HalfWidth - math.Max(b.EdgeMargin, size/2)
	x = core.ClampF(x, -limit, limit)

	z := anchor.Z() - spacing
	s.store.Obstacles = append(s.store.Obstacles, &Obstacle{Pos: core.Vec(x, 0, z), Size: size})
}

// obstacleSpacing tightens with difficulty but never below two hulls.
func (s *Session) obstacleSpacing() float64 {
	b := s.cfg.Boat
	floor := 2*b.HalfLength + b.ObstacleMaxSize
	return s.diff.Spacing(b.ObstacleSpacing, floor, s.score, int(s.ticks))
}

// spawnBoatCoconut drops a floating coconut ahead of the boat.
func (s *Session) spawnBoatCoconut() {
	b := s.cfg.Boat
	limit := s.cfg.River.HalfWidth - coconutEdgeMargin
	c := &FloatingCoconut{
		Pos: core.Vec(
			s.rng.Uniform(-limit, limit),
			s.rng.Uniform(b.CoconutMinY, b.CoconutMaxY),
			s.player.Pos.Z()-s.rng.Uniform(b.CoconutMinAhead, b.CoconutMaxAhead),
		),
		Radius: b.CoconutRadius,
	}
	s.store.Coconuts = append(s.store.Coconuts, c)
	s.boat.coconutsSpawned++
}

// spawnShark releases a shark far ahead, swimming at water level.
func (s *Session) spawnShark() {
	sh := s.cfg.Sharks
	limit := s.cfg.River.HalfWidth - sh.EdgeMargin
	s.store.Sharks = append(s.store.Sharks, &Shark{
		Pos: core.Vec(
			s.rng.Uniform(-limit, limit),
			-s.cfg.Tiles.Height/2,
			s.player.Pos.Z()-s.rng.Uniform(sh.MinAhead, sh.MaxAhead),
		),
		Speed: s.rng.Uniform(sh.MinSpeed, sh.MaxSpeed),
	})
}

// spawnBoatHazards keeps the lane stocked: one obstacle per tick until the
// lookahead is filled, coconuts every few obstacles passed, sharks at random.
func (s *Session) spawnBoatHazards(dt float64) {
	b := s.cfg.Boat
	if !s.boat.exitSpawned {
		last := s.store.LastObstacle()
		if last == nil || last.Pos.Z() > s.player.Pos.Z()-b.FirstObstacle {
			s.spawnObstacle()
		}
	}

	if b.CoconutEvery > 0 && s.boat.coconutsSpawned < b.MaxCoconuts &&
		s.boat.passed >= b.CoconutEvery*(s.boat.coconutsSpawned+1) {
		s.spawnBoatCoconut()
	}

	if s.rules.Sharks && s.cfg.Sharks.Enabled && !s.boat.exitSpawned && s.rng.Chance(s.cfg.Sharks.SpawnRate*dt) {
		s.spawnShark()
	}
}

func (s *Session) nextID() int {
	s.tileSeq++
	return s.tileSeq
}
