package island

// enterBoat swaps the tile path for the boat lane.
func (s *Session) enterBoat(ev *TickEvents) {
	b := s.cfg.Boat
	s.player.State = StateBoat
	s.player.Pos[1] = 0
	s.player.Aim = 0
	s.player.Facing = 0
	s.player.Lives = b.Lives
	s.store.ClearTiles()
	s.store.ClearLane()
	s.boat = boatSegment{exitTarget: s.rng.IntRange(b.ExitMinObstacle, b.ExitMaxObstacle)}
	s.frenzyArmed = false
	s.lastSafe = nil
	s.stats.BoatSegments++
	ev.cue(CueBoatEntered, s.player.Pos, 0)
	s.log.Info("boat segment", "exit_after", s.boat.exitTarget, "score", s.score)
}

// exitBoat puts the player back on foot on the exit dock.
func (s *Session) exitBoat(dock *Tile, ev *TickEvents) {
	s.player.placeOn(dock, s.standY())
	s.player.State = StateAiming
	s.player.Aim = 0
	s.player.Facing = 0
	s.strafeDir = 0
	s.strafeHold = 0
	s.boat = boatSegment{}
	s.store.ClearLane()
	s.lastSafe = dock
	s.spawnAhead(ev)
	ev.cue(CueBoatExited, dock.Pos, 0)
	s.log.Info("boat segment over", "score", s.score)
}

// advanceBoat moves the boat forward and applies the held strafe.
func (s *Session) advanceBoat(dt float64) {
	b := s.cfg.Boat
	s.player.Pos[2] -= b.ForwardSpeed * dt
	if s.strafeHold <= 0 {
		return
	}
	s.player.strafe(s.strafeDir*b.StrafeSpeed*dt, s.cfg.River.HalfWidth-b.HalfWidth)
	s.strafeHold -= dt
	if s.strafeHold <= 0 {
		s.strafeDir = 0
	}
}

// resolveBoat runs the lane collisions: rocks, coconut pickups and the exit.
func (s *Session) resolveBoat(ev *TickEvents) {
	b := s.cfg.Boat
	p := s.player.Pos

	for i := 0; i < len(s.store.Obstacles); {
		o := s.store.Obstacles[i]
		if BoxOverlap(p, b.HalfWidth, b.HalfLength, o.Pos, o.Size/2, o.Size/2) {
			s.store.Obstacles = removeAt(s.store.Obstacles, i)
			ev.cue(CueObstacleHit, o.Pos, 0)
			if !s.charge(s.cfg.Penalties.Obstacle, "obstacle", ev) {
				s.gameOver("obstacle")
				return
			}
			continue
		}
		if !o.Passed && o.Pos.Z() > p.Z()+b.HalfLength {
			o.Passed = true
			s.boat.passed++
			s.stats.ObstaclesPassed++
			s.score += b.PassBonus
			ev.cue(CueObstaclePassed, o.Pos, b.PassBonus)
		}
		i++
	}

	for _, c := range s.store.Coconuts {
		if !c.Collected && BoxOverlap(p, b.HalfWidth, b.HalfLength, c.Pos, c.Radius, c.Radius) {
			c.Collected = true
			s.score += b.CoconutBonus
			ev.cue(CueCoconutCollected, c.Pos, b.CoconutBonus)
		}
	}

	if !s.boat.exitSpawned && s.boat.passed >= s.boat.exitTarget {
		s.spawnExitDock(ev)
		s.boat.exitSpawned = true
		s.log.Debug("exit dock spawned", "passed", s.boat.passed)
	}
	if !s.boat.exitSpawned {
		return
	}

	dock := s.store.LastTile()
	switch {
	case dock == nil || dock.Kind != KindExitDock:
		s.spawnExitDock(ev)
	case BoxOverlap(p, b.HalfWidth, b.HalfLength, dock.Pos, dock.Half(), dock.Half()):
		s.exitBoat(dock, ev)
	case dock.Pos.Z() > p.Z()+b.HalfLength+dock.Half():
		// Steered past it.
		s.spawnExitDock(ev)
	}
}

// moveSharks swims the sharks towards the boat and lets them bite.
func (s *Session) moveSharks(dt float64, ev *TickEvents) {
	if s.player.State != StateBoat {
		return
	}
	for _, sh := range s.store.Sharks {
		if sh.Defeated {
			continue
		}
		sh.Pos[2] += sh.Speed * dt
		if sh.Pos.Sub(s.player.Pos).Len() >= s.cfg.Sharks.HitRadius {
			continue
		}
		sh.Defeated = true
		s.player.Lives--
		ev.cue(CueSharkBite, sh.Pos, s.player.Lives)
		s.log.Info("shark bite", "lives", s.player.Lives)
		if s.player.Lives <= 0 {
			s.gameOver("shark")
			return
		}
	}
}
