package island

import (
	"math"
	"testing"

	"github.com/vovakirdan/island-jumper/internal/core"
)

// boatSession lands the player on a dock and returns a session in BOAT_MODE.
func boatSession(t *testing.T, tweak func(Rules) Rules) *Session {
	t.Helper()
	cfg := safeConfig()
	r := economyRules(cfg)
	if tweak != nil {
		r = tweak(r)
	}
	s := NewSession(cfg, r)
	dock := newTile(100, core.Vec(0, 0, -150), 90, KindBoatDock)
	course(s, newTile(99, core.Vec(0, 0, 0), 60, KindSafe), dock)

	ev := jumpAndSettle(t, s)
	if s.State() != StateBoat || !ev.Has(CueBoatEntered) {
		t.Fatalf("state = %v, want BOAT_MODE", s.State())
	}
	return s
}

func TestDockLandingStartsBoat(t *testing.T) {
	s := boatSession(t, nil)
	if len(s.store.Tiles) != 0 {
		t.Errorf("tiles = %d, want the path cleared", len(s.store.Tiles))
	}
	if s.player.Pos.Y() != 0 || s.player.Lives != s.cfg.Boat.Lives {
		t.Errorf("boat at %v with %d lives", s.player.Pos, s.player.Lives)
	}
	if s.boat.exitTarget < s.cfg.Boat.ExitMinObstacle || s.boat.exitTarget > s.cfg.Boat.ExitMaxObstacle {
		t.Errorf("exit target %d out of range", s.boat.exitTarget)
	}
	if s.Stage() != StageBoat || s.Stats().BoatSegments != 1 {
		t.Errorf("stage %q segments %d", s.Stage(), s.Stats().BoatSegments)
	}
}

func TestBoatMovesForwardAndStrafes(t *testing.T) {
	s := boatSession(t, nil)
	z := s.player.Pos.Z()

	s.Tick(step, Input{Aim: -1})
	if s.player.Pos.X() >= 0 {
		t.Errorf("strafe left moved to x=%v", s.player.Pos.X())
	}
	if want := z - s.cfg.Boat.ForwardSpeed*step; math.Abs(s.player.Pos.Z()-want) > 1e-9 {
		t.Errorf("z = %v, want %v", s.player.Pos.Z(), want)
	}

	// Holding right long enough pins the boat against the bank.
	for i := 0; i < 200; i++ {
		s.Tick(step, Input{Aim: 1})
		s.store.ClearLane()
	}
	limit := s.cfg.River.HalfWidth - s.cfg.Boat.HalfWidth
	if s.player.Pos.X() != limit {
		t.Errorf("x = %v, want clamped to %v", s.player.Pos.X(), limit)
	}

	x := s.player.Pos.X()
	run(s, 30, Input{})
	if s.player.Pos.X() != x {
		t.Error("boat kept strafing after the hold ran out")
	}
}

func TestObstaclePassAndHit(t *testing.T) {
	t.Run("pass scores", func(t *testing.T) {
		s := boatSession(t, nil)
		p := s.player.Pos
		s.store.Obstacles = append(s.store.Obstacles, &Obstacle{Pos: core.Vec(p.X()+150, 0, p.Z()-20), Size: 40})
		run(s, 20, Input{})
		if s.boat.passed != 1 || s.Score() != s.cfg.Boat.PassBonus {
			t.Errorf("passed %d score %d", s.boat.passed, s.Score())
		}
	})
	t.Run("hit is paid for", func(t *testing.T) {
		s := boatSession(t, nil)
		s.score = 10
		p := s.player.Pos
		s.store.Obstacles = append(s.store.Obstacles, &Obstacle{Pos: core.Vec(p.X(), 0, p.Z()-20), Size: 40})
		ev := s.Tick(step, Input{})
		if !ev.Has(CueObstacleHit) || s.State() != StateBoat {
			t.Fatalf("state %v, want a paid crash", s.State())
		}
		if s.Score() != 10-s.cfg.Penalties.Obstacle {
			t.Errorf("score = %d", s.Score())
		}
		for _, o := range s.store.Obstacles {
			if o.Pos.Z() == p.Z()-20 {
				t.Error("hit obstacle should be removed")
			}
		}
	})
	t.Run("hit is fatal", func(t *testing.T) {
		s := boatSession(t, func(r Rules) Rules {
			r.Penalties = FatalPenalties{}
			return r
		})
		p := s.player.Pos
		s.store.Obstacles = append(s.store.Obstacles, &Obstacle{Pos: core.Vec(p.X(), 0, p.Z()-20), Size: 40})
		s.Tick(step, Input{})
		if s.State() != StateGameOver {
			t.Errorf("state = %v, want GAME_OVER", s.State())
		}
	})
}

func TestSharkBites(t *testing.T) {
	s := boatSession(t, nil)
	s.player.Lives = 2
	for lives := 1; lives >= 0; lives-- {
		p := s.player.Pos
		s.store.Sharks = append(s.store.Sharks, &Shark{Pos: core.Vec(p.X(), -5, p.Z()-10), Speed: 300})
		ev := s.Tick(step, Input{})
		if !ev.Has(CueSharkBite) || s.player.Lives != lives {
			t.Fatalf("lives = %d, want %d", s.player.Lives, lives)
		}
	}
	if s.State() != StateGameOver {
		t.Errorf("state = %v, want GAME_OVER with no lives", s.State())
	}
}

func TestShootShark(t *testing.T) {
	s := boatSession(t, nil)
	s.Tick(step, Input{ToggleShooting: true})
	p := s.player.Pos
	shark := &Shark{Pos: core.Vec(p.X(), -5, p.Z()-300), Speed: 0}
	s.store.Sharks = append(s.store.Sharks, shark)

	s.Tick(step, Input{Fire: true})
	run(s, 5, Input{})
	if !shark.Defeated {
		t.Fatal("shark should be shot")
	}
	if s.Score() != s.cfg.Sharks.ShotBonus {
		t.Errorf("score = %d, want %d", s.Score(), s.cfg.Sharks.ShotBonus)
	}
}

func TestFloatingCoconutPickup(t *testing.T) {
	s := boatSession(t, nil)
	p := s.player.Pos
	c := &FloatingCoconut{Pos: core.Vec(p.X(), 35, p.Z()-30), Radius: 5}
	s.store.Coconuts = append(s.store.Coconuts, c)

	var collected bool
	for _, ev := range run(s, 5, Input{}) {
		collected = collected || ev.Has(CueCoconutCollected)
	}
	if !collected || !c.Collected || s.Score() != s.cfg.Boat.CoconutBonus {
		t.Errorf("collected %v score %d", c.Collected, s.Score())
	}
}

func TestExitDockEndsSegment(t *testing.T) {
	s := boatSession(t, nil)
	s.boat.exitTarget = 0

	var exited bool
	for i := 0; i < 60 && s.State() == StateBoat; i++ {
		exited = s.Tick(step, Input{}).Has(CueBoatExited)
	}
	if !exited || s.State() != StateAiming {
		t.Fatalf("state = %v, want AIMING after the exit dock", s.State())
	}
	if len(s.store.Tiles) != s.cfg.Tiles.InitialTiles+1 || s.store.Tiles[0].Kind != KindExitDock {
		t.Errorf("tiles after exit: %d, first %v", len(s.store.Tiles), s.store.Tiles[0].Kind)
	}
	if len(s.store.Obstacles) != 0 || len(s.store.Sharks) != 0 {
		t.Error("lane should be cleared")
	}
	if s.player.Pos.Y() != s.standY() {
		t.Errorf("player height %v", s.player.Pos.Y())
	}
}

func TestMissedExitDockReturns(t *testing.T) {
	s := boatSession(t, nil)
	s.boat.exitTarget = 0
	s.Tick(step, Input{})
	dock := s.store.LastTile()
	if dock == nil || dock.Kind != KindExitDock {
		t.Fatal("exit dock not spawned")
	}

	// Steer hard right while the dock sits on the left bank.
	dock.Pos[0] = -s.cfg.River.HalfWidth + dock.Half()
	for i := 0; i < 100 && s.store.LastTile() == dock; i++ {
		s.Tick(step, Input{Aim: 1})
		if s.State() != StateBoat {
			t.Fatalf("state = %v, boat should have missed the dock", s.State())
		}
	}
	again := s.store.LastTile()
	if again == dock || again.Kind != KindExitDock || again.Pos.Z() >= s.player.Pos.Z() {
		t.Error("missed dock should be placed ahead again")
	}
}

func TestAutoplayDodgesObstacles(t *testing.T) {
	s := boatSession(t, nil)
	s.autoplay = true
	p := s.player.Pos
	s.store.Obstacles = append(s.store.Obstacles, &Obstacle{Pos: core.Vec(p.X(), 0, p.Z()-190), Size: 40})

	for i := 0; i < 40; i++ {
		ev := s.Tick(step, Input{})
		if ev.Has(CueObstacleHit) {
			t.Fatalf("tick %d: autoplay hit the obstacle", i)
		}
	}
}
