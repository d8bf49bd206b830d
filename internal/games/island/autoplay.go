package island

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/island-jumper/internal/core"
)

// autoplayStep lets the bot act for the player.
func (s *Session) autoplayStep() {
	switch s.player.State {
	case StateAiming:
		s.autoAim()
	case StateBoat:
		s.autoSteer()
	}
}

// autoAim servos the aim towards where the next tile will be when the jump
// lands, and jumps once the aim is close enough.
func (s *Session) autoAim() {
	next := s.nextTile()
	if next == nil {
		return
	}
	target := s.predictLanding(next, s.jumpDuration())
	want := core.BearingTo(s.player.Pos, target)
	diff := core.WrapDegrees(want - s.player.Aim)
	s.player.turn(diff * s.cfg.Autoplay.Gain)
	if math.Abs(diff) < s.cfg.Autoplay.FireThreshold {
		s.player.startJump(target, s.jumpDuration())
	}
}

// predictLanding runs a moving tile forward over a jump of duration
// seconds, using the same steps the simulation will take.
func (s *Session) predictLanding(t *Tile, duration float64) mgl64.Vec3 {
	m := t.Moving()
	if m == nil {
		return t.Pos
	}
	rate := float64(s.cfg.Physics.TickRate)
	steps := int(math.Ceil(duration*rate - progressEpsilon))
	dt := 1 / rate
	x, dir := t.Pos.X(), m.Dir
	for i := 0; i < steps; i++ {
		x, dir = Bounce(x, dir, m.Speed, t.Half(), s.cfg.River.HalfWidth, dt)
	}
	return mgl64.Vec3{x, t.Pos.Y(), t.Pos.Z()}
}

// autoSteer dodges the closest rock ahead and otherwise lines up with the
// exit dock.
func (s *Session) autoSteer() {
	a := s.cfg.Autoplay
	b := s.cfg.Boat
	p := s.player.Pos

	var threat *Obstacle
	nearest := math.Inf(1)
	for _, o := range s.store.Obstacles {
		ahead := p.Z() - o.Pos.Z()
		if ahead < 0 || ahead > a.DodgeLookout {
			continue
		}
		if math.Abs(o.Pos.X()-p.X()) >= o.Size/2+a.DodgeMargin {
			continue
		}
		if ahead < nearest {
			threat, nearest = o, ahead
		}
	}

	if threat != nil {
		dir := 1.0
		if threat.Pos.X() > p.X() {
			dir = -1
		}
		limit := s.cfg.River.HalfWidth - b.HalfWidth
		if p.X()*dir >= limit-b.HalfWidth {
			dir = -dir
		}
		s.strafeDir = dir
		s.strafeHold = b.StrafeHold
		return
	}

	dock := s.store.LastTile()
	if dock == nil || dock.Kind != KindExitDock {
		return
	}
	if dx := dock.Pos.X() - p.X(); math.Abs(dx) > dock.Half()/2 {
		s.strafeDir = math.Copysign(1, dx)
		s.strafeHold = b.StrafeHold
	}
}
