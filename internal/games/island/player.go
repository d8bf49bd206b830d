package island

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/island-jumper/internal/core"
)

// MotionState is the player state machine.
type MotionState uint8

const (
	StateAiming MotionState = iota
	StateJumping
	StateLanded
	StateDrowning
	StateBoat
	StateGameOver
)

// String returns the state name.
func (s MotionState) String() string {
	switch s {
	case StateAiming:
		return "AIMING"
	case StateJumping:
		return "JUMPING"
	case StateLanded:
		return "LANDED"
	case StateDrowning:
		return "DROWNING"
	case StateBoat:
		return "BOAT_MODE"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// progressEpsilon absorbs float drift when summing fixed steps.
const progressEpsilon = 1e-9

// Player is the jumper (or the boat, during a boat segment).
type Player struct {
	Pos    mgl64.Vec3
	Facing float64 // Degrees, 0 faces -Z
	Aim    float64 // Degrees, 0 faces -Z
	State  MotionState

	JumpFrom     mgl64.Vec3
	JumpTo       mgl64.Vec3
	JumpElapsed  float64
	JumpDuration float64

	DrownElapsed float64
	Respawn      bool // Drowning ends in a respawn instead of game over

	Lives    int // Boat segment only
	Boost    int // Generated tiles left under the boost buff
	Shooting bool
}

// ArcHeight is the jump parabola: 0 at p=0 and p=1, height at p=0.5.
func ArcHeight(p, height float64) float64 {
	return 4 * (p - p*p) * height
}

// JumpProgress returns the normalized jump phase in [0, 1].
func (p *Player) JumpProgress() float64 {
	if p.JumpDuration <= 0 {
		return 1
	}
	return core.ClampF(p.JumpElapsed/p.JumpDuration, 0, 1)
}

// startJump launches towards to over duration seconds.
func (p *Player) startJump(to mgl64.Vec3, duration float64) {
	p.JumpFrom = p.Pos
	p.JumpTo = mgl64.Vec3{to.X(), p.Pos.Y(), to.Z()}
	p.JumpElapsed = 0
	p.JumpDuration = duration
	p.Facing = p.Aim
	p.State = StateJumping
}

// advanceJump moves along the arc and flips to LANDED once the arc completes.
func (p *Player) advanceJump(dt, height float64) {
	p.JumpElapsed += dt
	prog := p.JumpProgress()
	if prog >= 1-progressEpsilon {
		prog = 1
	}
	p.Pos[0] = (1-prog)*p.JumpFrom.X() + prog*p.JumpTo.X()
	p.Pos[2] = (1-prog)*p.JumpFrom.Z() + prog*p.JumpTo.Z()
	p.Pos[1] = p.JumpFrom.Y() + ArcHeight(prog, height)
	if prog == 1 {
		p.State = StateLanded
	}
}

// startDrowning begins the sink. respawn picks how it ends.
func (p *Player) startDrowning(respawn bool) {
	p.State = StateDrowning
	p.DrownElapsed = 0
	p.Respawn = respawn
}

// advanceDrown sinks the player and reports whether the sink is over.
func (p *Player) advanceDrown(dt, speed, duration float64) bool {
	p.DrownElapsed += dt
	if p.DrownElapsed >= duration-progressEpsilon {
		return true
	}
	p.Pos[1] -= speed * dt
	return false
}

// turn rotates the aim by delta degrees while standing.
func (p *Player) turn(delta float64) {
	p.Aim = core.WrapDegrees(p.Aim + delta)
	p.Facing = p.Aim
}

// placeOn stands the player on the center of t.
func (p *Player) placeOn(t *Tile, standY float64) {
	p.Pos = mgl64.Vec3{t.Pos.X(), standY, t.Pos.Z()}
}

// strafe moves the boat sideways, clamped so the hull stays in the river.
func (p *Player) strafe(dx, limit float64) {
	p.Pos[0] = core.ClampF(p.Pos.X()+dx, -limit, limit)
}
