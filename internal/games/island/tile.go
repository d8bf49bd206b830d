package island

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/island-jumper/internal/core"
)

// TileKind identifies what a tile does when the player lands on it.
type TileKind uint8

const (
	KindSafe TileKind = iota
	KindMoving
	KindTrap
	KindCoconut
	KindPowerUp
	KindBoatDock
	KindExitDock
)

// String returns the kind name used in logs and snapshots.
func (k TileKind) String() string {
	switch k {
	case KindSafe:
		return "safe"
	case KindMoving:
		return "moving"
	case KindTrap:
		return "trap"
	case KindCoconut:
		return "coconut"
	case KindPowerUp:
		return "power_up"
	case KindBoatDock:
		return "boat_dock"
	case KindExitDock:
		return "exit_dock"
	default:
		return "unknown"
	}
}

// TileState is the kind-specific payload of a tile.
// Only the types in this file implement it.
type TileState interface {
	tileState()
	clone() TileState
}

// MovingState drifts a tile from bank to bank until someone lands on it.
type MovingState struct {
	Dir   float64 // -1 or +1
	Speed float64 // Units per second
}

// TrapState is the fuse of a trap tile.
type TrapState struct {
	Armed   bool
	ArmedAt float64 // Simulation clock at arming
	Pulse   float64 // 0..1 color pulse phase
}

// CoconutState tracks the palm tree on a coconut tile.
type CoconutState struct {
	TreeShot bool
}

// PowerUpState tracks whether the boost was collected.
type PowerUpState struct {
	Consumed bool
}

func (*MovingState) tileState()  {}
func (*TrapState) tileState()    {}
func (*CoconutState) tileState() {}
func (*PowerUpState) tileState() {}

func (s *MovingState) clone() TileState  { c := *s; return &c }
func (s *TrapState) clone() TileState    { c := *s; return &c }
func (s *CoconutState) clone() TileState { c := *s; return &c }
func (s *PowerUpState) clone() TileState { c := *s; return &c }

// Tile is a landing platform.
type Tile struct {
	ID     int
	Pos    mgl64.Vec3
	Size   float64 // Full edge length of the square footprint
	Kind   TileKind
	Color  core.Color
	Frenzy bool // Landing starts the collapse countdown
	State  TileState
}

// newTile builds a tile with the payload its kind needs.
func newTile(id int, pos mgl64.Vec3, size float64, kind TileKind) *Tile {
	t := &Tile{ID: id, Pos: pos, Size: size, Kind: kind, Color: kindColor(kind)}
	switch kind {
	case KindTrap:
		t.State = &TrapState{}
	case KindCoconut:
		t.State = &CoconutState{}
	case KindPowerUp:
		t.State = &PowerUpState{}
	}
	return t
}

// Moving returns the moving payload, or nil.
func (t *Tile) Moving() *MovingState {
	s, _ := t.State.(*MovingState)
	return s
}

// Trap returns the trap payload, or nil.
func (t *Tile) Trap() *TrapState {
	s, _ := t.State.(*TrapState)
	return s
}

// Coconut returns the coconut payload, or nil.
func (t *Tile) Coconut() *CoconutState {
	s, _ := t.State.(*CoconutState)
	return s
}

// PowerUp returns the power-up payload, or nil.
func (t *Tile) PowerUp() *PowerUpState {
	s, _ := t.State.(*PowerUpState)
	return s
}

// makeSafe turns a moving or spent trap tile into a plain one where it stands.
func (t *Tile) makeSafe() {
	t.Kind = KindSafe
	t.State = nil
	t.Color = kindColor(KindSafe)
}

// Clone returns a deep copy.
func (t *Tile) Clone() *Tile {
	c := *t
	if t.State != nil {
		c.State = t.State.clone()
	}
	return &c
}

// Half returns half the edge length.
func (t *Tile) Half() float64 {
	return t.Size / 2
}

// TrunkPos returns the base of the palm trunk on a coconut tile.
func (t *Tile) TrunkPos(offset float64) mgl64.Vec3 {
	return mgl64.Vec3{t.Pos.X() + t.Size*offset, t.Pos.Y(), t.Pos.Z()}
}

func kindColor(k TileKind) core.Color {
	switch k {
	case KindMoving:
		return core.ColorCyan
	case KindTrap:
		return core.ColorRed
	case KindCoconut:
		return core.ColorBrown
	case KindPowerUp:
		return core.ColorMagenta
	case KindBoatDock:
		return core.ColorOrange
	case KindExitDock:
		return core.ColorGreen
	default:
		return core.ColorGray
	}
}
