package island

import "github.com/go-gl/mathgl/mgl64"

// CueKind is a one-shot presentation hint emitted by a tick.
type CueKind uint8

const (
	CueLanded CueKind = iota
	CueSplash
	CueTrapArmed
	CueTrapFired
	CueFrenzyCollapse
	CuePowerUp
	CueTreeShot
	CueCoconutShot
	CueCoconutCollected
	CueSharkShot
	CueSharkBite
	CueObstacleHit
	CueObstaclePassed
	CueBoatEntered
	CueExitDock
	CueBoatExited
	CueModeChanged
	CuePenalty
	CueRespawn
	CueRestart
	CueShot
)

var cueNames = [...]string{
	CueLanded:           "landed",
	CueSplash:           "splash",
	CueTrapArmed:        "trap_armed",
	CueTrapFired:        "trap_fired",
	CueFrenzyCollapse:   "frenzy_collapse",
	CuePowerUp:          "power_up",
	CueTreeShot:         "tree_shot",
	CueCoconutShot:      "coconut_shot",
	CueCoconutCollected: "coconut_collected",
	CueSharkShot:        "shark_shot",
	CueSharkBite:        "shark_bite",
	CueObstacleHit:      "obstacle_hit",
	CueObstaclePassed:   "obstacle_passed",
	CueBoatEntered:      "boat_entered",
	CueExitDock:         "exit_dock",
	CueBoatExited:       "boat_exited",
	CueModeChanged:      "mode_changed",
	CuePenalty:          "penalty",
	CueRespawn:          "respawn",
	CueRestart:          "restart",
	CueShot:             "shot",
}

func (k CueKind) String() string {
	if int(k) < len(cueNames) {
		return cueNames[k]
	}
	return "unknown"
}

// Cue marks where something happened. Value carries the points involved,
// if any.
type Cue struct {
	Kind  CueKind
	Pos   mgl64.Vec3
	Value int
}

// Transition records the motion state before and after a tick.
type Transition struct {
	From MotionState
	To   MotionState
}

// TickEvents is everything a tick reports back to the host.
type TickEvents struct {
	ScoreDelta int
	Transition *Transition
	Cues       []Cue
}

// Has reports whether a cue of kind k was emitted.
func (e TickEvents) Has(k CueKind) bool {
	for _, c := range e.Cues {
		if c.Kind == k {
			return true
		}
	}
	return false
}

func (e *TickEvents) cue(k CueKind, pos mgl64.Vec3, value int) {
	if e == nil {
		return
	}
	e.Cues = append(e.Cues, Cue{Kind: k, Pos: pos, Value: value})
}
