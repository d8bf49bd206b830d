package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone           Action = iota
	ActionAimLeft               // A, Left arrow - rotate aim left / strafe left in the boat
	ActionAimRight              // D, Right arrow - rotate aim right / strafe right in the boat
	ActionJump                  // Space - jump towards the aim direction
	ActionFire                  // F - fire a bullet while shooting mode is on
	ActionToggleShooting        // X - toggle shooting mode
	ActionToggleAutoplay        // T - toggle the autoplay bot
	ActionConfirm               // Enter - confirm selection in menu
	ActionBack                  // B, Escape - go back to menu
	ActionRestart               // R - restart (costs points outside game over)
	ActionQuit                  // Q, Ctrl+C - exit game/session
	ActionPause                 // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionToggleShooting:
		return "ToggleShooting"
	case ActionToggleAutoplay:
		return "ToggleAutoplay"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected by the host during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// List returns the triggered actions in declaration order.
// Used when input frames are recorded.
func (f InputFrame) List() []Action {
	var out []Action
	for a := ActionNone + 1; a <= ActionPause; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
