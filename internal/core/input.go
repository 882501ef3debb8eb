package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps raw keys to actions; the game never sees key
// codes.
type Action int

const (
	ActionNone        Action = iota
	ActionJump               // jump pressed this frame (press edge)
	ActionJumpRelease        // jump button released (release edge)
	ActionRestart            // restart after game over
	ActionQuit               // exit the session
	ActionPause              // toggle pause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionJumpRelease:
		return "JumpRelease"
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

// InputFrame holds the input edges reported during one simulation tick.
// Jump is edge-based: ActionJump marks the press, ActionJumpRelease the
// release, so the game can implement variable jump height from hold
// duration.
type InputFrame struct {
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

// Has reports whether the given action was triggered this frame.
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
