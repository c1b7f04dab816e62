package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - held while moving left
	ActionRight          // D, Right arrow - held while moving right
	ActionFire           // Space - shoot, or start from a title screen
	ActionConfirm        // Enter - start / restart
	ActionPause          // P - pause/unpause
	ActionBack           // B, Esc - leave to the menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one simulation tick.
// Left/Right are levels (set on every tick the key is held), the rest are
// edges set once per press.
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
