package core

// Action represents a semantic game intent, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W (held)
	ActionDown           // Down arrow, S (held)
	ActionLeft           // Left arrow, A (held)
	ActionRight          // Right arrow, D (held)
	ActionSprint         // Shift modifier (held)
	ActionConfirm        // Enter
	ActionHelp           // H
	ActionCancel         // Esc
	ActionChoice1        // 1
	ActionChoice2        // 2
	ActionChoice3        // 3
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSprint:
		return "Sprint"
	case ActionConfirm:
		return "Confirm"
	case ActionHelp:
		return "Help"
	case ActionCancel:
		return "Cancel"
	case ActionChoice1:
		return "Choice1"
	case ActionChoice2:
		return "Choice2"
	case ActionChoice3:
		return "Choice3"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a continuous intent (sampled as held
// every tick) rather than an edge that is consumed once.
func (a Action) Held() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionSprint:
		return true
	default:
		return false
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
