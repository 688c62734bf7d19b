package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - left paddle up
	ActionLeftDown         // S - left paddle down
	ActionRightUp          // Up arrow - right paddle up
	ActionRightDown        // Down arrow - right paddle down
	ActionPause            // P - pause/unpause game
	ActionRestart          // R - restart after the match ended
	ActionBack             // B, Escape - leave the current screen
	ActionQuit             // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that are active for this frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// paddleActions lists the four paddle keys in bit order for KeyMask.
var paddleActions = [...]Action{ActionLeftUp, ActionLeftDown, ActionRightUp, ActionRightDown}

// KeyMask packs the four paddle keys of a frame into the low four bits.
// Replays store one mask per tick.
func (f InputFrame) KeyMask() uint8 {
	var mask uint8
	for i, a := range paddleActions {
		if f.Has(a) {
			mask |= 1 << i
		}
	}
	return mask
}

// FrameFromMask rebuilds an input frame holding the paddle keys set in mask.
func FrameFromMask(mask uint8) InputFrame {
	frame := NewInputFrame()
	for i, a := range paddleActions {
		if mask&(1<<i) != 0 {
			frame.Set(a)
		}
	}
	return frame
}
