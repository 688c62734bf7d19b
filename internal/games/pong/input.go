package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Intent is a paddle's movement request for one tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	default:
		return "none"
	}
}

// KeyState is the key-down state of the four paddle keys for one tick.
type KeyState struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

// KeysFromFrame extracts the paddle keys from a platform input frame.
func KeysFromFrame(in core.InputFrame) KeyState {
	return KeyState{
		LeftUp:    in.Has(core.ActionLeftUp),
		LeftDown:  in.Has(core.ActionLeftDown),
		RightUp:   in.Has(core.ActionRightUp),
		RightDown: in.Has(core.ActionRightDown),
	}
}

// MapIntents translates key state into one intent per paddle, indexed by Side.
func MapIntents(keys KeyState) [2]Intent {
	return [2]Intent{
		SideLeft:  intentFor(keys.LeftUp, keys.LeftDown),
		SideRight: intentFor(keys.RightUp, keys.RightDown),
	}
}

// intentFor resolves a key pair. Holding both cancels out.
func intentFor(up, down bool) Intent {
	switch {
	case up && !down:
		return IntentUp
	case down && !up:
		return IntentDown
	default:
		return IntentNone
	}
}
