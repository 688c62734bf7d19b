package tui

import "github.com/vovakirdan/tui-pong/internal/core"

// paddleActions are the actions a KeyLatch holds down. Slots 2k and 2k+1
// are the up and down keys of one paddle.
var paddleActions = [4]core.Action{
	core.ActionLeftUp,
	core.ActionLeftDown,
	core.ActionRightUp,
	core.ActionRightDown,
}

// KeyLatch turns key presses into key-down state.
//
// Terminals report presses and auto-repeats but never releases, so a paddle
// key counts as down for a fixed number of ticks after its last press. The
// first auto-repeat comes after the OS repeat delay (commonly 250-600ms), so
// a hold shorter than that delay stalls a held paddle after the first press.
// Later repeats arrive every 30-50ms and keep the key down.
type KeyLatch struct {
	hold      int
	remaining [4]int
}

// NewKeyLatch creates a latch that holds keys for holdTicks ticks.
func NewKeyLatch(holdTicks int) *KeyLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyLatch{hold: holdTicks}
}

// Press records a key press. Pressing one direction of a paddle releases
// the other, so reversing does not stall the paddle.
func (l *KeyLatch) Press(a core.Action) {
	i := latchIndex(a)
	if i < 0 {
		return
	}
	l.remaining[i] = l.hold
	l.remaining[i^1] = 0
}

// Apply sets the held paddle actions on frame and ages the latch by one tick.
func (l *KeyLatch) Apply(frame *core.InputFrame) {
	for i, a := range paddleActions {
		if l.remaining[i] > 0 {
			frame.Set(a)
			l.remaining[i]--
		}
	}
}

// Reset releases every key.
func (l *KeyLatch) Reset() {
	l.remaining = [4]int{}
}

// latchIndex returns the slot of a paddle action, or -1.
func latchIndex(a core.Action) int {
	for i, p := range paddleActions {
		if p == a {
			return i
		}
	}
	return -1
}
