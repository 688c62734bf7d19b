package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperDefaults(t *testing.T) {
	km := NewKeyMapper(config.DefaultPongConfig().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey("w"), core.ActionLeftUp},
		{"s", runeKey("s"), core.ActionLeftDown},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRightUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionRightDown},
		{"p", runeKey("p"), core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b", runeKey("b"), core.ActionBack},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapperCustomBindings(t *testing.T) {
	keys := config.DefaultPongConfig().Keys
	keys.LeftUp = []string{"i"}
	keys.LeftDown = []string{"k"}
	km := NewKeyMapper(keys)

	if got := km.MapKey(runeKey("i")); got != core.ActionLeftUp {
		t.Errorf("MapKey(i) = %v, expected left-up", got)
	}
	if got := km.MapKey(runeKey("w")); got != core.ActionNone {
		t.Errorf("MapKey(w) = %v, expected none after rebinding", got)
	}

	b, ok := km.Binding(core.ActionLeftDown)
	if !ok || b.Help().Key != "k" {
		t.Errorf("Binding(left-down) help = %q, expected %q", b.Help().Key, "k")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionReplays},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyLatchHoldsForHoldTicks(t *testing.T) {
	latch := NewKeyLatch(3)
	latch.Press(core.ActionLeftUp)

	for i := 0; i < 3; i++ {
		frame := core.NewInputFrame()
		latch.Apply(&frame)
		if !frame.Has(core.ActionLeftUp) {
			t.Fatalf("tick %d: expected left-up held", i)
		}
	}

	frame := core.NewInputFrame()
	latch.Apply(&frame)
	if frame.Has(core.ActionLeftUp) {
		t.Error("expected left-up released after hold expired")
	}
}

func TestKeyLatchReverseReleasesOpposite(t *testing.T) {
	latch := NewKeyLatch(8)
	latch.Press(core.ActionLeftUp)
	latch.Press(core.ActionRightUp)
	latch.Press(core.ActionLeftDown)

	frame := core.NewInputFrame()
	latch.Apply(&frame)
	if frame.Has(core.ActionLeftUp) || !frame.Has(core.ActionLeftDown) {
		t.Errorf("left keys = up:%v down:%v, expected only down",
			frame.Has(core.ActionLeftUp), frame.Has(core.ActionLeftDown))
	}
	if !frame.Has(core.ActionRightUp) {
		t.Error("expected the right paddle key to be unaffected")
	}
}

func TestKeyLatchIgnoresOtherActions(t *testing.T) {
	latch := NewKeyLatch(8)
	latch.Press(core.ActionPause)

	frame := core.NewInputFrame()
	latch.Apply(&frame)
	if frame.KeyMask() != 0 || frame.Has(core.ActionPause) {
		t.Errorf("latched frame = %+v, expected empty", frame.Actions)
	}
}

func TestKeyLatchReset(t *testing.T) {
	latch := NewKeyLatch(8)
	latch.Press(core.ActionRightDown)
	latch.Reset()

	frame := core.NewInputFrame()
	latch.Apply(&frame)
	if frame.Has(core.ActionRightDown) {
		t.Error("expected Reset to release all keys")
	}
}
