package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// actionBinding ties a key binding to the action it produces.
type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings come from the keys section of the config.
type KeyMapper struct {
	bindings []actionBinding
}

// NewKeyMapper creates a key mapper for the configured bindings.
func NewKeyMapper(keys config.KeysConfig) *KeyMapper {
	bind := func(a core.Action, keys []string, desc string) actionBinding {
		help := ""
		if len(keys) > 0 {
			help = keys[0]
		}
		return actionBinding{
			action:  a,
			binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		}
	}

	// Quit is checked first so it cannot be shadowed by a paddle key.
	return &KeyMapper{
		bindings: []actionBinding{
			bind(core.ActionQuit, keys.Quit, "quit"),
			bind(core.ActionLeftUp, keys.LeftUp, "left up"),
			bind(core.ActionLeftDown, keys.LeftDown, "left down"),
			bind(core.ActionRightUp, keys.RightUp, "right up"),
			bind(core.ActionRightDown, keys.RightDown, "right down"),
			bind(core.ActionPause, keys.Pause, "pause"),
			bind(core.ActionRestart, keys.Restart, "restart"),
			bind(core.ActionBack, keys.Back, "back"),
		},
	}
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// Binding returns the key binding for an action.
func (km *KeyMapper) Binding(a core.Action) (key.Binding, bool) {
	for _, b := range km.bindings {
		if b.action == a {
			return b.binding, true
		}
	}
	return key.Binding{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionReplays
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionReplays
	}

	return MenuActionNone
}
