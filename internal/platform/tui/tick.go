// Package tui provides the Bubble Tea host for pong.
// It handles the terminal UI loop, input mapping, replay recording and
// playback, and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Tag identifies the loop that scheduled it, so a model only advances on
// its own ticks.
type TickMsg struct {
	Time time.Time
	Tag  uint64
}

var lastTickTag atomic.Uint64

// newTickTag returns a tag for a fresh tick loop.
func newTickTag() uint64 {
	return lastTickTag.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, tag uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Tag: tag}
	})
}
