package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// RerunResult is the outcome of re-simulating a replay.
type RerunResult struct {
	State    core.GameState
	Hash     uint64
	Verified bool // Hash matches the recorded final hash
}

// ReplayGame creates a fresh game for r under the config it was recorded
// with. Replays that carry no config use fallback.
func ReplayGame(r storage.Replay, fallback config.PongConfig) (registry.Game, error) {
	cfg := fallback
	if len(r.Config) > 0 {
		var err error
		if cfg, err = config.Parse(r.Config); err != nil {
			return nil, fmt.Errorf("replay %s: recorded config: %w", shortID(r.ID), err)
		}
	}
	return registry.Create(r.Variant, cfg)
}

// Rerun replays r through game without a terminal. The game should come
// from ReplayGame.
func Rerun(game registry.Game, r storage.Replay) RerunResult {
	game.Reset(core.RuntimeConfig{Seed: r.Seed, TickRate: r.TickRate})

	c := r.Cursor()
	for {
		mask, ok := c.Next()
		if !ok {
			break
		}
		game.Step(core.FrameFromMask(mask))
	}

	hash := game.Hash()
	return RerunResult{
		State:    game.State(),
		Hash:     hash,
		Verified: hash == r.FinalHash,
	}
}

// ReplayModel plays a recorded session back in the terminal.
type ReplayModel struct {
	game     registry.Game
	replay   storage.Replay
	cursor   *storage.Cursor
	screen   *core.Screen
	tickRate int
	tag      uint64
	paused   bool
	done     bool
	verified bool
	quitting bool
}

// NewReplayModel creates a viewer for r. The game must be a fresh instance
// from ReplayGame.
func NewReplayModel(game registry.Game, r storage.Replay, width, height int) ReplayModel {
	return ReplayModel{
		game:     game,
		replay:   r,
		cursor:   r.Cursor(),
		screen:   core.NewScreen(width, height),
		tickRate: r.TickRate,
		tag:      newTickTag(),
	}
}

// Init seeds the game and starts playback.
func (m ReplayModel) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.screen.Width(),
		ScreenH:  m.screen.Height(),
		TickRate: m.tickRate,
		Seed:     m.replay.Seed,
	})
	return tickCmd(m.tickRate, m.tag)
}

// Update handles messages for the viewer.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "b":
			m.quitting = true
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Tag != m.tag || m.done {
			return m, nil
		}
		if !m.paused {
			m.advance()
		}
		return m, tickCmd(m.tickRate, m.tag)
	}

	return m, nil
}

// advance plays one recorded tick.
func (m *ReplayModel) advance() {
	mask, ok := m.cursor.Next()
	if !ok {
		m.done = true
		m.verified = m.game.Hash() == m.replay.FinalHash
		return
	}
	m.game.Step(core.FrameFromMask(mask))
}

// View renders the game with a playback status line.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	h := m.screen.Height()
	w := m.screen.Width()
	if h > 0 {
		m.screen.DrawTextColored(0, h-1, strings.Repeat(" ", w), core.ColorDefault)
		m.screen.DrawTextCentered(h-1, m.status(), core.ColorCyan)
	}
	return RenderScreen(m.screen)
}

// status describes the playback position.
func (m ReplayModel) status() string {
	id := shortID(m.replay.ID)
	switch {
	case m.done && m.verified:
		return fmt.Sprintf("replay %s · end · verified · q quit", id)
	case m.done:
		return fmt.Sprintf("replay %s · end · DIVERGED · q quit", id)
	case m.paused:
		return fmt.Sprintf("replay %s · paused at %d/%d · p resume · q quit", id, m.game.State().Tick, m.replay.Ticks)
	default:
		return fmt.Sprintf("replay %s · %d/%d · p pause · q quit", id, m.game.State().Tick, m.replay.Ticks)
	}
}

// Done reports whether playback reached the end.
func (m ReplayModel) Done() bool {
	return m.done
}

// Verified reports whether the finished playback matched the recording.
func (m ReplayModel) Verified() bool {
	return m.verified
}

// RunReplay plays r back in the terminal.
func RunReplay(game registry.Game, r storage.Replay, width, height int) error {
	p := tea.NewProgram(
		NewReplayModel(game, r, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// shortID abbreviates a replay ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
