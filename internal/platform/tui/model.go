package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures a play session.
type Options struct {
	Config config.PongConfig // Keys and key hold; variants are created from it
	Store  *storage.Store    // Replay journal; nil disables recording
	Logger *log.Logger       // nil discards
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Model is the Bubble Tea model for a hotseat pong session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	latch      *KeyLatch
	recorder   *storage.Recorder
	recordCfg  []byte          // Encoded config stored with each replay
	inputFrame core.InputFrame // One-shot actions for the next tick
	gameState  core.GameState
	tag        uint64
	embedded   bool // Hosted by a SessionModel: back returns to its menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     opts.logger().With("variant", game.ID()),
		config:     cfg,
		keys:       NewKeyMapper(opts.Config.Keys),
		latch:      NewKeyLatch(opts.Config.Input.HoldTicks),
		inputFrame: core.NewInputFrame(),
		tag:        newTickTag(),
	}
	if m.store != nil {
		data, err := config.Marshal(opts.Config)
		if err != nil {
			m.logger.Warn("replays will not carry their config", "error", err)
		}
		m.recordCfg = data
	}
	m.startRecording()
	return m
}

// startRecording begins a new replay for the current seed.
func (m *Model) startRecording() {
	if m.store == nil {
		m.recorder = nil
		return
	}
	m.recorder = storage.NewRecorder(m.game.ID(), m.config.Seed, m.config.TickRate, m.recordCfg)
}

// finishRecording stores the current replay, if any ticks were played.
func (m *Model) finishRecording() {
	if m.recorder == nil || m.recorder.Ticks() == 0 {
		return
	}
	replay := m.recorder.Finish(m.game.Hash())
	m.recorder = nil

	if err := m.store.SaveReplay(replay); err != nil {
		m.logger.Error("could not save replay", "error", err)
		return
	}
	m.logger.Info("replay saved", "id", replay.ID, "ticks", replay.Ticks)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.tag)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena is scaled to the screen, so a resize never resets the match.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Tag != m.tag {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.finishRecording()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.finishRecording()
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case core.ActionLeftUp, core.ActionLeftDown, core.ActionRightUp, core.ActionRightDown:
		m.latch.Press(action)

	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.finishRecording()

		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.latch.Reset()
		m.inputFrame.Clear()
		m.startRecording()
		m.logger.Info("session restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate, m.tag)
	}

	frame := m.inputFrame.Clone()
	m.latch.Apply(&frame)

	before := m.game.State().Tick
	result := m.game.Step(frame)
	m.gameState = result.State

	// Only simulated ticks are recorded; pauses and the finished state are not.
	if m.recorder != nil && result.State.Tick > before {
		m.recorder.Record(frame.KeyMask())
	}

	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.tag)
}

// logEvents reports notable game events.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventPoint:
			m.logger.Info("point", "side", e.Side, "score", e.Score, "tick", m.gameState.Tick)
		case core.EventServe:
			m.logger.Debug("serve", "tick", m.gameState.Tick)
		case core.EventFinished:
			m.logger.Info("match finished", "winner", e.Side,
				"left", m.gameState.LeftScore, "right", m.gameState.RightScore)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
