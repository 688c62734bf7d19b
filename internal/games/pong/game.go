package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Game adapts a Simulation to the platform's registry.Game interface:
// it owns pause state, seeds the simulation and reports events.
type Game struct {
	id      string
	title   string
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	sim     *Simulation
	paused  bool
}

// New creates a game that plays with cfg, ready to step.
func New(id, title string, cfg config.PongConfig) *Game {
	g := &Game{
		id:    id,
		title: title,
		cfg:   cfg,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new session seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.sim = NewSimulation(g.cfg, rand.New(rand.NewSource(runtime.Seed))) //nolint:gosec // gameplay randomness
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim.Finished() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	report := g.sim.Step(KeysFromFrame(in))

	var events []core.Event
	for _, side := range report.Points {
		events = append(events, core.Event{Kind: core.EventPoint, Side: side.String(), Score: g.sim.Score(side)})
	}
	if report.Serves > 0 {
		events = append(events, core.Event{Kind: core.EventServe})
	}
	if report.Finished {
		winner, _ := g.sim.Winner()
		events = append(events, core.Event{Kind: core.EventFinished, Side: winner.String(), Score: g.sim.Score(winner)})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		LeftScore:  g.sim.Score(SideLeft),
		RightScore: g.sim.Score(SideRight),
		Tick:       g.sim.Tick(),
		GameOver:   g.sim.Finished(),
		Paused:     g.paused,
	}
}

// Hash fingerprints the simulation state.
func (g *Game) Hash() uint64 {
	return g.sim.Snapshot().Hash()
}

// Simulation exposes the running session.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Register the rule variants with the registry
func init() {
	registry.Register("pong", func(cfg config.PongConfig) registry.Game {
		return New("pong", "Pong (Classic)", cfg)
	})
	registry.Register("pong-tuned", func(cfg config.PongConfig) registry.Game {
		cfg.Rules = config.TunedRules()
		return New("pong-tuned", "Pong (Tuned)", cfg)
	})
}
