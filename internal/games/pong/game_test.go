package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New("pong", "Pong (Classic)", config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		input.Clear()
		if i%50 < 20 {
			input.Set(core.ActionLeftUp)
		}
		if i%30 < 10 {
			input.Set(core.ActionRightDown)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Hash() != g2.Hash() {
		t.Errorf("Hash mismatch: %d vs %d", g1.Hash(), g2.Hash())
	}
	if g1.State() != g2.State() {
		t.Errorf("State mismatch: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestGameSeedChangesServe(t *testing.T) {
	g1 := newTestGame(1)
	g2 := newTestGame(2)

	if g1.Simulation().World().Ball.Direction == g2.Simulation().World().Ball.Direction {
		t.Error("expected different seeds to serve differently")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(42)

	g.Step(core.NewInputFrame())
	if g.State().Tick != 1 {
		t.Fatalf("Tick = %d, expected 1", g.State().Tick)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected game to be paused")
	}

	hash := g.Hash()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Hash() != hash || g.State().Tick != 1 {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected game to resume")
	}
}

func TestGameEvents(t *testing.T) {
	g := newTestGame(7)
	sim := g.Simulation()
	sim.world.Ball = ServeBall(0)
	sim.world.Paddle(SideRight).Pos.Y = 295
	sim.world.Paddle(SideRight).Score = 9

	var events []core.Event
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		events = append(events, g.Step(core.NewInputFrame()).Events...)
	}

	want := []core.Event{
		{Kind: core.EventPoint, Side: "right", Score: 10},
		{Kind: core.EventServe},
		{Kind: core.EventFinished, Side: "right", Score: 10},
	}
	if len(events) != len(want) {
		t.Fatalf("events = %+v, expected %+v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, events[i], want[i])
		}
	}

	st := g.State()
	if !st.GameOver || st.RightScore != 10 || st.LeftScore != 0 {
		t.Errorf("State = %+v, expected right win 0-10", st)
	}
	if res := g.Step(core.NewInputFrame()); len(res.Events) != 0 {
		t.Errorf("finished game emitted %+v", res.Events)
	}
}

func TestGameResetClearsSession(t *testing.T) {
	g := newTestGame(3)
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(core.RuntimeConfig{Seed: 3})
	st := g.State()
	if st.Tick != 0 || st.LeftScore != 0 || st.RightScore != 0 || st.Paused {
		t.Errorf("State after Reset = %+v, expected fresh session", st)
	}
}

func TestRegisteredVariants(t *testing.T) {
	cfg := config.DefaultPongConfig()

	classic, err := registry.Create("pong", cfg)
	if err != nil {
		t.Fatalf("Create(pong): %v", err)
	}
	if got := classic.(*Game).Simulation().Config().Rules; got != config.ClassicRules() {
		t.Errorf("pong rules = %+v, expected classic", got)
	}

	tuned, err := registry.Create("pong-tuned", cfg)
	if err != nil {
		t.Fatalf("Create(pong-tuned): %v", err)
	}
	if got := tuned.(*Game).Simulation().Config().Rules; got != config.TunedRules() {
		t.Errorf("pong-tuned rules = %+v, expected tuned", got)
	}
	if tuned.ID() != "pong-tuned" {
		t.Errorf("ID = %q, expected %q", tuned.ID(), "pong-tuned")
	}
}

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		n += strings.Count(s.Row(y), string(r))
	}
	return n
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if n := countRune(screen, BallChar); n != 1 {
		t.Errorf("ball drawn %d times, expected 1", n)
	}
	if n := countRune(screen, PaddleChar); n == 0 {
		t.Error("expected paddles to be drawn")
	}
	if n := countRune(screen, NetChar); n == 0 {
		t.Error("expected the centre line to be drawn")
	}
	if !strings.Contains(screen.Row(0), "0") {
		t.Errorf("score row %q, expected scores", screen.Row(0))
	}
	if !strings.Contains(screen.Row(23), "Pong (Classic)") {
		t.Errorf("help row %q, expected title", screen.Row(23))
	}

	// Left paddle in the left half, right paddle in the right half.
	mid := screen.Row(12)
	left := strings.IndexRune(mid, PaddleChar)
	right := strings.LastIndex(mid, string(PaddleChar))
	if left < 0 || right < 0 || left >= right {
		t.Errorf("row %q, expected a paddle on each side", mid)
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newTestGame(1)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected pause overlay")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(10, 4)

	g.Render(screen)

	if !strings.HasPrefix(screen.Row(0), "Terminal") {
		t.Errorf("row 0 = %q, expected size warning", screen.Row(0))
	}
}
