package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

type stubGame struct {
	id    string
	score int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{LeftScore: g.score} }
func (g *stubGame) Hash() uint64                         { return 0 }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func(cfg config.PongConfig) Game {
		return &stubGame{id: "zz-stub", score: cfg.Gameplay.WinScore}
	})

	if !Exists("zz-stub") {
		t.Fatal("registered variant should exist")
	}

	cfg := config.DefaultPongConfig()
	cfg.Gameplay.WinScore = 7
	g, err := Create("zz-stub", cfg)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.State().LeftScore != 7 {
		t.Error("factory should receive the given config")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "Stub zz-stub" {
				t.Errorf("title = %q, expected %q", info.Title, "Stub zz-stub")
			}
		}
	}
	if !found {
		t.Error("List should include the registered variant")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-variant", config.DefaultPongConfig()); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Create error = %v, expected ErrUnknownVariant", err)
	}
	if Exists("no-such-variant") {
		t.Error("Exists should be false for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(config.PongConfig) Game { return &stubGame{id: "zz-dup"} }
	Register("zz-dup", f)

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("zz-dup", f)
}
