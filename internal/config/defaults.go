package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			Width:  1400,
			Height: 700,
		},
		Paddle: PaddleConfig{
			Length: 100,
			Width:  20,
			Speed:  5,
			Inset:  600,
		},
		Ball: BallConfig{
			Radius: 15,
			Speed:  6,
		},
		Gameplay: GameplayConfig{
			WinScore: 10,
		},
		Rules: ClassicRules(),
		Keys: KeysConfig{
			LeftUp:    []string{"w"},
			LeftDown:  []string{"s"},
			RightUp:   []string{"up"},
			RightDown: []string{"down"},
			Pause:     []string{"p"},
			Restart:   []string{"r"},
			Back:      []string{"esc", "b"},
			Quit:      []string{"q", "ctrl+c"},
		},
		Input: InputConfig{
			HoldTicks: 30, // 500ms at 60 ticks/s
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
