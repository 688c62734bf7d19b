// Package config provides YAML-based configuration loading and validation
// for the pong simulation and its terminal host.
package config

// PongConfig contains all configuration for a pong session.
type PongConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Rules    RulesConfig    `yaml:"rules"`
	Keys     KeysConfig     `yaml:"keys"`
	Input    InputConfig    `yaml:"input"`
}

// ArenaConfig defines the play field, centred on the origin.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HalfWidth returns the distance from the centre to either goal line.
func (a ArenaConfig) HalfWidth() float64 { return a.Width / 2 }

// HalfHeight returns the distance from the centre to either wall.
func (a ArenaConfig) HalfHeight() float64 { return a.Height / 2 }

// PaddleConfig defines paddle geometry and speed (units per tick).
type PaddleConfig struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Speed  float64 `yaml:"speed"`
	Inset  float64 `yaml:"inset"` // |x| of each paddle centre
}

// BallConfig defines the ball radius and speed (units per tick).
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// GameplayConfig defines match rules that are not physics.
type GameplayConfig struct {
	WinScore int `yaml:"win_score"`
}

// RulesConfig toggles the classic behaviours that differ from textbook pong.
// All true reproduces the classic game exactly.
type RulesConfig struct {
	// StopScanPastPaddle stops checking all remaining paddles once the ball
	// is behind one of them. When false only that paddle is skipped.
	StopScanPastPaddle bool `yaml:"stop_scan_past_paddle"`

	// AwardCrossedSide gives the point to the side whose goal line the ball
	// crossed. When false the opponent of that side scores.
	AwardCrossedSide bool `yaml:"award_crossed_side"`

	// ServeResampleQuirk makes a rejected right-hand serve resample from the
	// left-hand range. When false it resamples from its own range.
	ServeResampleQuirk bool `yaml:"serve_resample_quirk"`
}

// ClassicRules returns the rule set of the classic game.
func ClassicRules() RulesConfig {
	return RulesConfig{
		StopScanPastPaddle: true,
		AwardCrossedSide:   true,
		ServeResampleQuirk: true,
	}
}

// TunedRules returns the rule set with every classic quirk corrected.
func TunedRules() RulesConfig {
	return RulesConfig{}
}

// KeysConfig binds terminal key names (as reported by Bubble Tea) to actions.
type KeysConfig struct {
	LeftUp    []string `yaml:"left_up"`
	LeftDown  []string `yaml:"left_down"`
	RightUp   []string `yaml:"right_up"`
	RightDown []string `yaml:"right_down"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Back      []string `yaml:"back"`
	Quit      []string `yaml:"quit"`
}

// InputConfig tunes how terminal key presses become held keys.
type InputConfig struct {
	// HoldTicks is how many ticks a paddle key stays down after its last
	// press event. Terminals report repeats, never releases, and the first
	// repeat arrives only after the OS repeat delay, so the hold must outlast
	// that delay for a held key to move its paddle without a gap.
	HoldTicks int `yaml:"hold_ticks"`
}
