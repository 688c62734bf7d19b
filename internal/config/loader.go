package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SourceEmbedded names the embedded default configuration as a source.
const SourceEmbedded = "embedded"

// LoadPong loads pong configuration and reports where it came from.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadPong(customPath string) (PongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("pong.yaml"), filepath.Join("configs", "pong.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg PongConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// Validate checks that the configuration describes a playable arena.
func (c PongConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %gx%g", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Paddle.Length <= 0 || c.Paddle.Width <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %gx%g", ErrInvalidConfig, c.Paddle.Width, c.Paddle.Length)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive, got %g", ErrInvalidConfig, c.Paddle.Speed)
	case c.Paddle.Length >= c.Arena.Height:
		return fmt.Errorf("%w: paddle length %g does not fit arena height %g", ErrInvalidConfig, c.Paddle.Length, c.Arena.Height)
	case c.Paddle.Inset <= 0 || c.Paddle.Inset+c.Paddle.Width/2 >= c.Arena.HalfWidth():
		return fmt.Errorf("%w: paddle inset %g must lie inside the arena", ErrInvalidConfig, c.Paddle.Inset)
	case c.Ball.Radius <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball radius and speed must be positive", ErrInvalidConfig)
	case 2*c.Ball.Radius >= c.Arena.Height:
		return fmt.Errorf("%w: ball radius %g does not fit arena height %g", ErrInvalidConfig, c.Ball.Radius, c.Arena.Height)
	case c.Gameplay.WinScore <= 0:
		return fmt.Errorf("%w: win score must be positive, got %d", ErrInvalidConfig, c.Gameplay.WinScore)
	case c.Input.HoldTicks <= 0:
		return fmt.Errorf("%w: input hold ticks must be positive, got %d", ErrInvalidConfig, c.Input.HoldTicks)
	}

	bindings := map[string][]string{
		"left_up":    c.Keys.LeftUp,
		"left_down":  c.Keys.LeftDown,
		"right_up":   c.Keys.RightUp,
		"right_down": c.Keys.RightDown,
		"quit":       c.Keys.Quit,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: key binding %s is empty", ErrInvalidConfig, name)
		}
	}
	return nil
}
