package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a match.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LeftScore  int  // Points of the left paddle
	RightScore int  // Points of the right paddle
	Tick       int  // Simulated ticks since the session started
	GameOver   bool // Whether a side reached the winning score
	Paused     bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventPoint    EventKind = iota // A side scored
	EventServe                     // The ball was re-served from the centre
	EventFinished                  // A side reached the winning score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPoint:
		return "point"
	case EventServe:
		return "serve"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for the host to react to (logging, UI).
type Event struct {
	Kind  EventKind
	Side  string // "left" or "right" where applicable
	Score int    // Score of Side after the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
