// Package pong implements a two-player hotseat pong match.
//
// The simulation is a deterministic fixed-tick state machine: paddles move
// from held keys, the ball travels parametrically from its last bounce
// origin, collisions reflect its direction, crossing a goal line scores and
// re-serves, and the match ends when a side reaches the winning score.
// Arena space is centred on the origin with +y pointing up.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies a paddle and the goal line on its half of the arena.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Sides lists both sides in paddle iteration order.
var Sides = [2]Side{SideLeft, SideRight}

// String returns the lower-case side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Paddle is one player's paddle. Its x never changes during a session.
type Paddle struct {
	Side  Side
	Pos   core.Vec2 // Centre of the paddle
	Score int
}

// Ball is the single ball.
// Pos always equals Origin + Distance*(cos Direction, sin Direction) after a motion step.
type Ball struct {
	Pos       core.Vec2
	Origin    core.Vec2 // Bounce origin: position at the last collision or serve
	Direction float64   // Radians counterclockwise from +x, never normalized
	Distance  float64   // Travel since Origin
}

// ServeBall returns a ball at the arena centre heading in direction.
func ServeBall(direction float64) Ball {
	return Ball{Direction: direction}
}

// World owns both paddles and the ball.
type World struct {
	Paddles [2]Paddle // Indexed by Side
	Ball    Ball
}

// NewWorld places the paddles at their insets with zero scores and serves
// the ball in the given direction.
func NewWorld(cfg config.PongConfig, direction float64) World {
	return World{
		Paddles: [2]Paddle{
			{Side: SideLeft, Pos: core.Vec2{X: -cfg.Paddle.Inset}},
			{Side: SideRight, Pos: core.Vec2{X: cfg.Paddle.Inset}},
		},
		Ball: ServeBall(direction),
	}
}

// Paddle returns the paddle for a side.
func (w *World) Paddle(s Side) *Paddle {
	return &w.Paddles[s]
}
