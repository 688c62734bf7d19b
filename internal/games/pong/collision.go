package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Collision is the surface the ball hit during a tick.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	default:
		return "none"
	}
}

// DetectCollision classifies the ball's post-motion position against the
// walls and the paddles.
//
// Walls win over paddles. Paddles are scanned in Side order; for each one a
// side-face hit is tested first and a top/bottom hit second, and a later
// match overwrites an earlier one, including across paddles. The top/bottom
// band of (ball speed + paddle speed)/2 turns corner clips into vertical
// bounces. Once the ball is behind a paddle, either that paddle alone or,
// with StopScanPastPaddle, every remaining paddle is skipped.
func DetectCollision(pos core.Vec2, paddles [2]Paddle, cfg config.PongConfig) Collision {
	r := cfg.Ball.Radius
	switch {
	case pos.Y+r >= cfg.Arena.HalfHeight():
		return CollisionTop
	case pos.Y-r <= -cfg.Arena.HalfHeight():
		return CollisionBottom
	}

	halfW := cfg.Paddle.Width / 2
	halfL := cfg.Paddle.Length / 2
	band := (cfg.Ball.Speed + cfg.Paddle.Speed) / 2

	collision := CollisionNone
	for _, p := range paddles {
		if behindPaddle(pos, p, r, halfW) {
			if cfg.Rules.StopScanPastPaddle {
				break
			}
			continue
		}

		// Side faces
		if pos.Y-r <= p.Pos.Y+halfL && pos.Y+r >= p.Pos.Y-halfL {
			switch p.Side {
			case SideRight:
				if pos.X+r >= p.Pos.X-halfW {
					collision = CollisionRight
				}
			case SideLeft:
				if pos.X-r <= p.Pos.X+halfW {
					collision = CollisionLeft
				}
			}
		}

		// Top and bottom faces
		if pos.X+r >= p.Pos.X-halfW && pos.X-r <= p.Pos.X+halfW {
			top := p.Pos.Y + halfL
			bottom := p.Pos.Y - halfL
			switch {
			case pos.Y-r <= top && pos.Y-r >= top-band:
				collision = CollisionTop
			case pos.Y+r >= bottom && pos.Y-r <= bottom+band:
				collision = CollisionBottom
			}
		}
	}
	return collision
}

// behindPaddle reports whether the ball has passed the paddle's far edge.
func behindPaddle(pos core.Vec2, p Paddle, r, halfW float64) bool {
	if p.Side == SideRight {
		return pos.X+r >= p.Pos.X+halfW
	}
	return pos.X-r <= p.Pos.X-halfW
}

// Reflect returns the direction after bouncing off a surface.
// Angles are not wrapped into any range; only their cosine and sine matter.
func Reflect(direction float64, c Collision) float64 {
	switch c {
	case CollisionTop, CollisionBottom:
		return 2*math.Pi - direction
	case CollisionLeft, CollisionRight:
		return math.Pi - direction
	default:
		return direction
	}
}

// ResolveCollision reflects the ball and restarts its parametric path from
// its current position. CollisionNone leaves the ball untouched.
func ResolveCollision(b Ball, c Collision) Ball {
	if c == CollisionNone {
		return b
	}
	b.Direction = Reflect(b.Direction, c)
	b.Origin = b.Pos
	b.Distance = 0
	return b
}
