package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// StepBall advances the ball by speed along its direction.
// Position is recomputed from the bounce origin rather than integrated, so
// rounding error never accumulates between bounces.
func StepBall(b Ball, speed float64) Ball {
	b.Distance += speed
	b.Pos = b.Origin.Add(core.FromAngle(b.Direction).Scale(b.Distance))
	return b
}
