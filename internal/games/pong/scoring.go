package pong

import "github.com/vovakirdan/tui-pong/internal/config"

// CrossedGoal reports which goal line the ball centre has reached, using a
// margin of half the ball radius. The right line is checked first.
func CrossedGoal(x float64, cfg config.PongConfig) (Side, bool) {
	margin := cfg.Ball.Radius / 2
	switch {
	case x+margin >= cfg.Arena.HalfWidth():
		return SideRight, true
	case x-margin <= -cfg.Arena.HalfWidth():
		return SideLeft, true
	}
	return SideLeft, false
}

// Scorer returns the side awarded a point when the ball crosses the goal
// line of side crossed. Classic rules credit the crossed side itself.
func Scorer(crossed Side, rules config.RulesConfig) Side {
	if rules.AwardCrossedSide {
		return crossed
	}
	return crossed.Opponent()
}

// resetQueue holds ball reset signals until the end of the tick.
type resetQueue struct {
	pending int
}

// Push records one reset signal.
func (q *resetQueue) Push() {
	q.pending++
}

// Drain calls fn once per pending signal and empties the queue.
func (q *resetQueue) Drain(fn func()) int {
	n := q.pending
	for ; q.pending > 0; q.pending-- {
		fn()
	}
	return n
}
