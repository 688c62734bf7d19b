package pong

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// TickReport describes what happened during one Simulation.Step.
type TickReport struct {
	Collision Collision
	Points    []Side // Sides credited with a point this tick
	Serves    int    // Ball resets processed this tick
	Finished  bool   // True only on the tick the winning score is reached
}

// Simulation is the explicit context for a pong session. It owns the world
// and advances it one fixed tick at a time. It is not safe for concurrent use.
type Simulation struct {
	cfg      config.PongConfig
	rng      Rand
	world    World
	resets   resetQueue
	tick     int
	finished bool
	winner   Side
}

// NewSimulation starts a session: paddles centred, scores zero and the ball
// served from the origin in a random direction.
func NewSimulation(cfg config.PongConfig, rng Rand) *Simulation {
	return &Simulation{
		cfg:   cfg,
		rng:   rng,
		world: NewWorld(cfg, ServeDirection(rng, cfg.Rules.ServeResampleQuirk)),
	}
}

// Step advances the session by one tick. Order: input mapping, paddle
// motion, ball motion, collision, scoring, ball reset, win check. After the
// session has finished Step does nothing.
func (s *Simulation) Step(keys KeyState) TickReport {
	var report TickReport
	if s.finished {
		return report
	}
	s.tick++

	intents := MapIntents(keys)
	for _, side := range Sides {
		p := s.world.Paddle(side)
		p.Pos.Y = StepPaddle(p.Pos.Y, intents[side], s.cfg.Paddle, s.cfg.Arena)
	}

	s.world.Ball = StepBall(s.world.Ball, s.cfg.Ball.Speed)

	report.Collision = DetectCollision(s.world.Ball.Pos, s.world.Paddles, s.cfg)
	s.world.Ball = ResolveCollision(s.world.Ball, report.Collision)

	if crossed, ok := CrossedGoal(s.world.Ball.Pos.X, s.cfg); ok {
		scorer := Scorer(crossed, s.cfg.Rules)
		s.world.Paddle(scorer).Score++
		report.Points = append(report.Points, scorer)
		s.resets.Push()
	}

	report.Serves = s.resets.Drain(func() {
		s.world.Ball = ServeBall(ServeDirection(s.rng, s.cfg.Rules.ServeResampleQuirk))
	})

	for _, side := range Sides {
		if s.world.Paddles[side].Score == s.cfg.Gameplay.WinScore {
			s.finished = true
			s.winner = side
			report.Finished = true
			break
		}
	}

	s.mustBeFinite()
	return report
}

// mustBeFinite panics when the state has left the real numbers. Nothing in
// the simulation can produce that from a valid config.
func (s *Simulation) mustBeFinite() {
	b := s.world.Ball
	ok := b.Pos.IsFinite() && b.Origin.IsFinite() &&
		!math.IsNaN(b.Direction) && !math.IsInf(b.Direction, 0)
	for _, p := range s.world.Paddles {
		ok = ok && p.Pos.IsFinite()
	}
	if !ok {
		panic(fmt.Sprintf("pong: non-finite state at tick %d: %+v", s.tick, s.world))
	}
}

// World returns a copy of the current world.
func (s *Simulation) World() World {
	return s.world
}

// Config returns the configuration the session runs with.
func (s *Simulation) Config() config.PongConfig {
	return s.cfg
}

// Tick returns the number of ticks simulated so far.
func (s *Simulation) Tick() int {
	return s.tick
}

// Score returns a side's points.
func (s *Simulation) Score(side Side) int {
	return s.world.Paddles[side].Score
}

// ScoreText returns a side's points as displayed on the score counter.
func (s *Simulation) ScoreText(side Side) string {
	return strconv.Itoa(s.Score(side))
}

// Finished reports whether a side has reached the winning score.
func (s *Simulation) Finished() bool {
	return s.finished
}

// Winner returns the side that won, if the session has finished.
func (s *Simulation) Winner() (Side, bool) {
	return s.winner, s.finished
}
