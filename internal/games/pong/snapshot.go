package pong

import "math"

// Snapshot contains the complete simulation state for replays and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	LeftY      float64
	RightY     float64
	BallX      float64
	BallY      float64
	OriginX    float64
	OriginY    float64
	Direction  float64
	Distance   float64
	LeftScore  int
	RightScore int
	Finished   bool
}

// Snapshot returns the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	return Snapshot{
		Tick:       uint64(max(0, s.tick)), //nolint:gosec // tick is never negative
		LeftY:      w.Paddles[SideLeft].Pos.Y,
		RightY:     w.Paddles[SideRight].Pos.Y,
		BallX:      w.Ball.Pos.X,
		BallY:      w.Ball.Pos.Y,
		OriginX:    w.Ball.Origin.X,
		OriginY:    w.Ball.Origin.Y,
		Direction:  w.Ball.Direction,
		Distance:   w.Ball.Distance,
		LeftScore:  w.Paddles[SideLeft].Score,
		RightScore: w.Paddles[SideRight].Score,
		Finished:   s.finished,
	}
}

// Hash returns a simple hash of the snapshot for determinism checks.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{
		snap.LeftY, snap.RightY,
		snap.BallX, snap.BallY,
		snap.OriginX, snap.OriginY,
		snap.Direction, snap.Distance,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.LeftScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RightScore) //#nosec G115 -- hash computation
	if snap.Finished {
		h = h*31 + 1
	}
	return h
}
