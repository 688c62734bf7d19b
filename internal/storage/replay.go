package storage

import (
	"time"

	"github.com/google/uuid"
)

// InputRun is a key mask held for a number of consecutive ticks.
type InputRun struct {
	Mask  uint8
	Ticks int
}

// Replay is a recorded session.
type Replay struct {
	ID        string
	Variant   string
	Seed      int64
	TickRate  int
	Ticks     int    // Simulated ticks, equal to the sum of Inputs runs
	FinalHash uint64 // State hash after the last tick
	Config    []byte // YAML of the game config the session ran under
	CreatedAt time.Time
	Inputs    []InputRun
}

// Cursor returns a reader over the per-tick masks.
func (r Replay) Cursor() *Cursor {
	return &Cursor{runs: r.Inputs}
}

// Cursor walks a replay's input runs one tick at a time.
type Cursor struct {
	runs []InputRun
	run  int
	used int
}

// Next returns the mask for the next tick, or false when the inputs are
// exhausted.
func (c *Cursor) Next() (uint8, bool) {
	for c.run < len(c.runs) && c.used >= c.runs[c.run].Ticks {
		c.run++
		c.used = 0
	}
	if c.run >= len(c.runs) {
		return 0, false
	}
	c.used++
	return c.runs[c.run].Mask, true
}

// Recorder accumulates per-tick masks into run-length encoded inputs.
type Recorder struct {
	variant  string
	seed     int64
	tickRate int
	config   []byte
	runs     []InputRun
	ticks    int
}

// NewRecorder starts a recording for a session of variant seeded with seed.
// cfg is the encoded game config; a replay must be rerun under it.
func NewRecorder(variant string, seed int64, tickRate int, cfg []byte) *Recorder {
	return &Recorder{
		variant:  variant,
		seed:     seed,
		tickRate: tickRate,
		config:   append([]byte(nil), cfg...),
	}
}

// Record appends the mask of one simulated tick.
func (r *Recorder) Record(mask uint8) {
	r.ticks++
	if n := len(r.runs); n > 0 && r.runs[n-1].Mask == mask {
		r.runs[n-1].Ticks++
		return
	}
	r.runs = append(r.runs, InputRun{Mask: mask, Ticks: 1})
}

// Ticks returns the number of ticks recorded so far.
func (r *Recorder) Ticks() int {
	return r.ticks
}

// Finish seals the recording with the final state hash and assigns an ID.
func (r *Recorder) Finish(finalHash uint64) Replay {
	inputs := make([]InputRun, len(r.runs))
	copy(inputs, r.runs)
	return Replay{
		ID:        uuid.NewString(),
		Variant:   r.variant,
		Seed:      r.seed,
		TickRate:  r.tickRate,
		Ticks:     r.ticks,
		FinalHash: finalHash,
		Config:    r.config,
		CreatedAt: time.Now(),
		Inputs:    inputs,
	}
}
