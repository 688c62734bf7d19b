package pong

import "github.com/vovakirdan/tui-pong/internal/config"

// StepPaddle moves a paddle centre by one speed increment for the intent,
// then keeps it inside the arena.
//
// The boundary is not a hard clamp: when an edge reaches a wall the paddle
// takes one step of the same size back, every tick, with or without input.
// A paddle pressed against a wall therefore settles within one step of it.
func StepPaddle(y float64, intent Intent, p config.PaddleConfig, arena config.ArenaConfig) float64 {
	switch intent {
	case IntentUp:
		y += p.Speed
	case IntentDown:
		y -= p.Speed
	}

	half := p.Length / 2
	if y+half >= arena.HalfHeight() {
		y -= p.Speed
	} else if y-half <= -arena.HalfHeight() {
		y += p.Speed
	}
	return y
}
