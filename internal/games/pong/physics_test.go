package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestStepPaddle(t *testing.T) {
	cfg := config.DefaultPongConfig()

	tests := []struct {
		name   string
		y      float64
		intent Intent
		want   float64
	}{
		{"up from centre", 0, IntentUp, 5},
		{"down from centre", 0, IntentDown, -5},
		{"idle in the middle", 42, IntentNone, 42},
		{"up into top wall steps back", 300, IntentUp, 300},
		{"idle touching top wall is pushed down", 300, IntentNone, 295},
		{"down into bottom wall steps back", -300, IntentDown, -300},
		{"idle touching bottom wall is pushed up", -300, IntentNone, -295},
		{"down away from top wall", 300, IntentDown, 295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepPaddle(tt.y, tt.intent, cfg.Paddle, cfg.Arena)
			if !approx(got, tt.want) {
				t.Errorf("StepPaddle(%v, %v) = %v, expected %v", tt.y, tt.intent, got, tt.want)
			}
		})
	}
}

func TestPaddleSettlesAgainstWall(t *testing.T) {
	cfg := config.DefaultPongConfig()
	half := cfg.Paddle.Length / 2

	y := 0.0
	for i := 0; i < 1000; i++ {
		y = StepPaddle(y, IntentUp, cfg.Paddle, cfg.Arena)
		if i > 100 {
			if y+half >= cfg.Arena.HalfHeight() {
				t.Fatalf("tick %d: paddle edge %v reached the wall", i, y+half)
			}
			if y+half < cfg.Arena.HalfHeight()-cfg.Paddle.Speed {
				t.Fatalf("tick %d: paddle edge %v more than one step from the wall", i, y+half)
			}
		}
	}
}

func TestMapIntents(t *testing.T) {
	tests := []struct {
		keys  KeyState
		left  Intent
		right Intent
	}{
		{KeyState{}, IntentNone, IntentNone},
		{KeyState{LeftUp: true}, IntentUp, IntentNone},
		{KeyState{LeftDown: true, RightUp: true}, IntentDown, IntentUp},
		{KeyState{RightDown: true}, IntentNone, IntentDown},
		{KeyState{LeftUp: true, LeftDown: true, RightDown: true}, IntentNone, IntentDown},
	}

	for _, tt := range tests {
		got := MapIntents(tt.keys)
		if got[SideLeft] != tt.left || got[SideRight] != tt.right {
			t.Errorf("MapIntents(%+v) = %v/%v, expected %v/%v",
				tt.keys, got[SideLeft], got[SideRight], tt.left, tt.right)
		}
	}
}

func TestKeysFromFrame(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionLeftUp)
	in.Set(core.ActionRightDown)
	in.Set(core.ActionPause)

	got := KeysFromFrame(in)
	want := KeyState{LeftUp: true, RightDown: true}
	if got != want {
		t.Errorf("KeysFromFrame = %+v, expected %+v", got, want)
	}
}

func TestStepBallFollowsOrigin(t *testing.T) {
	b := Ball{Origin: core.Vec2{X: 10, Y: 20}, Pos: core.Vec2{X: 10, Y: 20}, Direction: math.Pi / 4}

	for i := 1; i <= 50; i++ {
		b = StepBall(b, 6)
		want := b.Origin.Add(core.FromAngle(b.Direction).Scale(float64(i) * 6))
		if !approx(b.Pos.X, want.X) || !approx(b.Pos.Y, want.Y) {
			t.Fatalf("step %d: Pos = %+v, expected %+v", i, b.Pos, want)
		}
	}
	if !approx(b.Distance, 300) {
		t.Errorf("Distance = %v, expected 300", b.Distance)
	}
}

func centredPaddles(cfg config.PongConfig) [2]Paddle {
	return NewWorld(cfg, 0).Paddles
}

func TestDetectCollision(t *testing.T) {
	cfg := config.DefaultPongConfig()
	paddles := centredPaddles(cfg)

	tests := []struct {
		name string
		pos  core.Vec2
		want Collision
	}{
		{"open field", core.Vec2{X: 0, Y: 0}, CollisionNone},
		{"top wall", core.Vec2{X: 0, Y: 336}, CollisionTop},
		{"bottom wall", core.Vec2{X: 0, Y: -336}, CollisionBottom},
		{"near top wall", core.Vec2{X: 0, Y: 334}, CollisionNone},
		{"right paddle face", core.Vec2{X: 580, Y: 0}, CollisionRight},
		{"left paddle face", core.Vec2{X: -580, Y: 0}, CollisionLeft},
		{"right paddle top band", core.Vec2{X: 590, Y: 60}, CollisionTop},
		{"right paddle bottom band", core.Vec2{X: 590, Y: -60}, CollisionBottom},
		{"left paddle top band", core.Vec2{X: -590, Y: 60}, CollisionTop},
		{"behind right paddle", core.Vec2{X: 600, Y: 0}, CollisionNone},
		{"behind left paddle", core.Vec2{X: -600, Y: 0}, CollisionNone},
		{"wall beats paddle", core.Vec2{X: 590, Y: 340}, CollisionTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCollision(tt.pos, paddles, cfg); got != tt.want {
				t.Errorf("DetectCollision(%+v) = %v, expected %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestDetectCollisionStopsScanBehindPaddle(t *testing.T) {
	// Overlapping paddles so that a ball behind the left paddle also
	// touches the right one.
	cfg := config.DefaultPongConfig()
	cfg.Paddle.Inset = 5
	paddles := centredPaddles(cfg)
	pos := core.Vec2{X: -10, Y: 0}

	if got := DetectCollision(pos, paddles, cfg); got != CollisionNone {
		t.Errorf("classic rules: DetectCollision = %v, expected none", got)
	}

	cfg.Rules = config.TunedRules()
	if got := DetectCollision(pos, paddles, cfg); got != CollisionRight {
		t.Errorf("tuned rules: DetectCollision = %v, expected right", got)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		c    Collision
		dir  float64
		want float64
	}{
		{CollisionTop, math.Pi / 4, 2*math.Pi - math.Pi/4},
		{CollisionBottom, -math.Pi / 4, 2*math.Pi + math.Pi/4},
		{CollisionRight, 0.3, math.Pi - 0.3},
		{CollisionLeft, math.Pi - 0.3, 0.3},
		{CollisionNone, 1.234, 1.234},
	}

	for _, tt := range tests {
		if got := Reflect(tt.dir, tt.c); !approx(got, tt.want) {
			t.Errorf("Reflect(%v, %v) = %v, expected %v", tt.dir, tt.c, got, tt.want)
		}
	}
}

func TestReflectTwiceRestoresHeading(t *testing.T) {
	for _, c := range []Collision{CollisionTop, CollisionBottom, CollisionLeft, CollisionRight} {
		for _, dir := range []float64{0.2, 1, 2.5, -0.7, 4} {
			got := Reflect(Reflect(dir, c), c)
			if !approx(math.Cos(got), math.Cos(dir)) || !approx(math.Sin(got), math.Sin(dir)) {
				t.Errorf("double %v reflection of %v = %v", c, dir, got)
			}
		}
	}
}

func TestReflectFlipsVelocityComponent(t *testing.T) {
	dir := 0.6
	before := core.FromAngle(dir)

	after := core.FromAngle(Reflect(dir, CollisionTop))
	if !approx(after.X, before.X) || !approx(after.Y, -before.Y) {
		t.Errorf("top bounce velocity = %+v, expected x kept and y negated from %+v", after, before)
	}

	after = core.FromAngle(Reflect(dir, CollisionRight))
	if !approx(after.X, -before.X) || !approx(after.Y, before.Y) {
		t.Errorf("right bounce velocity = %+v, expected x negated and y kept from %+v", after, before)
	}
}

func TestResolveCollisionRestartsPath(t *testing.T) {
	b := Ball{Pos: core.Vec2{X: 50, Y: 335}, Origin: core.Vec2{X: 1, Y: 2}, Direction: 1, Distance: 300}

	got := ResolveCollision(b, CollisionTop)
	if got.Origin != b.Pos || got.Pos != b.Pos {
		t.Errorf("Origin = %+v, Pos = %+v, expected both %+v", got.Origin, got.Pos, b.Pos)
	}
	if got.Distance != 0 {
		t.Errorf("Distance = %v, expected 0", got.Distance)
	}
	if !approx(got.Direction, 2*math.Pi-1) {
		t.Errorf("Direction = %v, expected %v", got.Direction, 2*math.Pi-1)
	}

	if same := ResolveCollision(b, CollisionNone); same != b {
		t.Errorf("ResolveCollision(none) = %+v, expected unchanged", same)
	}
}

func TestCrossedGoal(t *testing.T) {
	cfg := config.DefaultPongConfig()

	tests := []struct {
		x       float64
		want    Side
		crossed bool
	}{
		{0, SideLeft, false},
		{692, SideLeft, false},
		{692.5, SideRight, true},
		{800, SideRight, true},
		{-692.5, SideLeft, true},
		{-692, SideLeft, false},
	}

	for _, tt := range tests {
		got, ok := CrossedGoal(tt.x, cfg)
		if ok != tt.crossed || (ok && got != tt.want) {
			t.Errorf("CrossedGoal(%v) = %v, %v, expected %v, %v", tt.x, got, ok, tt.want, tt.crossed)
		}
	}
}

func TestScorer(t *testing.T) {
	classic := config.ClassicRules()
	tuned := config.TunedRules()

	if got := Scorer(SideRight, classic); got != SideRight {
		t.Errorf("classic Scorer(right) = %v, expected right", got)
	}
	if got := Scorer(SideLeft, classic); got != SideLeft {
		t.Errorf("classic Scorer(left) = %v, expected left", got)
	}
	if got := Scorer(SideRight, tuned); got != SideLeft {
		t.Errorf("tuned Scorer(right) = %v, expected left", got)
	}
	if got := Scorer(SideLeft, tuned); got != SideRight {
		t.Errorf("tuned Scorer(left) = %v, expected right", got)
	}
}

func TestResetQueueDrain(t *testing.T) {
	var q resetQueue
	calls := 0

	if n := q.Drain(func() { calls++ }); n != 0 || calls != 0 {
		t.Errorf("empty Drain = %d (calls %d), expected 0", n, calls)
	}

	q.Push()
	q.Push()
	if n := q.Drain(func() { calls++ }); n != 2 || calls != 2 {
		t.Errorf("Drain = %d (calls %d), expected 2", n, calls)
	}
	if n := q.Drain(func() { calls++ }); n != 0 {
		t.Errorf("second Drain = %d, expected 0", n)
	}
}
