package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	v := Vec2{X: 1, Y: -2}.Add(Vec2{X: 3, Y: 4}).Scale(0.5)
	if v.X != 2 || v.Y != 1 {
		t.Errorf("(1,-2)+(3,4) scaled by 0.5 = %+v, expected (2, 1)", v)
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		x, y  float64
	}{
		{"positive x", 0, 1, 0},
		{"positive y", math.Pi / 2, 0, 1},
		{"negative x", math.Pi, -1, 0},
		{"negative y", 3 * math.Pi / 2, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FromAngle(tc.theta)
			if math.Abs(v.X-tc.x) > 1e-12 || math.Abs(v.Y-tc.y) > 1e-12 {
				t.Errorf("FromAngle(%f) = %+v, expected (%f, %f)", tc.theta, v, tc.x, tc.y)
			}
		})
	}
}

func TestVec2IsFinite(t *testing.T) {
	if !(Vec2{X: 1, Y: 2}).IsFinite() {
		t.Error("(1, 2) should be finite")
	}
	if (Vec2{X: math.NaN()}).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if (Vec2{Y: math.Inf(-1)}).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
