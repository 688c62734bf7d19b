package pong

import (
	"math"
	"math/rand"
	"testing"
)

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestServeDirectionSequence(t *testing.T) {
	tests := []struct {
		name  string
		vals  []float64
		quirk bool
		want  float64
		draws int
	}{
		{"left first try", []float64{0.2, 0.75}, true, math.Pi / 6, 2},
		{"left rejects horizontal", []float64{0.2, 0.5, 0.75}, true, math.Pi / 6, 3},
		{"right first try", []float64{0.7, 0.0}, true, 2 * math.Pi / 3, 2},
		{"right quirk draws from left range", []float64{0.7, 0.5, 0.75}, true, math.Pi / 6, 3},
		{"right resamples own range", []float64{0.7, 0.5, 0.0}, false, 2 * math.Pi / 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &seqRand{vals: tt.vals}
			got := ServeDirection(rng, tt.quirk)
			if !approx(got, tt.want) {
				t.Errorf("ServeDirection = %v, expected %v", got, tt.want)
			}
			if rng.i != tt.draws {
				t.Errorf("draws = %d, expected %d", rng.i, tt.draws)
			}
		})
	}
}

func TestServeLeftRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		d := ServeDirectionFor(rng, SideLeft, true)
		if d <= -math.Pi/3 || d >= math.Pi/3 {
			t.Fatalf("left serve %v outside (-π/3, π/3)", d)
		}
		if math.Abs(d) <= serveBand {
			t.Fatalf("left serve %v within the horizontal band", d)
		}
	}
}

func TestServeRightRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		d := ServeDirectionFor(rng, SideRight, false)
		if d < 2*math.Pi/3 || d >= 4*math.Pi/3 {
			t.Fatalf("right serve %v outside [2π/3, 4π/3)", d)
		}
		if math.Abs(d-math.Pi) <= serveBand {
			t.Fatalf("right serve %v within the horizontal band", d)
		}
	}
}

func TestServeRightQuirk(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	fromLeft := 0
	for i := 0; i < 10000; i++ {
		d := ServeDirectionFor(rng, SideRight, true)
		if d >= math.Pi-serveBand && d <= math.Pi+serveBand {
			t.Fatalf("quirk serve %v within [π-0.1, π+0.1]", d)
		}
		switch {
		case d >= 2*math.Pi/3 && d < 4*math.Pi/3:
		case d >= -math.Pi/3 && d < math.Pi/3:
			fromLeft++
		default:
			t.Fatalf("quirk serve %v in neither range", d)
		}
	}
	// About 9.5% of right draws land in the band.
	if fromLeft == 0 {
		t.Error("expected some right serves to be replaced by left-range draws")
	}
}

func TestServeCoinIsFair(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	left := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if math.Cos(ServeDirection(rng, false)) > 0 {
			left++
		}
	}
	if left < n*45/100 || left > n*55/100 {
		t.Errorf("left-range serves = %d of %d, expected roughly half", left, n)
	}
}
