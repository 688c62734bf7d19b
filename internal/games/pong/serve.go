package pong

import "math"

// Rand is the randomness the simulation consumes. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Serve ranges and the near-horizontal exclusion band around each.
const (
	serveBand = 0.1

	leftServeMin  = -math.Pi / 3
	leftServeMax  = math.Pi / 3
	rightServeMin = 2 * math.Pi / 3
	rightServeMax = 4 * math.Pi / 3
)

// uniform draws from [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// ServeDirection picks a serve direction for a fresh ball: a fair coin
// chooses the serving side, then ServeDirectionFor draws the angle.
func ServeDirection(rng Rand, resampleQuirk bool) float64 {
	side := SideRight
	if rng.Float64() < 0.5 {
		side = SideLeft
	}
	return ServeDirectionFor(rng, side, resampleQuirk)
}

// ServeDirectionFor draws a serve angle for one side.
//
// SideLeft draws from (-π/3, π/3) and SideRight from (2π/3, 4π/3); draws
// within 0.1 of the horizontal are rejected so the ball never crawls
// straight across. With resampleQuirk a rejected SideRight draw is replaced
// by a draw from the SideLeft range, which ends the loop on the first try
// and may itself be near horizontal.
func ServeDirectionFor(rng Rand, side Side, resampleQuirk bool) float64 {
	if side == SideLeft {
		d := uniform(rng, leftServeMin, leftServeMax)
		for d >= -serveBand && d <= serveBand {
			d = uniform(rng, leftServeMin, leftServeMax)
		}
		return d
	}

	d := uniform(rng, rightServeMin, rightServeMax)
	for d >= math.Pi-serveBand && d <= math.Pi+serveBand {
		if resampleQuirk {
			d = uniform(rng, leftServeMin, leftServeMax)
		} else {
			d = uniform(rng, rightServeMin, rightServeMax)
		}
	}
	return d
}
