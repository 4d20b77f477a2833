package matrixgame

import (
	"math/rand"
)

// SimulateMatches plays n games in which each player samples a strategy
// from its distribution in r and player 1 then wins with probability
// m[row][column]. Returns the fraction of games won by player 1, which
// converges to r.P1ExpectedPayoff.
func SimulateMatches(m [][]float64, r *Result, n int, rng *rand.Rand) float64 {
	if n <= 0 {
		return 0
	}

	wins := 0
	for i := 0; i < n; i++ {
		row := sampleOne(r.P1Distribution, rng.Float64())
		column := sampleOne(r.P2Distribution, rng.Float64())
		if rng.Float64() < m[row][column] {
			wins++
		}
	}

	return float64(wins) / float64(n)
}

// sampleOne returns the index selected by x in [0, 1) under the
// cumulative distribution of p.
func sampleOne(p []float64, x float64) int {
	cumProb := 0.0
	for i, pi := range p {
		cumProb += pi
		if x < cumProb {
			return i
		}
	}

	// Rounding may leave the total just under 1; fall back to the last
	// strategy with positive weight.
	for i := len(p) - 1; i > 0; i-- {
		if p[i] > 0 {
			return i
		}
	}
	return 0
}
