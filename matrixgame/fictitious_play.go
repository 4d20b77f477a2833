package matrixgame

import (
	"math/rand"

	"github.com/golang/glog"
)

// FictitiousPlay approximates the equilibrium of the constant-sum game with
// player 1 payoffs m by having each player repeatedly best-respond to the
// empirical play of the other. With probability mixingLambda a player
// instead picks a uniformly random strategy. Returns the empirical
// distributions of player 1 and player 2.
func FictitiousPlay(m [][]float64, nIter int, mixingLambda float64, rng *rand.Rand) ([]float64, []float64) {
	p1PlayCounts := make([]int, len(m))
	p2PlayCounts := make([]int, len(m[0]))
	logEvery := max(nIter/10, 1)
	for i := 1; i <= nIter; i++ {
		var p1Selected int
		if mixingLambda > 0 && rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = getP1BestResponse(m, p2PlayCounts)
		}

		var p2Selected int
		if mixingLambda > 0 && rng.Float64() < mixingLambda {
			p2Selected = rng.Intn(len(p2PlayCounts))
		} else {
			p2Selected = getP2BestResponse(m, p1PlayCounts)
		}
		p1PlayCounts[p1Selected]++
		p2PlayCounts[p2Selected]++

		if i%logEvery == 0 {
			glog.V(2).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
			glog.V(2).Infof("After %d iterations, player 2 weights: %v", i, normalize(p2PlayCounts))
		}
	}

	return normalize(p1PlayCounts), normalize(p2PlayCounts)
}

func getP1BestResponse(m [][]float64, p2PlayCounts []int) int {
	utilities := make([]float64, len(m))
	for j, c := range p2PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * m[i][j]
		}
	}

	return argMax(utilities)
}

// Player 2 receives 1 - m, so its best response minimizes player 1's payoff.
func getP2BestResponse(m [][]float64, p1PlayCounts []int) int {
	utilities := make([]float64, len(m[0]))
	for i, c := range p1PlayCounts {
		for j := range utilities {
			utilities[j] -= float64(c) * m[i][j]
		}
	}

	return argMax(utilities)
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	if total == 0 {
		return result
	}
	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

// argMax returns the index of the first maximal element.
func argMax(vs []float64) int {
	bestIdx := 0
	for i, v := range vs {
		if v > vs[bestIdx] {
			bestIdx = i
		}
	}

	return bestIdx
}
