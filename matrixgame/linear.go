package matrixgame

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// ConsistencyTolerance bounds the disagreement between the expected
	// payoffs of the rows once the indifference equations are solved.
	ConsistencyTolerance = 1e-6
	// Denominators smaller than this in magnitude are treated as zero.
	degenerateEpsilon = 1e-12
)

// Solution of the indifference equations for one square payoff matrix.
type Solution struct {
	// Distribution over the columns of the matrix that makes every row
	// yield the same expected payoff.
	Distribution []float64
	// Expected payoff of the first row against Distribution.
	Payoff float64
	// Largest difference between the expected payoffs of any two rows.
	Residual float64
}

// Consistent reports whether the rows are indifferent within ConsistencyTolerance.
func (s Solution) Consistent() bool {
	return s.Residual <= ConsistencyTolerance
}

// SolveTwo solves
//
//	a*m00 + (1-a)*m01 = a*m10 + (1-a)*m11
//
// for the probability a of the first column of a 2x2 matrix.
func SolveTwo(m [][]float64) (Solution, error) {
	denom := m[0][0] - m[1][0] - m[0][1] + m[1][1]
	if math.Abs(denom) < degenerateEpsilon {
		return Solution{}, errors.Wrapf(ErrDegenerateSystem,
			"2x2 denominator is %g for %v", denom, m)
	}

	a := (m[1][1] - m[0][1]) / denom
	return newSolution(m, []float64{a, 1 - a}), nil
}

// SolveThree solves
//
//	a*m00 + b*m01 + (1-a-b)*m02 =
//	a*m10 + b*m11 + (1-a-b)*m12 =
//	a*m20 + b*m21 + (1-a-b)*m22
//
// for the probabilities (a, b, 1-a-b) of the columns of a 3x3 matrix.
// Subtracting consecutive equations gives the 2x2 system A*(a, b) = B,
// which is solved by elimination.
func SolveThree(m [][]float64) (Solution, error) {
	a00 := m[0][0] - m[1][0] - m[0][2] + m[1][2]
	a01 := m[0][1] - m[1][1] - m[0][2] + m[1][2]
	a10 := m[1][0] - m[2][0] - m[1][2] + m[2][2]
	a11 := m[1][1] - m[2][1] - m[1][2] + m[2][2]
	b0 := m[1][2] - m[0][2]
	b1 := m[2][2] - m[1][2]

	det := a00*a11 - a01*a10
	if math.Abs(det) < degenerateEpsilon {
		return Solution{}, errors.Wrapf(ErrDegenerateSystem,
			"3x3 determinant is %g for %v", det, m)
	}
	if math.Abs(a01) < degenerateEpsilon {
		return Solution{}, errors.Wrapf(ErrDegenerateSystem,
			"3x3 back-substitution coefficient is %g for %v", a01, m)
	}

	a := (a11*b0 - a01*b1) / det
	b := (b0 - a00*a) / a01
	return newSolution(m, []float64{a, b, 1 - a - b}), nil
}

func newSolution(m [][]float64, p []float64) Solution {
	payoffs := rowPayoffs(m, p)
	return Solution{
		Distribution: p,
		Payoff:       payoffs[0],
		Residual:     spread(payoffs),
	}
}

// IndifferenceResidual returns the largest difference between the expected
// payoffs of the rows of m when the columns are played with probabilities p.
func IndifferenceResidual(m [][]float64, p []float64) float64 {
	return spread(rowPayoffs(m, p))
}

func rowPayoffs(m [][]float64, p []float64) []float64 {
	result := make([]float64, len(m))
	for i, row := range m {
		for j, v := range row {
			result[i] += p[j] * v
		}
	}
	return result
}

func spread(vs []float64) float64 {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return hi - lo
}

// ComplementTranspose returns 1 - m^T: player 2's payoffs arranged so that
// player 2 picks rows. Solving it yields player 1's distribution.
func ComplementTranspose(m [][]float64) [][]float64 {
	result := make([][]float64, len(m[0]))
	for j := range result {
		result[j] = make([]float64, len(m))
		for i, row := range m {
			result[j][i] = 1 - row[j]
		}
	}
	return result
}
