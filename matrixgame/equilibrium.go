// Package matrixgame computes mixed-strategy equilibria of constant-sum
// games with up to three strategies per player.
package matrixgame

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Result is a mixed-strategy equilibrium. Distributions are indexed by
// original strategy index and are zero for eliminated strategies.
type Result struct {
	P1Distribution   []float64
	P2Distribution   []float64
	P1ExpectedPayoff float64
	P2ExpectedPayoff float64
	// Diagnostics recorded while solving, in order.
	Diagnostics []Event
}

// Solve constructs a PayoffMatrix from m and solves it.
func Solve(m [][]float64) (*Result, error) {
	pm, err := NewPayoffMatrix(m)
	if err != nil {
		return nil, err
	}

	return pm.Solve()
}

// Solve reduces the matrix to its rationalizable strategies and solves the
// remaining indifference system. Whenever the solution assigns a negative
// probability, the offending row and/or column is removed and the matrix is
// reduced and solved again. Each retry removes at least one strategy, so the
// loop runs at most 2*MaxStrategies times.
func (pm *PayoffMatrix) Solve() (*Result, error) {
	for {
		pm.ReduceToFixedPoint()

		nRows, nColumns := pm.NumRows(), pm.NumColumns()
		if nRows == 1 && nColumns == 1 {
			glog.V(1).Infof("Solved with pure strategies (%d, %d)", pm.rows[0], pm.columns[0])
			return pm.pureResult(), nil
		}

		solve, err := solverFor(nRows, nColumns)
		if err != nil {
			return nil, errors.Wrapf(err, "rows %v, columns %v", pm.rows, pm.columns)
		}

		values := pm.Values()
		p2, err := solve(values)
		if err != nil {
			return nil, err
		}
		pm.checkConsistency(2, p2)

		p1, err := solve(ComplementTranspose(values))
		if err != nil {
			return nil, err
		}
		pm.checkConsistency(1, p1)

		if pm.removeNegative(p1.Distribution, p2.Distribution) {
			continue
		}

		glog.V(1).Infof("Solved with a mix of %d strategies", nRows)
		return pm.mixedResult(p1, p2), nil
	}
}

// checkConsistency records a warning if the solution for the given player's
// distribution leaves the opponent's strategies not indifferent.
func (pm *PayoffMatrix) checkConsistency(player int, s Solution) {
	if !s.Consistent() {
		pm.record(Event{Type: ConsistencyWarning, Index: -1, Player: player, Value: s.Residual})
	}
}

// removeNegative removes the row with the most negative probability in p1
// and the column with the most negative probability in p2, if any.
// Reports whether anything was removed.
func (pm *PayoffMatrix) removeNegative(p1, p2 []float64) bool {
	removed := false
	if i, p := argMin(p1); p < 0 {
		pm.removeRow(i, NegativeRow, p)
		removed = true
	}

	if j, p := argMin(p2); p < 0 {
		pm.removeColumn(j, NegativeColumn, p)
		removed = true
	}

	return removed
}

func (pm *PayoffMatrix) pureResult() *Result {
	v := pm.At(0, 0)
	result := pm.newResult()
	result.P1Distribution[pm.rows[0]] = 1
	result.P2Distribution[pm.columns[0]] = 1
	result.P1ExpectedPayoff = v
	result.P2ExpectedPayoff = 1 - v
	return result
}

// mixedResult assembles the result from the solution for player 1's
// distribution (solved on the complement-transpose) and for player 2's
// distribution (solved on the values). The latter makes player 1
// indifferent, so its payoff is player 1's expected payoff.
func (pm *PayoffMatrix) mixedResult(p1, p2 Solution) *Result {
	result := pm.newResult()
	for i, row := range pm.rows {
		result.P1Distribution[row] = p1.Distribution[i]
	}
	for j, column := range pm.columns {
		result.P2Distribution[column] = p2.Distribution[j]
	}
	result.P1ExpectedPayoff = p2.Payoff
	result.P2ExpectedPayoff = p1.Payoff
	return result
}

func (pm *PayoffMatrix) newResult() *Result {
	return &Result{
		P1Distribution: make([]float64, pm.OriginalRows()),
		P2Distribution: make([]float64, pm.OriginalColumns()),
		Diagnostics:    pm.Diagnostics(),
	}
}

type solver func([][]float64) (Solution, error)

func solverFor(nRows, nColumns int) (solver, error) {
	switch {
	case nRows == 2 && nColumns == 2:
		return SolveTwo, nil
	case nRows == 3 && nColumns == 3:
		return SolveThree, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedShape, "%dx%d", nRows, nColumns)
	}
}

func argMin(vs []float64) (int, float64) {
	bestIdx := 0
	for i, v := range vs {
		if v < vs[bestIdx] {
			bestIdx = i
		}
	}

	return bestIdx, vs[bestIdx]
}
