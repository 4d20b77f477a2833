package matrixgame

import (
	"math"

	"github.com/pkg/errors"
)

// MaxStrategies is the largest number of strategies per player that the
// closed-form solvers support.
const MaxStrategies = 3

// PayoffMatrix holds player 1's payoffs for a constant-sum game where player
// 2 receives 1 - payoff, together with the original row and column indices
// that are still in play.
//
// The original matrix is never modified. Eliminating a strategy replaces the
// corresponding active-index slice with a new one, so positions within the
// surviving sub-matrix are always derived from the current slices.
type PayoffMatrix struct {
	original [][]float64
	rows     []int
	columns  []int
	events   []Event
}

// NewPayoffMatrix copies m and returns a PayoffMatrix with every row and
// column active. m must be non-empty, rectangular, finite and have at most
// MaxStrategies rows and columns.
func NewPayoffMatrix(m [][]float64) (*PayoffMatrix, error) {
	if len(m) == 0 || len(m) > MaxStrategies {
		return nil, errors.Wrapf(ErrInvalidMatrix, "%d rows, want 1-%d", len(m), MaxStrategies)
	}

	nColumns := len(m[0])
	if nColumns == 0 || nColumns > MaxStrategies {
		return nil, errors.Wrapf(ErrInvalidMatrix, "%d columns, want 1-%d", nColumns, MaxStrategies)
	}

	original := make([][]float64, len(m))
	for i, row := range m {
		if len(row) != nColumns {
			return nil, errors.Wrapf(ErrInvalidMatrix, "row %d has %d columns, expected %d",
				i, len(row), nColumns)
		}

		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrInvalidMatrix, "entry (%d, %d) is %v", i, j, v)
			}
		}

		original[i] = append([]float64(nil), row...)
	}

	return &PayoffMatrix{
		original: original,
		rows:     seq(len(m)),
		columns:  seq(nColumns),
	}, nil
}

func (pm *PayoffMatrix) NumRows() int    { return len(pm.rows) }
func (pm *PayoffMatrix) NumColumns() int { return len(pm.columns) }

func (pm *PayoffMatrix) OriginalRows() int    { return len(pm.original) }
func (pm *PayoffMatrix) OriginalColumns() int { return len(pm.original[0]) }

// ActiveRows returns the original indices of the surviving rows, in order.
func (pm *PayoffMatrix) ActiveRows() []int {
	return append([]int(nil), pm.rows...)
}

// ActiveColumns returns the original indices of the surviving columns, in order.
func (pm *PayoffMatrix) ActiveColumns() []int {
	return append([]int(nil), pm.columns...)
}

// At returns the payoff at surviving position (i, j).
func (pm *PayoffMatrix) At(i, j int) float64 {
	return pm.original[pm.rows[i]][pm.columns[j]]
}

// Values materializes the surviving sub-matrix.
func (pm *PayoffMatrix) Values() [][]float64 {
	result := make([][]float64, len(pm.rows))
	for i := range pm.rows {
		result[i] = make([]float64, len(pm.columns))
		for j := range pm.columns {
			result[i][j] = pm.At(i, j)
		}
	}

	return result
}

func (pm *PayoffMatrix) removeRow(pos int, reason EventType, p float64) {
	idx := pm.rows[pos]
	pm.rows = without(pm.rows, pos)
	pm.record(Event{Type: reason, Index: idx, Value: p})
}

func (pm *PayoffMatrix) removeColumn(pos int, reason EventType, p float64) {
	idx := pm.columns[pos]
	pm.columns = without(pm.columns, pos)
	pm.record(Event{Type: reason, Index: idx, Value: p})
}

func seq(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// without returns a new slice with position pos left out.
func without(indices []int, pos int) []int {
	result := make([]int, 0, len(indices)-1)
	result = append(result, indices[:pos]...)
	return append(result, indices[pos+1:]...)
}
