package matrixgame

// CheckRows removes at most one row that is not player 1's best response
// to any surviving column. Ties go to the first surviving row, and the
// lowest unjustified row is the one removed. Reports whether a row was
// removed.
func (pm *PayoffMatrix) CheckRows() bool {
	justified := make([]bool, pm.NumRows())
	for j := 0; j < pm.NumColumns(); j++ {
		best := 0
		for i := 1; i < pm.NumRows(); i++ {
			if pm.At(i, j) > pm.At(best, j) {
				best = i
			}
		}
		justified[best] = true
	}

	for i, ok := range justified {
		if !ok {
			pm.removeRow(i, EliminatedRow, 0)
			return true
		}
	}

	return false
}

// CheckColumns is the column analogue of CheckRows. Player 2 receives
// 1 - payoff, so its best response to a row is the column minimizing
// player 1's payoff.
func (pm *PayoffMatrix) CheckColumns() bool {
	justified := make([]bool, pm.NumColumns())
	for i := 0; i < pm.NumRows(); i++ {
		best := 0
		for j := 1; j < pm.NumColumns(); j++ {
			if pm.At(i, j) < pm.At(i, best) {
				best = j
			}
		}
		justified[best] = true
	}

	for j, ok := range justified {
		if !ok {
			pm.removeColumn(j, EliminatedColumn, 0)
			return true
		}
	}

	return false
}

// ReduceToFixedPoint alternates CheckRows and CheckColumns until a pass
// removes nothing. Afterwards every surviving row is a best response to some
// surviving column and vice versa.
func (pm *PayoffMatrix) ReduceToFixedPoint() {
	for {
		rowRemoved := pm.CheckRows()
		columnRemoved := pm.CheckColumns()
		if !rowRemoved && !columnRemoved {
			return
		}
	}
}
