package matrixgame

import (
	"math"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestNewPayoffMatrix_Invalid(t *testing.T) {
	testCases := map[string][][]float64{
		"empty":         {},
		"empty row":     {{}},
		"too many rows": {{0.1}, {0.2}, {0.3}, {0.4}},
		"too many cols": {{0.1, 0.2, 0.3, 0.4}},
		"ragged":        {{0.1, 0.2}, {0.3}},
		"nan":           {{0.1, math.NaN()}, {0.3, 0.4}},
		"inf":           {{math.Inf(1)}},
	}

	for name, m := range testCases {
		pm, err := NewPayoffMatrix(m)
		if errors.Cause(err) != ErrInvalidMatrix {
			t.Errorf("%s: expected ErrInvalidMatrix, got %v (%+v)", name, err, pm)
		}
	}
}

func TestNewPayoffMatrix_CopiesInput(t *testing.T) {
	m := [][]float64{{0.1, 0.2}, {0.3, 0.4}}
	pm, err := NewPayoffMatrix(m)
	if err != nil {
		t.Fatal(err)
	}

	m[0][0] = 0.9
	if pm.At(0, 0) != 0.1 {
		t.Errorf("payoff matrix aliases caller's slice: got %v", pm.At(0, 0))
	}
	if pm.OriginalRows() != 2 || pm.OriginalColumns() != 2 {
		t.Errorf("original shape %dx%d, expected 2x2", pm.OriginalRows(), pm.OriginalColumns())
	}
}

func TestRemoveKeepsOriginalIndices(t *testing.T) {
	pm, err := NewPayoffMatrix([][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
		{0.7, 0.8, 0.9},
	})
	if err != nil {
		t.Fatal(err)
	}

	pm.removeRow(0, EliminatedRow, 0)
	pm.removeColumn(1, EliminatedColumn, 0)
	if !reflect.DeepEqual(pm.ActiveRows(), []int{1, 2}) {
		t.Errorf("active rows %v, expected [1 2]", pm.ActiveRows())
	}
	if !reflect.DeepEqual(pm.ActiveColumns(), []int{0, 2}) {
		t.Errorf("active columns %v, expected [0 2]", pm.ActiveColumns())
	}

	expected := [][]float64{{0.4, 0.6}, {0.7, 0.9}}
	if !reflect.DeepEqual(pm.Values(), expected) {
		t.Errorf("values %v, expected %v", pm.Values(), expected)
	}

	expectedEvents := []Event{
		{Type: EliminatedRow, Index: 0},
		{Type: EliminatedColumn, Index: 1},
	}
	if !reflect.DeepEqual(pm.Diagnostics(), expectedEvents) {
		t.Errorf("diagnostics %v, expected %v", pm.Diagnostics(), expectedEvents)
	}
}
