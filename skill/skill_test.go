package skill

import (
	"math"
	"strings"
	"testing"
)

func TestWinRate(t *testing.T) {
	if w := WinRate(0, 0); w != 0.5 {
		t.Errorf("WinRate(0, 0) = %v, expected 0.5", w)
	}
	if w := WinRate(100, 0); math.Abs(w-0.6400648415943404) > 1e-12 {
		t.Errorf("WinRate(100, 0) = %v, expected 0.6401", w)
	}
	if w := WinRate(100, 0) + WinRate(0, 100); math.Abs(w-1) > 1e-12 {
		t.Errorf("win rates of both players sum to %v, expected 1", w)
	}
}

func TestEloDiff(t *testing.T) {
	if d := EloDiff(0.35); math.Abs(d-(-107.53825320591233)) > 1e-9 {
		t.Errorf("EloDiff(0.35) = %v, expected -107.54", d)
	}

	for _, w := range []float64{0.1, 0.35, 0.5, 0.55, 0.9} {
		if got := WinRate(EloDiff(w), 0); math.Abs(got-w) > 1e-12 {
			t.Errorf("WinRate(EloDiff(%v)) = %v", w, got)
		}
	}
}

func TestNewMatrix_EqualSkill(t *testing.T) {
	m := NewMatrix(1500, 1500, DefaultAllInCoef)
	expected := [][]float64{
		{0.5, 0.55, 0.35},
		{0.45, 0.5, 0.6},
		{0.65, 0.4, 0.5},
	}

	payoffs := m.Payoffs()
	for i := range expected {
		for j := range expected[i] {
			if math.Abs(payoffs[i][j]-expected[i][j]) > 1e-9 {
				t.Errorf("%v vs %v: %v, expected %v", Strategy(i), Strategy(j),
					payoffs[i][j], expected[i][j])
			}
		}
	}
}

func TestNewMatrix_SkillDifference(t *testing.T) {
	m := NewMatrix(-300, 0, DefaultAllInCoef)
	testCases := []struct {
		p1, p2   Strategy
		expected float64
	}{
		{AllIn, AllIn, 0.3937122991566965},
		{AllIn, Defensive, 0.18504896164512372},
		{Standard, Standard, 0.15097982129380713},
		{Defensive, Standard, 0.10598718985723059},
		{Defensive, AllIn, 0.43919514146105554},
	}

	for _, tc := range testCases {
		if w := m.WinRate(tc.p1, tc.p2); math.Abs(w-tc.expected) > 1e-9 {
			t.Errorf("%v vs %v: %v, expected %v", tc.p1, tc.p2, w, tc.expected)
		}
	}
}

func TestMatrixSolve(t *testing.T) {
	testCases := []struct {
		skillDiff float64
		p1, p2    []float64
		payoff    float64
	}{
		{0, []float64{1.0 / 3, 0.5, 1.0 / 6}, []float64{1.0 / 3, 0.5, 1.0 / 6}, 0.5},
		{-500, []float64{1, 0, 0}, []float64{0, 0, 1}, 0.1132311370989007},
		{-300,
			[]float64{0.2776240872974727, 0.7223759127025273, 0},
			[]float64{0, 0.11890917402040463, 0.8810908259795953},
			0.20348731178275647},
		{300,
			[]float64{0, 0.11890917402040439, 0.8810908259795956},
			[]float64{0.2776240872974727, 0.7223759127025273, 0},
			0.7965126882172435},
	}

	for _, tc := range testCases {
		result, err := NewMatrix(tc.skillDiff, 0, DefaultAllInCoef).Solve()
		if err != nil {
			t.Fatalf("skill diff %v: %v", tc.skillDiff, err)
		}

		for i := range tc.p1 {
			if math.Abs(result.P1Distribution[i]-tc.p1[i]) > 1e-6 ||
				math.Abs(result.P2Distribution[i]-tc.p2[i]) > 1e-6 {
				t.Errorf("skill diff %v: got %v / %v, expected %v / %v", tc.skillDiff,
					result.P1Distribution, result.P2Distribution, tc.p1, tc.p2)
				break
			}
		}
		if math.Abs(result.P1ExpectedPayoff-tc.payoff) > 1e-6 {
			t.Errorf("skill diff %v: payoff %v, expected %v",
				tc.skillDiff, result.P1ExpectedPayoff, tc.payoff)
		}
	}
}

func TestFormat(t *testing.T) {
	m := NewMatrix(0, 0, DefaultAllInCoef)
	table := m.String()
	lines := strings.Split(strings.TrimSpace(table), "\n")
	if len(lines) != NumStrategies+1 {
		t.Fatalf("expected header and %d rows, got:\n%s", NumStrategies, table)
	}
	if !strings.HasPrefix(lines[1], "AllIn") || !strings.HasSuffix(lines[1], "35%") {
		t.Errorf("unexpected first row: %q", lines[1])
	}

	result, err := m.Solve()
	if err != nil {
		t.Fatal(err)
	}
	summary := FormatResult(result)
	expected := "P1: (exp-payoff: 0.50) | AllIn: 33.33% | Standard: 50.00% | Defensive: 16.67%"
	if !strings.HasPrefix(summary, expected+"\n") {
		t.Errorf("summary %q, expected to start with %q", summary, expected)
	}
}
