package matrixgame

import (
	"math"
	"math/rand"
	"testing"
)

func TestFictitiousPlay_MatchesClosedForm(t *testing.T) {
	m := [][]float64{
		{0.5, 0.55, 0.35},
		{0.45, 0.5, 0.6},
		{0.65, 0.4, 0.5},
	}

	result, err := Solve(m)
	if err != nil {
		t.Fatal(err)
	}

	p1, p2 := FictitiousPlay(m, 10000, 0, rand.New(rand.NewSource(1234)))
	t.Logf("Player 1 fictitious play policy: %v", p1)
	t.Logf("Player 2 fictitious play policy: %v", p2)
	for i := range p1 {
		if math.Abs(p1[i]-result.P1Distribution[i]) > 0.03 {
			t.Errorf("player 1: %v, expected ~%v", p1, result.P1Distribution)
			break
		}
	}
	for j := range p2 {
		if math.Abs(p2[j]-result.P2Distribution[j]) > 0.03 {
			t.Errorf("player 2: %v, expected ~%v", p2, result.P2Distribution)
			break
		}
	}
}

func TestFictitiousPlay_PureStrategy(t *testing.T) {
	m := [][]float64{{0.5, 0.3}, {0.4, 0.2}}
	p1, p2 := FictitiousPlay(m, 1000, 0.05, rand.New(rand.NewSource(1)))
	if p1[0] < 0.9 || p2[1] < 0.9 {
		t.Errorf("expected play to concentrate on (0, 1), got %v, %v", p1, p2)
	}
}
