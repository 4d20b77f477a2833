package skill

import (
	"github.com/timpalpant/mixedstrat/matrixgame"
)

// DefaultAllInCoef halves the effect of skill on games with one all-in player.
const DefaultAllInCoef = 0.5

// Matrix holds player 1's win rate for every pair of strategies.
type Matrix struct {
	SkillDiff float64
	AllInCoef float64
	winRates  [NumStrategies][NumStrategies]float64
}

// NewMatrix computes the win rates for players rated p1Elo and p2Elo.
func NewMatrix(p1Elo, p2Elo, allInCoef float64) *Matrix {
	m := &Matrix{
		SkillDiff: p1Elo - p2Elo,
		AllInCoef: allInCoef,
	}

	for _, s1 := range Strategies() {
		for _, s2 := range Strategies() {
			skillDiff := m.SkillDiff
			if s1 == AllIn && s2 == AllIn {
				skillDiff *= allInCoef * allInCoef
			} else if s1 == AllIn || s2 == AllIn {
				skillDiff *= allInCoef
			}

			m.winRates[s1][s2] = WinRate(skillDiff+baseOffset(s1, s2), 0)
		}
	}

	return m
}

func (m *Matrix) WinRate(p1, p2 Strategy) float64 {
	return m.winRates[p1][p2]
}

// Payoffs returns the win rates as a payoff matrix for matrixgame, with rows
// and columns in Strategies() order.
func (m *Matrix) Payoffs() [][]float64 {
	result := make([][]float64, NumStrategies)
	for i := range m.winRates {
		result[i] = append([]float64(nil), m.winRates[i][:]...)
	}
	return result
}

// Solve returns the mixed-strategy equilibrium of the matrix.
func (m *Matrix) Solve() (*matrixgame.Result, error) {
	return matrixgame.Solve(m.Payoffs())
}
