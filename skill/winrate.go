// Package skill generates payoff matrices for a three-strategy game from the
// ELO ratings of the two players.
//
// Each pair of strategies has a baseline win rate at equal skill. The skill
// difference between the players is added to the ELO equivalent of that
// baseline, except that all-in play dampens the effect of skill: by
// AllInCoef when one player goes all-in and by AllInCoef^2 when both do.
package skill

import (
	"math"
)

// eloScale is 400/ln(10): the logistic scale of the ELO model.
const eloScale = 173.718

// WinRate is the expected score of a player rated p1Elo against p2Elo.
func WinRate(p1Elo, p2Elo float64) float64 {
	return 1 / (1 + math.Exp((p2Elo-p1Elo)/eloScale))
}

// EloDiff is the inverse of WinRate: the rating advantage that yields the
// given win rate.
func EloDiff(winRate float64) float64 {
	return -eloScale * math.Log(1/winRate-1)
}
