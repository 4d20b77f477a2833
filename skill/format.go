package skill

import (
	"fmt"
	"strings"

	"github.com/timpalpant/mixedstrat/matrixgame"
)

// String renders the win rates as a table:
//
//	[P1↓ P2→]        AllIn   Standard  Defensive
//	AllIn              50%        55%        35%
//	Standard           45%        50%        60%
//	Defensive          65%        40%        50%
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-11s", "[P1↓ P2→]")
	for _, s := range Strategies() {
		fmt.Fprintf(&sb, "%11s", s)
	}
	sb.WriteString("\n")

	for _, s1 := range Strategies() {
		fmt.Fprintf(&sb, "%-11s", s1)
		for _, s2 := range Strategies() {
			fmt.Fprintf(&sb, "%10.0f%%", 100*m.WinRate(s1, s2))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatResult summarizes an equilibrium of a skill Matrix, one line per player.
func FormatResult(r *matrixgame.Result) string {
	return formatPlayer("P1", r.P1ExpectedPayoff, r.P1Distribution) + "\n" +
		formatPlayer("P2", r.P2ExpectedPayoff, r.P2Distribution)
}

func formatPlayer(name string, payoff float64, dist []float64) string {
	parts := make([]string, len(dist))
	for i, p := range dist {
		parts[i] = fmt.Sprintf("%v: %.2f%%", Strategy(i), 100*p)
	}

	return fmt.Sprintf("%s: (exp-payoff: %.2f) | %s", name, payoff, strings.Join(parts, " | "))
}
