package skill

type Strategy int

const (
	AllIn Strategy = iota
	Standard
	Defensive
)

const NumStrategies = 3

var strategyStr = [...]string{
	"AllIn",
	"Standard",
	"Defensive",
}

func (s Strategy) String() string {
	return strategyStr[s]
}

// Strategies returns all strategies in matrix order.
func Strategies() []Strategy {
	return []Strategy{AllIn, Standard, Defensive}
}

type matchup struct {
	p1, p2 Strategy
}

// baseWinRates are player 1's win rates at equal skill. The reverse
// matchups are the complements.
var baseWinRates = map[matchup]float64{
	{AllIn, Defensive}:    0.35,
	{Defensive, Standard}: 0.40,
	{AllIn, Standard}:     0.55,
}

// baseOffset returns the ELO advantage that player 1's strategy has over
// player 2's at equal skill.
func baseOffset(p1, p2 Strategy) float64 {
	if p1 == p2 {
		return 0
	}
	if w, ok := baseWinRates[matchup{p1, p2}]; ok {
		return EloDiff(w)
	}
	return -EloDiff(baseWinRates[matchup{p2, p1}])
}
