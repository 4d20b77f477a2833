// Package sweep solves the skill game over a range of ELO differences.
package sweep

import (
	"expvar"
	"math"

	"github.com/golang/glog"
	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/timpalpant/mixedstrat/matrixgame"
	"github.com/timpalpant/mixedstrat/skill"
)

var (
	cacheHits   = expvar.NewInt("sweep/cache_hits")
	cacheMisses = expvar.NewInt("sweep/cache_misses")
	cacheSize   = expvar.NewInt("sweep/cache_size")
)

// Point is the equilibrium of the skill game at one ELO difference.
type Point struct {
	EloDiff  float64
	WinRates [][]float64
	Result   matrixgame.Result
	// Player 1's win rate if both players used the same strategy.
	BaselineWinRate float64
}

// clone copies the slices of p so callers cannot modify the cached value.
func (p Point) clone() Point {
	result := p
	result.WinRates = make([][]float64, len(p.WinRates))
	for i, row := range p.WinRates {
		result.WinRates[i] = append([]float64(nil), row...)
	}
	result.Result.P1Distribution = append([]float64(nil), p.Result.P1Distribution...)
	result.Result.P2Distribution = append([]float64(nil), p.Result.P2Distribution...)
	result.Result.Diagnostics = append([]matrixgame.Event(nil), p.Result.Diagnostics...)
	return result
}

type cacheKey struct {
	eloDiff   float64
	allInCoef float64
}

// Sweeper solves skill matrices and memoizes the results.
type Sweeper struct {
	allInCoef float64
	cache     *lru.Cache
}

func NewSweeper(allInCoef float64, maxCacheSize int) (*Sweeper, error) {
	cache, err := lru.New(maxCacheSize)
	if err != nil {
		return nil, err
	}

	return &Sweeper{
		allInCoef: allInCoef,
		cache:     cache,
	}, nil
}

// Solve returns the equilibrium for player 1 rated eloDiff above player 2.
func (s *Sweeper) Solve(eloDiff float64) (Point, error) {
	key := cacheKey{eloDiff, s.allInCoef}
	if cached, ok := s.cache.Get(key); ok {
		cacheHits.Add(1)
		return cached.(Point).clone(), nil
	}

	cacheMisses.Add(1)
	m := skill.NewMatrix(eloDiff, 0, s.allInCoef)
	glog.V(1).Infof("Solving ELO difference %v:\n%v", eloDiff, m)
	result, err := m.Solve()
	if err != nil {
		return Point{}, errors.Wrapf(err, "ELO difference %v", eloDiff)
	}

	p := Point{
		EloDiff:         eloDiff,
		WinRates:        m.Payoffs(),
		Result:          *result,
		BaselineWinRate: skill.WinRate(eloDiff, 0),
	}
	s.cache.Add(key, p)
	cacheSize.Set(int64(s.cache.Len()))
	return p.clone(), nil
}

// Run solves every ELO difference from minDiff to maxDiff inclusive in
// increments of step.
func (s *Sweeper) Run(minDiff, maxDiff, step float64) ([]Point, error) {
	if step <= 0 {
		return nil, errors.Errorf("step must be positive, got %v", step)
	}
	if maxDiff < minDiff {
		return nil, errors.Errorf("max ELO difference %v is below min %v", maxDiff, minDiff)
	}

	n := int(math.Floor((maxDiff-minDiff)/step+1e-9)) + 1
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p, err := s.Solve(minDiff + float64(i)*step)
		if err != nil {
			return nil, err
		}

		points = append(points, p)
	}

	glog.V(1).Infof("Solved %d ELO differences", len(points))
	return points, nil
}
