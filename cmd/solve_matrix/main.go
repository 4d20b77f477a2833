// Solve the mixed-strategy equilibrium of a single payoff matrix.
//
//	solve_matrix -logtostderr -matrix "0.5,0.55,0.35;0.45,0.5,0.6;0.65,0.4,0.5"
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/mixedstrat/internal/appconfig"
	"github.com/timpalpant/mixedstrat/matrixgame"
)

func main() {
	cfg, cfgErr := appconfig.Load()

	matrix := flag.String("matrix", "", "Player 1 payoffs: rows separated by ';', entries by ','")
	verifyIters := flag.Int("verify_iters", 0, "Cross-check with this many iterations of fictitious play")
	numMatches := flag.Int("simulate", 0, "Number of matches to simulate with the equilibrium strategies")
	seed := flag.Int64("seed", cfg.Seed, "Random seed")
	flag.Parse()

	if cfgErr != nil {
		glog.Fatal(cfgErr)
	}

	m, err := parseMatrix(*matrix)
	if err != nil {
		glog.Fatal(err)
	}

	result, err := matrixgame.Solve(m)
	if err != nil {
		glog.Fatal(err)
	}

	for _, e := range result.Diagnostics {
		glog.Infof("%v", e)
	}
	fmt.Printf("P1: (exp-payoff: %.4f) %v\n", result.P1ExpectedPayoff, result.P1Distribution)
	fmt.Printf("P2: (exp-payoff: %.4f) %v\n", result.P2ExpectedPayoff, result.P2Distribution)

	rng := rand.New(rand.NewSource(*seed))
	if *verifyIters > 0 {
		p1, p2 := matrixgame.FictitiousPlay(m, *verifyIters, 0, rng)
		glog.Infof("Fictitious play after %d iterations: P1 %v, P2 %v", *verifyIters, p1, p2)
	}

	if *numMatches > 0 {
		winRate := matrixgame.SimulateMatches(m, result, *numMatches, rng)
		glog.Infof("P1 won %.3f %% of %d simulated matches (expected %.3f %%)",
			100*winRate, *numMatches, 100*result.P1ExpectedPayoff)
	}
}

func parseMatrix(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("-matrix is required")
	}

	var m [][]float64
	for i, row := range strings.Split(s, ";") {
		var values []float64
		for j, field := range strings.Split(row, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "entry (%d, %d)", i, j)
			}
			values = append(values, v)
		}
		m = append(m, values)
	}

	return m, nil
}
