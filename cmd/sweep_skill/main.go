// Solve the all-in/standard/defensive game over a range of skill
// differences, print the equilibria and save them for plotting.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"

	"github.com/timpalpant/mixedstrat/internal/appconfig"
	"github.com/timpalpant/mixedstrat/skill"
	"github.com/timpalpant/mixedstrat/sweep"
)

func main() {
	cfg, cfgErr := appconfig.Load()

	minDiff := flag.Float64("min_elo_diff", cfg.MinEloDiff, "Smallest ELO difference (player 1 - player 2)")
	maxDiff := flag.Float64("max_elo_diff", cfg.MaxEloDiff, "Largest ELO difference (inclusive)")
	step := flag.Float64("step", cfg.EloStep, "ELO difference increment")
	allInCoef := flag.Float64("allin_coef", cfg.AllInCoef, "Fraction of skill difference that applies to all-in games")
	cacheSize := flag.Int("cache_size", cfg.CacheSize, "Number of solved matrices to memoize")
	output := flag.String("output", "", "Write gzipped gob of the sweep to this file")
	npzOutput := flag.String("npz", "", "Write the sweep as NumPy arrays to this .npz file")
	debugAddr := flag.String("debug_addr", "", "Serve pprof and expvar on this address")
	flag.Parse()

	if cfgErr != nil {
		glog.Fatal(cfgErr)
	}
	cfg.MinEloDiff, cfg.MaxEloDiff, cfg.EloStep = *minDiff, *maxDiff, *step
	cfg.AllInCoef, cfg.CacheSize = *allInCoef, *cacheSize
	if err := cfg.Validate(); err != nil {
		glog.Fatal(err)
	}

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	sweeper, err := sweep.NewSweeper(*allInCoef, *cacheSize)
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Solving ELO differences %v to %v in steps of %v", *minDiff, *maxDiff, *step)
	points, err := sweeper.Run(*minDiff, *maxDiff, *step)
	if err != nil {
		glog.Fatal(err)
	}

	for _, p := range points {
		m := skill.NewMatrix(p.EloDiff, 0, *allInCoef)
		fmt.Printf("ELO difference: %v (same-strategy win rate %.2f%%)\n", p.EloDiff, 100*p.BaselineWinRate)
		fmt.Print(m)
		fmt.Println(skill.FormatResult(&p.Result))
		fmt.Println()
	}

	if *output != "" {
		if err := saveSweep(*output, points); err != nil {
			glog.Fatal(err)
		}
		glog.Infof("Saved %d points to %v", len(points), *output)
	}

	if *npzOutput != "" {
		if err := sweep.ExportNPZ(*npzOutput, points); err != nil {
			glog.Fatal(err)
		}
		glog.Infof("Saved arrays to %v", *npzOutput)
	}
}

func saveSweep(filename string, points []sweep.Point) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	b := bufio.NewWriter(f)
	w := gzip.NewWriter(b)
	if err := sweep.SaveTo(w, points); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	if err := b.Flush(); err != nil {
		return err
	}

	return f.Close()
}
