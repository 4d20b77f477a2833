package main

import (
	"os"
	"path/filepath"
	"testing"

	gzip "github.com/klauspost/pgzip"

	"github.com/timpalpant/mixedstrat/skill"
	"github.com/timpalpant/mixedstrat/sweep"
)

func TestSaveSweep(t *testing.T) {
	sweeper, err := sweep.NewSweeper(skill.DefaultAllInCoef, 8)
	if err != nil {
		t.Fatal(err)
	}
	points, err := sweeper.Run(-200, 200, 200)
	if err != nil {
		t.Fatal(err)
	}

	filename := filepath.Join(t.TempDir(), "sweep.gob.gz")
	if err := saveSweep(filename, points); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := sweep.Load(r)
	if err != nil {
		t.Fatal(err)
	}

	if len(loaded) != len(points) {
		t.Fatalf("loaded %d points, expected %d", len(loaded), len(points))
	}
	for i := range points {
		if loaded[i].Result.P1ExpectedPayoff != points[i].Result.P1ExpectedPayoff {
			t.Errorf("point %d: payoff %v, expected %v", i,
				loaded[i].Result.P1ExpectedPayoff, points[i].Result.P1ExpectedPayoff)
		}
	}
}
