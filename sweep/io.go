package sweep

import (
	"encoding/gob"
	"io"

	"github.com/pkg/errors"

	"github.com/timpalpant/mixedstrat/internal/npyio"
)

// SaveTo writes points with gob encoding.
func SaveTo(w io.Writer, points []Point) error {
	enc := gob.NewEncoder(w)
	return enc.Encode(points)
}

// Load reads points written by SaveTo.
func Load(r io.Reader) ([]Point, error) {
	var points []Point
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&points); err != nil {
		return nil, err
	}

	return points, nil
}

// Arrays lays out points as named columns for analysis in NumPy.
func Arrays(points []Point) (map[string]npyio.Array, error) {
	n := len(points)
	eloDiff := make([]float64, n)
	p1Payoff := make([]float64, n)
	p2Payoff := make([]float64, n)
	baseline := make([]float64, n)
	p1Dist := make([][]float64, n)
	p2Dist := make([][]float64, n)
	for i, p := range points {
		eloDiff[i] = p.EloDiff
		p1Payoff[i] = p.Result.P1ExpectedPayoff
		p2Payoff[i] = p.Result.P2ExpectedPayoff
		baseline[i] = p.BaselineWinRate
		p1Dist[i] = p.Result.P1Distribution
		p2Dist[i] = p.Result.P2Distribution
	}

	p1DistArr, err := npyio.Matrix(p1Dist)
	if err != nil {
		return nil, errors.Wrap(err, "p1_dist")
	}
	p2DistArr, err := npyio.Matrix(p2Dist)
	if err != nil {
		return nil, errors.Wrap(err, "p2_dist")
	}

	return map[string]npyio.Array{
		"elo_diff":           npyio.Vector(eloDiff),
		"p1_expected_payoff": npyio.Vector(p1Payoff),
		"p2_expected_payoff": npyio.Vector(p2Payoff),
		"baseline_win_rate":  npyio.Vector(baseline),
		"p1_dist":            p1DistArr,
		"p2_dist":            p2DistArr,
	}, nil
}

// ExportNPZ writes Arrays(points) to an .npz file.
func ExportNPZ(output string, points []Point) error {
	arrays, err := Arrays(points)
	if err != nil {
		return err
	}

	return npyio.MakeNPZ(output, arrays)
}
