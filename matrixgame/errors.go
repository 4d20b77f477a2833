package matrixgame

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidMatrix is returned when a payoff matrix is empty, ragged,
	// larger than MaxStrategies on either side, or contains non-finite values.
	ErrInvalidMatrix = errors.New("invalid payoff matrix")
	// ErrDegenerateSystem is returned when the indifference equations of the
	// current support have no unique solution.
	ErrDegenerateSystem = errors.New("degenerate indifference system")
	// ErrUnsupportedShape is returned when dominance reduction leaves a shape
	// the closed-form solvers cannot handle.
	ErrUnsupportedShape = errors.New("unsupported matrix shape")
)
