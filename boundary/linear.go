package boundary

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"

	scigoErrors "github.com/ezoic/logreg/pkg/errors"
)

// linearParams is the parameter count of a model on (1, x1, x2).
const linearParams = 3

// IsLinear reports whether theta describes a straight-line boundary.
func IsLinear(theta mat.Vector) bool {
	return theta != nil && theta.Len() == linearParams
}

// LinearSegment returns two points on θ0 + θ1·x1 + θ2·x2 = 0.
//
// When θ2 != 0 the points are taken at x1 = lo and x1 = hi. When θ2 == 0 the
// boundary is the vertical line x1 = -θ0/θ1 and the points span x2 in
// [lo, hi].
//
// Errors:
//   - ErrDimensionMismatch: theta is not of length 3
//   - ErrInvalidArgument: θ1 and θ2 are both zero
func LinearSegment(theta mat.Vector, lo, hi float64) (plotter.XYs, error) {
	if !IsLinear(theta) {
		got := 0
		if theta != nil {
			got = theta.Len()
		}
		return nil, scigoErrors.NewDimensionError("LinearSegment", linearParams, got, 0)
	}

	t0, t1, t2 := theta.AtVec(0), theta.AtVec(1), theta.AtVec(2)
	switch {
	case t2 != 0:
		at := func(x float64) float64 { return -(t0 + t1*x) / t2 }
		return plotter.XYs{{X: lo, Y: at(lo)}, {X: hi, Y: at(hi)}}, nil
	case t1 != 0:
		x := -t0 / t1
		return plotter.XYs{{X: x, Y: lo}, {X: x, Y: hi}}, nil
	default:
		return nil, scigoErrors.NewValueError("LinearSegment",
			"theta[1] and theta[2] are both zero, the boundary is undefined")
	}
}
