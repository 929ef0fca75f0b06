// Package boundary computes decision-boundary geometry for a trained
// parameter vector.
//
// A boundary is the set of points where theta·map(x1, x2) = 0. For the
// three-parameter linear model it is a straight line (LinearSegment). For
// polynomial models it is traced by evaluating theta·map(u, v) on a regular
// grid (EvaluateGrid) and contouring the zero level; *Grid satisfies
// plotter.GridXYZ so gonum/plot can do the contouring directly.
package boundary

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"

	scigoErrors "github.com/ezoic/logreg/pkg/errors"
	"github.com/ezoic/logreg/pkg/log"
	"github.com/ezoic/logreg/preprocessing"
)

// Default grid geometry.
const (
	DefaultResolution = 50
	DefaultMin        = -1.0
	DefaultMax        = 1.5
)

var gridLogger = log.GetLoggerWithName("boundary").With(log.OperationKey, log.OperationEvaluateGrid)

var _ plotter.GridXYZ = (*Grid)(nil)

type gridConfig struct {
	resolution int
	lo, hi     float64
}

// GridOption configures EvaluateGrid.
type GridOption func(*gridConfig)

// WithResolution sets the number of samples per axis.
func WithResolution(n int) GridOption {
	return func(c *gridConfig) {
		c.resolution = n
	}
}

// WithDomain sets the closed interval covered on both axes.
func WithDomain(lo, hi float64) GridOption {
	return func(c *gridConfig) {
		c.lo, c.hi = lo, hi
	}
}

// Grid holds theta·map(u, v) sampled on a regular lattice.
// Column c corresponds to u = X(c), row r to v = Y(r).
type Grid struct {
	u, v   []float64
	z      *mat.Dense // z.At(r, c)
	degree int
}

// EvaluateGrid samples theta·map(u, v) over the configured square domain.
// The polynomial degree is derived from len(theta).
//
// Parameters:
//   - theta: Trained parameters of length NumPolynomialFeatures(degree)
//   - opts: WithResolution / WithDomain (defaults 50 and [-1.0, 1.5])
//
// Returns:
//   - *Grid: Sampled values, usable as a plotter.GridXYZ
//   - error: nil on success
//
// Errors:
//   - ErrInvalidArgument: nil theta, a length that is no polynomial column
//     count, resolution < 2, or an empty domain
//
// Example:
//
//	g, err := boundary.EvaluateGrid(theta)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := plotter.NewContour(g, []float64{0}, nil)
func EvaluateGrid(theta mat.Vector, opts ...GridOption) (_ *Grid, err error) {
	defer scigoErrors.Recover(&err, "EvaluateGrid")

	cfg := gridConfig{resolution: DefaultResolution, lo: DefaultMin, hi: DefaultMax}
	for _, opt := range opts {
		opt(&cfg)
	}

	if theta == nil {
		return nil, scigoErrors.NewValueError("EvaluateGrid", "theta cannot be nil")
	}
	if cfg.resolution < 2 {
		return nil, scigoErrors.NewValueError("EvaluateGrid",
			fmt.Sprintf("resolution must be at least 2, got %d", cfg.resolution))
	}
	if !(cfg.lo < cfg.hi) {
		return nil, scigoErrors.NewValueError("EvaluateGrid",
			fmt.Sprintf("empty domain [%g, %g]", cfg.lo, cfg.hi))
	}

	degree, err := preprocessing.DegreeForFeatures(theta.Len())
	if err != nil {
		return nil, scigoErrors.Wrap(err, "EvaluateGrid")
	}

	n := cfg.resolution
	g := &Grid{
		u:      floats.Span(make([]float64, n), cfg.lo, cfg.hi),
		v:      floats.Span(make([]float64, n), cfg.lo, cfg.hi),
		z:      mat.NewDense(n, n, nil),
		degree: degree,
	}

	th := mat.Col(nil, 0, theta)
	row := make([]float64, 0, len(th))
	for c, u := range g.u {
		for r, v := range g.v {
			row = preprocessing.MapFeatureRow(u, v, degree, row)
			g.z.Set(r, c, floats.Dot(row, th))
		}
	}

	gridLogger.Debug("grid evaluated",
		log.DegreeKey, degree,
		"resolution", n,
		"min", cfg.lo,
		"max", cfg.hi,
	)
	return g, nil
}

// Dims returns the number of columns (u samples) and rows (v samples).
func (g *Grid) Dims() (c, r int) {
	return len(g.u), len(g.v)
}

// Z returns theta·map(X(c), Y(r)).
func (g *Grid) Z(c, r int) float64 {
	return g.z.At(r, c)
}

// X returns the u coordinate of column c.
func (g *Grid) X(c int) float64 {
	return g.u[c]
}

// Y returns the v coordinate of row r.
func (g *Grid) Y(r int) float64 {
	return g.v[r]
}

// Degree returns the polynomial degree derived from theta.
func (g *Grid) Degree() int {
	return g.degree
}

// Values returns the sampled values as a (rows=v, cols=u) matrix view.
// The matrix must not be modified.
func (g *Grid) Values() mat.Matrix {
	return g.z
}
