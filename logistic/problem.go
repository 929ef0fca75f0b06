package logistic

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	scigoErrors "github.com/ezoic/logreg/pkg/errors"
)

// Problem wraps the regularized cost on (X, y) as a gonum optimize.Problem,
// for use with an external optimizer:
//
//	prob, err := logistic.Problem(Xmapped, y, 1.0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := optimize.Minimize(prob, make([]float64, 28), nil, &optimize.BFGS{})
//
// Shapes and lambda are validated once here. The returned Func and Grad
// expect parameter slices of length cols(X) and panic otherwise, as gonum
// optimizers never pass anything else. X and y must not be modified while the
// problem is in use.
func Problem(X mat.Matrix, y mat.Vector, lambda float64, opts ...CostOption) (_ optimize.Problem, err error) {
	defer scigoErrors.Recover(&err, "Problem")

	c := NewCost(append([]CostOption{WithLambda(lambda)}, opts...)...)
	if err := c.validate("Problem"); err != nil {
		return optimize.Problem{}, err
	}
	if X == nil || y == nil {
		return optimize.Problem{}, scigoErrors.NewValueError("Problem", "X and y must not be nil")
	}
	_, n := X.Dims()
	// theta of the right length, only used to validate X and y
	if _, _, err := checkInputs("Problem", mat.NewVecDense(max(n, 1), nil), X, y); err != nil {
		return optimize.Problem{}, err
	}
	m, _ := X.Dims()

	return optimize.Problem{
		Func: func(x []float64) float64 {
			cost, _ := c.evaluate(mat.NewVecDense(n, x), X, y, m, n)
			return cost
		},
		Grad: func(grad, x []float64) {
			_, g := c.evaluate(mat.NewVecDense(n, x), X, y, m, n)
			copy(grad, g.RawVector().Data)
		},
	}, nil
}
