package logistic

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/logreg/pkg/errors"
	"github.com/ezoic/logreg/pkg/log"
)

// DefaultClampEpsilon is the clamp used by WithProbabilityClamp(0).
const DefaultClampEpsilon = 1e-15

var costLogger = log.GetLoggerWithName("logistic").With(log.OperationKey, log.OperationCost)

// Cost evaluates the (optionally L2-regularized) logistic regression cost
// and its gradient. A Cost is immutable after construction and safe for
// concurrent use.
type Cost struct {
	lambda       float64
	clampEpsilon float64
	logger       log.Logger
}

// CostOption is a functional option for Cost
type CostOption func(*Cost)

// WithLambda sets the L2 regularization strength. The bias term theta[0] is
// never penalized. Negative values are rejected at evaluation time.
func WithLambda(lambda float64) CostOption {
	return func(c *Cost) {
		c.lambda = lambda
	}
}

// WithProbabilityClamp clamps sigmoid outputs into [eps, 1-eps] before
// taking logarithms, so saturated samples yield a large finite cost instead
// of +Inf. eps <= 0 selects DefaultClampEpsilon. The gradient always uses the
// unclamped probabilities.
func WithProbabilityClamp(eps float64) CostOption {
	return func(c *Cost) {
		if eps <= 0 {
			eps = DefaultClampEpsilon
		}
		c.clampEpsilon = eps
	}
}

// WithLogger sets the logger used for debug and saturation messages.
func WithLogger(l log.Logger) CostOption {
	return func(c *Cost) {
		if l == nil {
			l = log.Nop()
		}
		c.logger = l
	}
}

// NewCost creates a cost evaluator. Without options it computes the plain
// unregularized cost with no clamping.
func NewCost(opts ...CostOption) *Cost {
	c := &Cost{logger: costLogger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lambda returns the configured regularization strength.
func (c *Cost) Lambda() float64 {
	return c.lambda
}

// Evaluate computes the cost and gradient of theta on (X, y).
//
// With h = Sigmoid(X·theta) and m samples:
//
//	cost = (1/m) Σ [-y log(h) - (1-y) log(1-h)] + (lambda/2m) Σ_{j>=1} theta_j²
//	grad = (1/m) Xᵀ(h - y) + (lambda/m) [0, theta_1, ..., theta_n-1]
//
// A log term whose label weight is exactly zero is skipped, so a sample that
// saturates on the correct side contributes 0. A sample that saturates on the
// wrong side makes the cost +Inf unless clamping is enabled; this is a
// numeric condition and is not reported as an error.
//
// Errors:
//   - ErrEmptyData: X has no rows or columns
//   - ErrDimensionMismatch: len(theta) != cols(X) or len(y) != rows(X)
//   - ErrInvalidArgument: lambda is negative or NaN
func (c *Cost) Evaluate(theta mat.Vector, X mat.Matrix, y mat.Vector) (float64, *mat.VecDense, error) {
	return c.evaluateChecked("Cost.Evaluate", theta, X, y)
}

func (c *Cost) evaluateChecked(op string, theta mat.Vector, X mat.Matrix, y mat.Vector) (_ float64, _ *mat.VecDense, err error) {
	defer scigoErrors.Recover(&err, op)

	if err := c.validate(op); err != nil {
		return 0, nil, err
	}
	m, n, err := checkInputs(op, theta, X, y)
	if err != nil {
		return 0, nil, err
	}

	cost, grad := c.evaluate(theta, X, y, m, n)
	return cost, grad, nil
}

func (c *Cost) validate(op string) error {
	if c.lambda < 0 || math.IsNaN(c.lambda) {
		return scigoErrors.NewValueError(op,
			fmt.Sprintf("lambda must be non-negative, got %v", c.lambda))
	}
	return nil
}

// evaluate assumes inputs are already validated.
func (c *Cost) evaluate(theta mat.Vector, X mat.Matrix, y mat.Vector, m, n int) (float64, *mat.VecDense) {
	startTime := time.Now()

	z := mat.NewVecDense(m, nil)
	z.MulVec(X, theta)

	residual := make([]float64, m)
	sum := 0.0
	for i := range m {
		h := Sigmoid(z.AtVec(i))
		yi := y.AtVec(i)
		sum += crossEntropy(yi, c.clamp(h))
		residual[i] = h - yi
	}

	invM := 1.0 / float64(m)
	cost := sum * invM

	grad := mat.NewVecDense(n, nil)
	grad.MulVec(X.T(), mat.NewVecDense(m, residual))
	grad.ScaleVec(invM, grad)

	if c.lambda > 0 {
		penalty := 0.0
		for j := 1; j < n; j++ {
			tj := theta.AtVec(j)
			penalty += tj * tj
			grad.SetVec(j, grad.AtVec(j)+c.lambda*invM*tj)
		}
		cost += c.lambda / 2 * invM * penalty
	}

	if math.IsInf(cost, 0) || math.IsNaN(cost) {
		c.logger.Warn("cost is not finite, sigmoid saturated",
			log.SamplesKey, m,
			log.FeaturesKey, n,
			log.LambdaKey, c.lambda,
			log.CostKey, cost,
		)
	}
	c.logger.Debug("cost evaluated",
		log.SamplesKey, m,
		log.FeaturesKey, n,
		log.LambdaKey, c.lambda,
		log.CostKey, cost,
		log.DurationMsKey, time.Since(startTime).Milliseconds(),
	)

	return cost, grad
}

func (c *Cost) clamp(p float64) float64 {
	eps := c.clampEpsilon
	if eps <= 0 {
		return p
	}
	if p < eps {
		return eps
	}
	if p > 1-eps {
		return 1 - eps
	}
	return p
}

// crossEntropy is -y log(h) - (1-y) log(1-h) with zero-weight terms skipped.
func crossEntropy(y, h float64) float64 {
	loss := 0.0
	if y != 0 {
		loss -= y * math.Log(h)
	}
	if y != 1 {
		loss -= (1 - y) * math.Log(1-h)
	}
	return loss
}

// checkInputs validates theta, X and y against each other and returns the
// sample and feature counts.
func checkInputs(op string, theta mat.Vector, X mat.Matrix, y mat.Vector) (int, int, error) {
	if theta == nil || X == nil || y == nil {
		return 0, 0, scigoErrors.NewValueError(op, "theta, X and y must not be nil")
	}
	m, n := X.Dims()
	if m == 0 || n == 0 {
		return 0, 0, scigoErrors.NewModelError(op, "empty data", scigoErrors.ErrEmptyData)
	}
	if theta.Len() != n {
		return 0, 0, scigoErrors.NewDimensionError(op, n, theta.Len(), 1)
	}
	if y.Len() != m {
		return 0, 0, scigoErrors.NewDimensionError(op, m, y.Len(), 0)
	}
	return m, n, nil
}

// CostFunction computes the unregularized logistic regression cost and
// gradient of theta on the expanded feature matrix X with labels y.
//
// Parameters:
//   - theta: Parameters, one per column of X (theta[0] is the bias)
//   - X: Expanded feature matrix of shape (n_samples, n_features)
//   - y: Labels in {0, 1}, one per row of X
//
// Returns:
//   - float64: The mean cross-entropy cost
//   - *mat.VecDense: The gradient, length n_features
//   - error: ErrEmptyData or ErrDimensionMismatch on malformed input
//
// Example:
//
//	theta := mat.NewVecDense(3, nil)
//	X := mat.NewDense(1, 3, []float64{1, 1, 1})
//	y := mat.NewVecDense(1, []float64{1})
//	cost, grad, _ := logistic.CostFunction(theta, X, y)
//	// cost = 0.6931 (= -log 0.5), grad = [-0.5 -0.5 -0.5]
func CostFunction(theta mat.Vector, X mat.Matrix, y mat.Vector) (float64, *mat.VecDense, error) {
	return NewCost().evaluateChecked("CostFunction", theta, X, y)
}

// CostFunctionReg computes the L2-regularized cost and gradient. The bias
// theta[0] is excluded from the penalty, and lambda = 0 gives exactly the
// result of CostFunction.
//
// Errors:
//   - ErrInvalidArgument: lambda is negative or NaN
//   - ErrEmptyData, ErrDimensionMismatch: as for CostFunction
func CostFunctionReg(theta mat.Vector, X mat.Matrix, y mat.Vector, lambda float64) (float64, *mat.VecDense, error) {
	return NewCost(WithLambda(lambda)).evaluateChecked("CostFunctionReg", theta, X, y)
}
