package logistic

import (
	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/logreg/pkg/errors"
	"github.com/ezoic/logreg/pkg/log"
)

// DecisionThreshold is the probability at or above which Predict returns true.
const DecisionThreshold = 0.5

var predictLogger = log.GetLoggerWithName("logistic").With(log.OperationKey, log.OperationPredict)

// Predict returns, for every row x of X, whether Sigmoid(x·theta) >= 0.5.
//
// Parameters:
//   - theta: Parameters, one per column of X
//   - X: Expanded feature matrix of shape (n_samples, n_features)
//
// Returns:
//   - []bool: One prediction per sample (true means label 1)
//   - error: nil on success
//
// Errors:
//   - ErrEmptyData: X has no rows or columns
//   - ErrDimensionMismatch: len(theta) != cols(X)
//
// Example:
//
//	p, err := logistic.Predict(theta, Xmapped)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Predict(theta mat.Vector, X mat.Matrix) (_ []bool, err error) {
	defer scigoErrors.Recover(&err, "Predict")

	z, err := linearScores("Predict", theta, X)
	if err != nil {
		return nil, err
	}

	m := z.Len()
	out := make([]bool, m)
	positive := 0
	for i := range m {
		out[i] = Sigmoid(z.AtVec(i)) >= DecisionThreshold
		if out[i] {
			positive++
		}
	}

	predictLogger.Debug("predicted",
		log.SamplesKey, m,
		log.FeaturesKey, theta.Len(),
		"positive", positive,
	)
	return out, nil
}

// PredictProba returns Sigmoid(X·theta), the estimated probability of label 1
// for every row of X. Errors are as for Predict.
func PredictProba(theta mat.Vector, X mat.Matrix) (_ *mat.VecDense, err error) {
	defer scigoErrors.Recover(&err, "PredictProba")

	z, err := linearScores("PredictProba", theta, X)
	if err != nil {
		return nil, err
	}
	return SigmoidVec(z), nil
}

// linearScores validates theta against X and returns X·theta.
func linearScores(op string, theta mat.Vector, X mat.Matrix) (*mat.VecDense, error) {
	if theta == nil || X == nil {
		return nil, scigoErrors.NewValueError(op, "theta and X must not be nil")
	}
	m, n := X.Dims()
	if m == 0 || n == 0 {
		return nil, scigoErrors.NewModelError(op, "empty data", scigoErrors.ErrEmptyData)
	}
	if theta.Len() != n {
		return nil, scigoErrors.NewDimensionError(op, n, theta.Len(), 1)
	}

	z := mat.NewVecDense(m, nil)
	z.MulVec(X, theta)
	return z, nil
}
