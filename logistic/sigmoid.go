// Package logistic provides the numeric core of binary logistic regression:
//
//   - Sigmoid, SigmoidVec, SigmoidMatrix: the logistic function on scalars,
//     vectors and matrices
//   - CostFunction, CostFunctionReg: cross-entropy cost and its gradient,
//     optionally with an L2 penalty that excludes the bias term
//   - Predict, PredictProba: thresholded and probabilistic predictions
//   - Problem: adapts the regularized cost to gonum/optimize so an external
//     optimizer can minimize it
//
// X is always the already-expanded feature matrix (see
// preprocessing.MapFeature) whose first column is the bias term, and theta
// has one entry per column of X. All functions are pure and safe for
// concurrent use.
//
// Example usage:
//
//	Xmapped, _ := preprocessing.MapFeature(X, 6)
//	theta := mat.NewVecDense(28, nil)
//	cost, grad, err := logistic.CostFunctionReg(theta, Xmapped, y, 1.0)
//	if err != nil {
//		log.Fatal(err)
//	}
package logistic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigmoid computes 1 / (1 + e^(-z)) without overflow. Extreme inputs
// saturate to exactly 0 or 1.
func Sigmoid(z float64) float64 {
	if z >= 0 {
		return 1.0 / (1.0 + math.Exp(-z))
	}
	ez := math.Exp(z)
	return ez / (1.0 + ez)
}

// SigmoidVec applies Sigmoid to every element of z.
func SigmoidVec(z mat.Vector) *mat.VecDense {
	n := z.Len()
	if n == 0 {
		return &mat.VecDense{}
	}
	out := make([]float64, n)
	for i := range n {
		out[i] = Sigmoid(z.AtVec(i))
	}
	return mat.NewVecDense(n, out)
}

// SigmoidMatrix applies Sigmoid to every element of z.
func SigmoidMatrix(z mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return Sigmoid(v) }, z)
	return &out
}
