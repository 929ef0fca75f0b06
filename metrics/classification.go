// Package metrics provides evaluation metrics for binary logistic regression.
//
//   - Accuracy / ClassificationError: agreement between 0/1 labels and the
//     boolean predictions returned by logistic.Predict
//   - BinaryLogLoss: clipped cross-entropy of probability estimates
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/logreg/pkg/errors"
)

// ClassificationError calculates the fraction of predictions that disagree
// with the labels.
//
// Parameters:
//   - yTrue: Ground truth labels (0 or 1)
//   - yPred: Predicted labels, true meaning 1
//
// Returns:
//   - The error rate (between 0 and 1)
//   - An error if inputs are invalid
//
// Example:
//
//	yTrue := mat.NewVecDense(5, []float64{0, 1, 1, 1, 0})
//	errorRate, err := ClassificationError(yTrue, []bool{false, true, false, true, false})
//	// errorRate = 0.2
func ClassificationError(yTrue mat.Vector, yPred []bool) (float64, error) {
	if yTrue == nil {
		return 0, scigoErrors.NewValueError(
			"ClassificationError",
			"input vector cannot be nil",
		)
	}

	n := yTrue.Len()
	if n == 0 {
		return 0, scigoErrors.NewValueError(
			"ClassificationError",
			"input vectors cannot be empty",
		)
	}

	if n != len(yPred) {
		return 0, scigoErrors.NewDimensionError(
			"ClassificationError",
			n,
			len(yPred),
			0,
		)
	}

	errors := 0
	for i := range n {
		label, err := binaryLabel(yTrue.AtVec(i), i)
		if err != nil {
			return 0, err
		}
		if label != yPred[i] {
			errors++
		}
	}

	return float64(errors) / float64(n), nil
}

// Accuracy calculates the fraction of correct predictions.
func Accuracy(yTrue mat.Vector, yPred []bool) (float64, error) {
	errorRate, err := ClassificationError(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1.0 - errorRate, nil
}

// BinaryLogLoss calculates the mean binary cross-entropy of probability
// estimates. Probabilities are clipped to [1e-15, 1-1e-15].
//
// Example:
//
//	yTrue := mat.NewVecDense(4, []float64{0, 0, 1, 1})
//	yProb := mat.NewVecDense(4, []float64{0.1, 0.2, 0.8, 0.9})
//	loss, err := BinaryLogLoss(yTrue, yProb)
func BinaryLogLoss(yTrue, yProb *mat.VecDense) (float64, error) {
	if yTrue == nil || yProb == nil {
		return 0, scigoErrors.NewValueError(
			"BinaryLogLoss",
			"input vectors cannot be nil",
		)
	}

	n := yTrue.Len()
	if n == 0 {
		return 0, scigoErrors.NewValueError(
			"BinaryLogLoss",
			"input vectors cannot be empty",
		)
	}

	if n != yProb.Len() {
		return 0, scigoErrors.NewDimensionError(
			"BinaryLogLoss",
			n,
			yProb.Len(),
			0,
		)
	}

	const epsilon = 1e-15 // Small value to avoid log(0)
	loss := 0.0

	for i := range n {
		label, err := binaryLabel(yTrue.AtVec(i), i)
		if err != nil {
			return 0, err
		}

		p := math.Min(math.Max(yProb.AtVec(i), epsilon), 1-epsilon)
		if label {
			loss -= math.Log(p)
		} else {
			loss -= math.Log(1 - p)
		}
	}

	return loss / float64(n), nil
}

func binaryLabel(v float64, i int) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, scigoErrors.NewValidationError(
			"yTrue",
			fmt.Sprintf("must contain only binary values (0 or 1), found %f at index %d", v, i),
			v,
		)
	}
}
