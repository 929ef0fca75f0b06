package logistic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/ezoic/logreg/logistic"
	scigoErrors "github.com/ezoic/logreg/pkg/errors"
)

func TestProblem_MatchesCostFunctionReg(t *testing.T) {
	X, y := microchipSample(t)
	_, n := X.Dims()

	prob, err := logistic.Problem(X, y, 1)
	require.NoError(t, err)

	x := make([]float64, n)
	for j := range x {
		x[j] = 0.1 * float64(j%3)
	}

	wantCost, wantGrad, err := logistic.CostFunctionReg(mat.NewVecDense(n, x), X, y, 1)
	require.NoError(t, err)

	assert.Equal(t, wantCost, prob.Func(x))

	grad := make([]float64, n)
	prob.Grad(grad, x)
	assert.Equal(t, wantGrad.RawVector().Data, grad)
}

func TestProblem_MinimizeWithBFGS(t *testing.T) {
	X, y := microchipSample(t)
	_, n := X.Dims()

	prob, err := logistic.Problem(X, y, 1)
	require.NoError(t, err)

	initial := make([]float64, n)
	startCost := prob.Func(initial)

	result, err := optimize.Minimize(prob, initial, &optimize.Settings{
		GradientThreshold: 1e-5,
		MajorIterations:   400,
	}, &optimize.BFGS{})
	require.NoError(t, err)

	assert.Less(t, result.F, startCost)

	grad := make([]float64, n)
	prob.Grad(grad, result.X)
	assert.Less(t, floats.Norm(grad, 2), 1e-4)
}

func TestProblem_Errors(t *testing.T) {
	X, y := microchipSample(t)

	_, err := logistic.Problem(X, y, -0.5)
	assert.True(t, errors.Is(err, scigoErrors.ErrInvalidArgument))

	_, err = logistic.Problem(X, mat.NewVecDense(3, nil), 1)
	assert.True(t, errors.Is(err, scigoErrors.ErrDimensionMismatch))

	_, err = logistic.Problem(&mat.Dense{}, y, 1)
	assert.True(t, errors.Is(err, scigoErrors.ErrEmptyData))

	_, err = logistic.Problem(nil, y, 1)
	assert.True(t, errors.Is(err, scigoErrors.ErrInvalidArgument))
}
