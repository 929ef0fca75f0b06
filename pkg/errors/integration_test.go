package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scigoErrors "github.com/ezoic/logreg/pkg/errors"
)

// TestErrorWrappingCompatibility tests Go 1.13+ error wrapping with our custom types
func TestErrorWrappingCompatibility(t *testing.T) {
	originalErr := scigoErrors.NewNotFittedError("PolynomialFeatures", "Transform")
	wrappedErr := fmt.Errorf("pipeline step failed: %w", originalErr)

	assert.True(t, errors.Is(wrappedErr, originalErr))
	assert.True(t, errors.Is(wrappedErr, scigoErrors.ErrNotFitted))

	var notFittedErr *scigoErrors.NotFittedError
	require.True(t, errors.As(wrappedErr, &notFittedErr))
	assert.Equal(t, "PolynomialFeatures", notFittedErr.ModelName)
}

func TestShapeError(t *testing.T) {
	err := scigoErrors.NewShapeError("MapFeature", 2, 3)

	assert.True(t, errors.Is(err, scigoErrors.ErrInvalidShape))
	assert.False(t, errors.Is(err, scigoErrors.ErrDimensionMismatch))
	assert.Contains(t, err.Error(), "not 3")

	var shapeErr *scigoErrors.ShapeError
	require.True(t, errors.As(fmt.Errorf("expand: %w", err), &shapeErr))
	assert.Equal(t, 3, shapeErr.Got)
	assert.Equal(t, 2, shapeErr.Expected)
}

func TestDimensionError(t *testing.T) {
	err := scigoErrors.NewDimensionError("Predict", 6, 3, 1)

	assert.True(t, errors.Is(err, scigoErrors.ErrDimensionMismatch))
	assert.Equal(t, "logreg: Predict: dimension mismatch on axis 1: expected 6, got 3", err.Error())
}

func TestValueAndValidationErrorsShareSentinel(t *testing.T) {
	valErr := scigoErrors.NewValueError("CostFunctionReg", "lambda must be non-negative")
	vldErr := scigoErrors.NewValidationError("yTrue", "must be 0 or 1", 2.0)

	assert.True(t, errors.Is(valErr, scigoErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(vldErr, scigoErrors.ErrInvalidArgument))
	assert.Equal(t, 2.0, vldErr.Value)
}

// TestCombinedErrorTypes tests mixing custom and standard errors
func TestCombinedErrorTypes(t *testing.T) {
	stdErr := fmt.Errorf("standard error")
	customErr := scigoErrors.NewModelError("TestOp", "test failure", stdErr)
	wrappedErr := fmt.Errorf("operation context: %w", customErr)

	assert.True(t, errors.Is(wrappedErr, stdErr))

	var modelErr *scigoErrors.ModelError
	require.True(t, errors.As(wrappedErr, &modelErr))
	assert.Equal(t, stdErr, modelErr.Unwrap())
}

// TestSentinelErrors tests sentinel error patterns
func TestSentinelErrors(t *testing.T) {
	err := scigoErrors.NewModelError("TestOp", "empty data", scigoErrors.ErrEmptyData)
	assert.True(t, errors.Is(err, scigoErrors.ErrEmptyData))

	wrappedErr := scigoErrors.Wrap(err, "preprocessing failed")
	assert.True(t, scigoErrors.Is(wrappedErr, scigoErrors.ErrEmptyData))
	assert.Equal(t, "preprocessing failed: logreg: TestOp: empty data: empty data", wrappedErr.Error())
}

func TestRecover(t *testing.T) {
	run := func(v interface{}) (err error) {
		defer scigoErrors.Recover(&err, "run")
		if v != nil {
			panic(v)
		}
		return nil
	}

	assert.NoError(t, run(nil))

	err := run("boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run")
	assert.Contains(t, err.Error(), "boom")

	cause := errors.New("matrix: index out of range")
	err = run(cause)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
}
