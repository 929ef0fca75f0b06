package preprocessing_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	scigoErrors "github.com/ezoic/logreg/pkg/errors"
	"github.com/ezoic/logreg/preprocessing"
)

const epsilon = 1e-10 // Tolerance for floating-point comparisons

func TestMapFeature_DegreeTwoScenario(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{
		1, 1,
		1, 0,
	})

	out, err := preprocessing.MapFeature(X, 2)
	require.NoError(t, err)

	// columns: 1, x1, x2, x1^2, x1 x2, x2^2
	want := mat.NewDense(2, 6, []float64{
		1, 1, 1, 1, 1, 1,
		1, 1, 0, 1, 0, 0,
	})
	assert.True(t, mat.Equal(want, out), "got %v", mat.Formatted(out))
}

func TestMapFeature_DegreeOneIsBiasPlusRaw(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		0.5, -1.25,
		2, 3,
		-0.051267, 0.69956,
	})

	out, err := preprocessing.MapFeature(X, 1)
	require.NoError(t, err)

	r, c := out.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	for i := range r {
		assert.Equal(t, []float64{1, X.At(i, 0), X.At(i, 1)}, mat.Row(nil, i, out))
	}
}

func TestMapFeature_ColumnCountAndBias(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0.1, 0.2,
		-0.3, 0.4,
		1.5, -1.0,
		0, 0,
	})

	for degree := 0; degree <= 8; degree++ {
		out, err := preprocessing.MapFeature(X, degree)
		require.NoError(t, err)

		_, c := out.Dims()
		assert.Equal(t, 1+degree*(degree+3)/2, c, "degree %d", degree)
		assert.Equal(t, preprocessing.NumPolynomialFeatures(degree), c)
		for i := range 4 {
			assert.Equal(t, 1.0, out.At(i, 0))
		}
	}
}

func TestMapFeature_DegreeSixOrdering(t *testing.T) {
	x1, x2 := 0.7, -1.3
	out, err := preprocessing.MapFeature(mat.NewDense(1, 2, []float64{x1, x2}), 6)
	require.NoError(t, err)

	// 次数ごとに x1 の冪を降順に並べる
	col := 0
	for total := 0; total <= 6; total++ {
		for p := 0; p <= total; p++ {
			want := math.Pow(x1, float64(total-p)) * math.Pow(x2, float64(p))
			assert.InDelta(t, want, out.At(0, col), epsilon, "column %d (x1^%d x2^%d)", col, total-p, p)
			col++
		}
	}
	assert.Equal(t, 28, col)
}

func TestMapFeatureRow_MatchesMatrix(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		-1.0, 1.5,
		0.25, -0.75,
		1.1, 0.9,
	})

	var buf []float64
	for _, degree := range []int{0, 1, 2, 6, 15, 20} {
		out, err := preprocessing.MapFeature(X, degree)
		require.NoError(t, err)
		for i := range 3 {
			buf = preprocessing.MapFeatureRow(X.At(i, 0), X.At(i, 1), degree, buf)
			assert.Equal(t, mat.Row(nil, i, out), buf, "degree %d row %d", degree, i)
		}
	}

	assert.Empty(t, preprocessing.MapFeatureRow(1, 1, -1, buf))
}

func TestMapFeature_Errors(t *testing.T) {
	_, err := preprocessing.MapFeature(mat.NewDense(2, 3, nil), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scigoErrors.ErrInvalidShape))
	assert.Contains(t, err.Error(), "not 3")

	var shapeErr *scigoErrors.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 3, shapeErr.Got)

	_, err = preprocessing.MapFeature(mat.NewDense(2, 1, nil), 2)
	assert.True(t, errors.Is(err, scigoErrors.ErrInvalidShape))

	_, err = preprocessing.MapFeature(mat.NewDense(2, 2, nil), -1)
	assert.True(t, errors.Is(err, scigoErrors.ErrInvalidArgument))

	_, err = preprocessing.MapFeature(&emptyMatrix{cols: 2}, 2)
	assert.True(t, errors.Is(err, scigoErrors.ErrEmptyData))
}

func TestDegreeForFeatures(t *testing.T) {
	for degree := 0; degree <= 12; degree++ {
		got, err := preprocessing.DegreeForFeatures(preprocessing.NumPolynomialFeatures(degree))
		require.NoError(t, err)
		assert.Equal(t, degree, got)
	}

	for _, k := range []int{-1, 0, 2, 4, 5, 27, 29} {
		_, err := preprocessing.DegreeForFeatures(k)
		assert.True(t, errors.Is(err, scigoErrors.ErrInvalidArgument), "k=%d", k)
	}
}

func TestPolynomialFeatures_FitTransform(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 1, 1, 0})
	pf := preprocessing.NewPolynomialFeatures(2)

	assert.Nil(t, pf.GetFeatureNamesOut(nil))
	assert.Equal(t, "PolynomialFeatures(degree=2)", pf.String())

	out, err := pf.FitTransform(X)
	require.NoError(t, err)
	assert.True(t, pf.IsFitted())
	assert.Equal(t, 6, pf.NOutputs)
	assert.Equal(t, 0.0, out.At(1, 2))
	assert.Equal(t, "PolynomialFeatures(degree=2, n_outputs=6)", pf.String())
	assert.Equal(t, map[string]interface{}{"degree": 2}, pf.GetParams())
}

func TestPolynomialFeatures_UnfittedError(t *testing.T) {
	pf := preprocessing.NewPolynomialFeatures(3)
	_, err := pf.Transform(mat.NewDense(1, 2, []float64{1, 2}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, scigoErrors.ErrNotFitted))
}

func TestPolynomialFeatures_FitErrors(t *testing.T) {
	assert.True(t, errors.Is(preprocessing.NewPolynomialFeatures(2).Fit(mat.NewDense(1, 4, nil)), scigoErrors.ErrInvalidShape))
	assert.True(t, errors.Is(preprocessing.NewPolynomialFeatures(-2).Fit(mat.NewDense(1, 2, nil)), scigoErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(preprocessing.NewPolynomialFeatures(2).Fit(&emptyMatrix{cols: 2}), scigoErrors.ErrEmptyData))
}

func TestPolynomialFeatures_GetFeatureNamesOut(t *testing.T) {
	pf := preprocessing.NewPolynomialFeatures(3)
	require.NoError(t, pf.Fit(mat.NewDense(1, 2, []float64{0, 0})))

	assert.Equal(t, []string{
		"1", "x1", "x2",
		"x1^2", "x1 x2", "x2^2",
		"x1^3", "x1^2 x2", "x1 x2^2", "x2^3",
	}, pf.GetFeatureNamesOut(nil))

	names := pf.GetFeatureNamesOut([]string{"test1", "test2"})
	assert.Equal(t, "test1^2 test2", names[7])
	assert.Len(t, names, pf.NOutputs)
}

// emptyMatrix は行数0の行列 (mat.Dense は0行を作れない)
type emptyMatrix struct {
	cols int
}

func (m *emptyMatrix) Dims() (int, int)    { return 0, m.cols }
func (m *emptyMatrix) At(i, j int) float64 { panic(mat.ErrIndexOutOfRange) }
func (m *emptyMatrix) T() mat.Matrix       { return mat.Transpose{Matrix: m} }
