// Package preprocessing provides feature expansion for logistic regression.
//
// The central operation is polynomial mapping of two raw variables into every
// monomial up to a total degree, so that a linear classifier can fit a
// non-linear decision boundary:
//
//   - MapFeature: expands an m x 2 matrix into m x k polynomial features
//   - MapFeatureRow: the same expansion for a single point, reusing a buffer
//   - PolynomialFeatures: a Fit/Transform wrapper with feature names
//
// Column order is fixed and must match the order of theta:
//
//	1, x1, x2, x1^2, x1 x2, x2^2, x1^3, x1^2 x2, x1 x2^2, x2^3, ...
//
// that is, by increasing total degree and within each degree by decreasing
// power of x1. MapFeature and MapFeatureRow share one algorithm, so a row of
// MapFeature is bit-identical to MapFeatureRow on the same point.
//
// Example usage:
//
//	Xmapped, err := preprocessing.MapFeature(X, 6) // 28 columns
//	if err != nil {
//		log.Fatal(err)
//	}
package preprocessing

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/logreg/core/model"
	scigoErrors "github.com/ezoic/logreg/pkg/errors"
	"github.com/ezoic/logreg/pkg/log"
)

// rawFeatures is the number of raw input variables the mapper accepts.
const rawFeatures = 2

var logger = log.GetLoggerWithName("preprocessing")

// NumPolynomialFeatures returns the number of columns produced for degree,
// including the bias column: 1 + degree(degree+3)/2.
func NumPolynomialFeatures(degree int) int {
	if degree < 0 {
		return 0
	}
	return 1 + degree*(degree+3)/2
}

// DegreeForFeatures inverts NumPolynomialFeatures. It fails with a
// ValueError when k is not the column count of any degree.
func DegreeForFeatures(k int) (int, error) {
	if k >= 1 {
		// (d+1)(d+2)/2 = k
		d := int(math.Round((math.Sqrt(float64(8*k+1)) - 3) / 2))
		if d >= 0 && NumPolynomialFeatures(d) == k {
			return d, nil
		}
	}
	return 0, scigoErrors.NewValueError("DegreeForFeatures",
		fmt.Sprintf("%d is not a polynomial feature count", k))
}

// MapFeature expands X (m x 2) into all polynomial terms up to degree.
//
// Parameters:
//   - X: Feature matrix of shape (n_samples, 2); column 0 is x1, column 1 is x2
//   - degree: Maximum total degree (0 yields only the bias column)
//
// Returns:
//   - *mat.Dense: Matrix of shape (n_samples, NumPolynomialFeatures(degree))
//   - error: nil on success
//
// Errors:
//   - ErrInvalidShape: X does not have exactly 2 columns
//   - ErrInvalidArgument: degree is negative
//   - ErrEmptyData: X has no rows
//
// Example:
//
//	X := mat.NewDense(2, 2, []float64{1, 1, 1, 0})
//	out, _ := preprocessing.MapFeature(X, 2)
//	// out rows: [1 1 1 1 1 1] and [1 1 0 1 0 0]
func MapFeature(X mat.Matrix, degree int) (_ *mat.Dense, err error) {
	defer scigoErrors.Recover(&err, "MapFeature")

	m, n := X.Dims()
	if n != rawFeatures {
		return nil, scigoErrors.NewShapeError("MapFeature", rawFeatures, n)
	}
	if degree < 0 {
		return nil, scigoErrors.NewValueError("MapFeature",
			fmt.Sprintf("degree must be non-negative, got %d", degree))
	}
	if m == 0 {
		return nil, scigoErrors.NewModelError("MapFeature", "empty data", scigoErrors.ErrEmptyData)
	}

	k := NumPolynomialFeatures(degree)
	data := make([]float64, 0, m*k)
	p1 := make([]float64, degree+1)
	p2 := make([]float64, degree+1)
	for i := range m {
		data = appendRow(data, X.At(i, 0), X.At(i, 1), degree, p1, p2)
	}

	logger.Debug("features mapped",
		log.OperationKey, log.OperationMapFeature,
		log.SamplesKey, m,
		log.DegreeKey, degree,
		log.FeaturesKey, k,
	)

	return mat.NewDense(m, k, data), nil
}

// MapFeatureRow expands the single point (x1, x2) and appends the
// NumPolynomialFeatures(degree) terms to dst[:0], returning the extended
// slice. It is the allocation-free variant used for grid evaluation.
// A negative degree returns dst[:0].
func MapFeatureRow(x1, x2 float64, degree int, dst []float64) []float64 {
	dst = dst[:0]
	if degree < 0 {
		return dst
	}
	var s1, s2 [16]float64
	var p1, p2 []float64
	if degree+1 <= len(s1) {
		p1, p2 = s1[:degree+1], s2[:degree+1]
	} else {
		p1, p2 = make([]float64, degree+1), make([]float64, degree+1)
	}
	return appendRow(dst, x1, x2, degree, p1, p2)
}

// appendRow writes the monomials of (x1, x2) in canonical order.
// p1 and p2 are scratch buffers of length degree+1.
func appendRow(dst []float64, x1, x2 float64, degree int, p1, p2 []float64) []float64 {
	p1[0], p2[0] = 1, 1
	for d := 1; d <= degree; d++ {
		p1[d] = p1[d-1] * x1
		p2[d] = p2[d-1] * x2
	}

	dst = append(dst, 1)
	for total := 1; total <= degree; total++ {
		for x2Power := 0; x2Power <= total; x2Power++ {
			dst = append(dst, p1[total-x2Power]*p2[x2Power])
		}
	}
	return dst
}

// PolynomialFeatures is a Fit/Transform wrapper around MapFeature.
type PolynomialFeatures struct {
	model.BaseEstimator

	// Degree is the maximum total degree
	Degree int

	// NOutputs is the number of generated columns, set by Fit
	NOutputs int
}

// NewPolynomialFeatures creates a PolynomialFeatures transformer for degree.
//
// Example:
//
//	pf := preprocessing.NewPolynomialFeatures(6)
//	Xmapped, err := pf.FitTransform(X)
func NewPolynomialFeatures(degree int) *PolynomialFeatures {
	pf := &PolynomialFeatures{Degree: degree}
	pf.ModelType = "PolynomialFeatures"
	_ = pf.SetParams(map[string]interface{}{"degree": degree})
	return pf
}

// Fit validates the input shape and degree. No statistics are learned; the
// expansion depends only on the degree.
func (p *PolynomialFeatures) Fit(X mat.Matrix) (err error) {
	defer scigoErrors.Recover(&err, "PolynomialFeatures.Fit")

	r, c := X.Dims()
	if c != rawFeatures {
		return scigoErrors.NewShapeError("PolynomialFeatures.Fit", rawFeatures, c)
	}
	if p.Degree < 0 {
		return scigoErrors.NewValueError("PolynomialFeatures.Fit",
			fmt.Sprintf("degree must be non-negative, got %d", p.Degree))
	}
	if r == 0 {
		return scigoErrors.NewModelError("PolynomialFeatures.Fit", "empty data", scigoErrors.ErrEmptyData)
	}

	p.NOutputs = NumPolynomialFeatures(p.Degree)
	p.SetFitted()
	return nil
}

// Transform expands X. The transformer must be fitted first.
func (p *PolynomialFeatures) Transform(X mat.Matrix) (_ mat.Matrix, err error) {
	defer scigoErrors.Recover(&err, "PolynomialFeatures.Transform")
	if !p.IsFitted() {
		return nil, scigoErrors.NewNotFittedError("PolynomialFeatures", "Transform")
	}
	return MapFeature(X, p.Degree)
}

// FitTransform fits and transforms X in one step.
func (p *PolynomialFeatures) FitTransform(X mat.Matrix) (_ mat.Matrix, err error) {
	defer scigoErrors.Recover(&err, "PolynomialFeatures.FitTransform")
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// GetFeatureNamesOut returns the generated column names in output order.
// inputFeatures overrides the default names "x1" and "x2". Returns nil when
// the transformer is not fitted.
//
// For degree 2 the default names are:
//
//	["1", "x1", "x2", "x1^2", "x1 x2", "x2^2"]
func (p *PolynomialFeatures) GetFeatureNamesOut(inputFeatures []string) []string {
	if !p.IsFitted() {
		return nil
	}

	names := [rawFeatures]string{"x1", "x2"}
	for i := 0; i < rawFeatures && i < len(inputFeatures); i++ {
		names[i] = inputFeatures[i]
	}

	term := func(name string, power int) string {
		switch power {
		case 0:
			return ""
		case 1:
			return name
		default:
			return fmt.Sprintf("%s^%d", name, power)
		}
	}

	out := make([]string, 0, p.NOutputs)
	out = append(out, "1")
	for total := 1; total <= p.Degree; total++ {
		for x2Power := 0; x2Power <= total; x2Power++ {
			parts := make([]string, 0, 2)
			if t := term(names[0], total-x2Power); t != "" {
				parts = append(parts, t)
			}
			if t := term(names[1], x2Power); t != "" {
				parts = append(parts, t)
			}
			out = append(out, strings.Join(parts, " "))
		}
	}
	return out
}

// GetParams returns the transformer parameters.
func (p *PolynomialFeatures) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"degree": p.Degree,
	}
}

// String returns a short description.
func (p *PolynomialFeatures) String() string {
	if !p.IsFitted() {
		return fmt.Sprintf("PolynomialFeatures(degree=%d)", p.Degree)
	}
	return fmt.Sprintf("PolynomialFeatures(degree=%d, n_outputs=%d)", p.Degree, p.NOutputs)
}
