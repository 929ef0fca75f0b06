// Package plotting renders labeled two-variable data together with the
// decision boundary of a trained logistic model, using gonum/plot.
//
//	p, err := plotting.PlotData(X, y, theta, plotting.WithTitle("lambda = 1"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := plotting.Save(p, "boundary.png"); err != nil {
//		log.Fatal(err)
//	}
//
// Negative samples (y = 0) are drawn as yellow rings and positive samples
// (y = 1) as plus signs. With a three-parameter theta the boundary is a
// straight line; with more parameters it is the zero-level contour of
// boundary.EvaluateGrid.
package plotting

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ezoic/logreg/boundary"
	scigoErrors "github.com/ezoic/logreg/pkg/errors"
	"github.com/ezoic/logreg/pkg/log"
)

// Labels used on the rendered figure.
const (
	NegativeLabel = "y = 0"
	PositiveLabel = "y = 1"
	BoundaryLabel = "Decision boundary"
	XLabel        = "Variable 1"
	YLabel        = "Variable 2"
)

// DefaultSize is the default width and height of a saved figure.
const DefaultSize = 6 * vg.Inch

var (
	negativeColor = color.RGBA{R: 191, G: 191, A: 255}
	positiveColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	boundaryColor = color.Black
)

var logger = log.GetLoggerWithName("plotting").With(log.OperationKey, log.OperationRender)

type config struct {
	title         string
	width, height vg.Length
	gridOpts      []boundary.GridOption
}

func newConfig(opts []Option) config {
	cfg := config{width: DefaultSize, height: DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures PlotData, Save and WriteTo.
type Option func(*config)

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSize sets the canvas size used by Save and WriteTo.
func WithSize(width, height vg.Length) Option {
	return func(c *config) {
		c.width, c.height = width, height
	}
}

// WithGridOptions forwards options to boundary.EvaluateGrid for the
// polynomial case.
func WithGridOptions(opts ...boundary.GridOption) Option {
	return func(c *config) {
		c.gridOpts = append(c.gridOpts, opts...)
	}
}

// PlotData builds a scatter plot of the m x 2 matrix X split by the 0/1
// labels y, and overlays the decision boundary of theta when it is non-nil.
//
// Parameters:
//   - X: Raw (unmapped) samples of shape (n_samples, 2)
//   - y: Labels, 0 or 1, one per row of X
//   - theta: Trained parameters, or nil for data only
//
// Returns:
//   - *plot.Plot: The figure, ready for Save or further customization
//   - error: nil on success
//
// Errors:
//   - ErrInvalidShape: X does not have 2 columns
//   - ErrDimensionMismatch: len(y) != rows(X)
//   - ErrEmptyData: X has no rows
//   - ErrInvalidArgument: y contains a value other than 0 or 1, or theta has
//     an unsupported length
func PlotData(X mat.Matrix, y mat.Vector, theta mat.Vector, opts ...Option) (_ *plot.Plot, err error) {
	defer scigoErrors.Recover(&err, "PlotData")
	start := time.Now()

	if X == nil || y == nil {
		return nil, scigoErrors.NewValueError("PlotData", "X and y cannot be nil")
	}
	m, n := X.Dims()
	if n != 2 {
		return nil, scigoErrors.NewShapeError("PlotData", 2, n)
	}
	if m == 0 {
		return nil, scigoErrors.NewModelError("PlotData", "empty data", scigoErrors.ErrEmptyData)
	}
	if y.Len() != m {
		return nil, scigoErrors.NewDimensionError("PlotData", m, y.Len(), 0)
	}

	cfg := newConfig(opts)

	var neg, pos plotter.XYs
	for i := range m {
		pt := plotter.XY{X: X.At(i, 0), Y: X.At(i, 1)}
		switch label := y.AtVec(i); label {
		case 0:
			neg = append(neg, pt)
		case 1:
			pos = append(pos, pt)
		default:
			return nil, scigoErrors.NewValidationError("y",
				fmt.Sprintf("must contain only binary values (0 or 1), found %g at index %d", label, i),
				label)
		}
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Legend.Top = true

	if err := addScatter(p, neg, NegativeLabel, draw.RingGlyph{}, negativeColor); err != nil {
		return nil, err
	}
	if err := addScatter(p, pos, PositiveLabel, draw.PlusGlyph{}, positiveColor); err != nil {
		return nil, err
	}

	if theta != nil {
		if err := addBoundary(p, X, theta, cfg); err != nil {
			return nil, err
		}
	}

	fields := []interface{}{
		log.SamplesKey, m,
		"negative", len(neg),
		"positive", len(pos),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	}
	if theta != nil {
		fields = append(fields, log.FeaturesKey, theta.Len())
	}
	logger.Debug("plot built", fields...)
	return p, nil
}

func addScatter(p *plot.Plot, pts plotter.XYs, label string, shape draw.GlyphDrawer, c color.Color) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return scigoErrors.Wrapf(err, "scatter %q", label)
	}
	s.Shape = shape
	s.Color = c
	s.Radius = vg.Points(3)
	p.Add(s)
	p.Legend.Add(label, s)
	return nil
}

func addBoundary(p *plot.Plot, X mat.Matrix, theta mat.Vector, cfg config) error {
	style := draw.LineStyle{Color: boundaryColor, Width: vg.Points(1.5)}

	if boundary.IsLinear(theta) {
		xs := mat.Col(nil, 0, X)
		lo, hi := floats.Min(xs), floats.Max(xs)
		if lo == hi {
			lo, hi = lo-1, hi+1
		}
		pts, err := boundary.LinearSegment(theta, lo, hi)
		if err != nil {
			return err
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return scigoErrors.Wrap(err, "decision boundary")
		}
		line.LineStyle = style
		p.Add(line)
		p.Legend.Add(BoundaryLabel, line)
		return nil
	}

	g, err := boundary.EvaluateGrid(theta, cfg.gridOpts...)
	if err != nil {
		return err
	}
	c := plotter.NewContour(g, []float64{0}, monochrome{boundaryColor})
	c.LineStyles = []draw.LineStyle{style}
	p.Add(c)
	return nil
}

// monochrome is a single-color palette, so every contour level is drawn in
// the same color.
type monochrome []color.Color

func (m monochrome) Colors() []color.Color { return m }

var _ palette.Palette = monochrome(nil)

// Save writes p to path in the format implied by its extension
// (.png, .svg, .pdf, .eps, .jpg, .tif).
func Save(p *plot.Plot, path string, opts ...Option) error {
	if p == nil {
		return scigoErrors.NewValueError("Save", "plot cannot be nil")
	}
	cfg := newConfig(opts)
	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return scigoErrors.Wrapf(err, "failed to save plot to %s", path)
	}
	logger.Info("plot saved", log.PathKey, path)
	return nil
}

// WriteTo renders p in the given format ("png", "svg", "pdf", ...) to w.
func WriteTo(p *plot.Plot, w io.Writer, format string, opts ...Option) (int64, error) {
	if p == nil {
		return 0, scigoErrors.NewValueError("WriteTo", "plot cannot be nil")
	}
	cfg := newConfig(opts)
	wt, err := p.WriterTo(cfg.width, cfg.height, format)
	if err != nil {
		return 0, scigoErrors.Wrapf(err, "unsupported plot format %q", format)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return n, scigoErrors.Wrap(err, "failed to render plot")
	}
	return n, nil
}
