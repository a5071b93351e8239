// Package plotting renders training diagnostics such as convergence
// curves and coefficient profiles to image files.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/lassogo/linear"
	"github.com/YuminosukeSato/lassogo/pkg/errors"
)

// PlotConvergence writes a line chart of the per-sweep maximum
// coefficient change to filename. The image format follows the file
// extension (.png, .svg, .pdf).
//
// The y axis uses a log scale when every value is positive, which is
// the usual way to read linear convergence; otherwise it falls back to
// a linear scale.
func PlotConvergence(history []linear.SweepStat, filename string) error {
	if len(history) == 0 {
		return errors.NewValueError("PlotConvergence", "empty sweep history")
	}

	pts := make(plotter.XYs, len(history))
	allPositive := true
	for i, stat := range history {
		pts[i].X = float64(stat.Sweep)
		pts[i].Y = stat.MaxChange
		if stat.MaxChange <= 0 {
			allPositive = false
		}
	}

	p := plot.New()
	p.Title.Text = "Coordinate Descent Convergence"
	p.X.Label.Text = "Sweep"
	p.Y.Label.Text = "Max Coefficient Change"
	if allPositive {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build convergence line")
	}
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errors.Wrap(err, "failed to save convergence plot")
	}
	return nil
}

// PlotCoefficients writes a bar chart of the fitted coefficient vector
// to filename. Exactly-zero bars make the lasso's sparsity visible.
func PlotCoefficients(coef []float64, filename string) error {
	if len(coef) == 0 {
		return errors.NewValueError("PlotCoefficients", "empty coefficient vector")
	}

	p := plot.New()
	p.Title.Text = "Lasso Coefficients"
	p.X.Label.Text = "Feature"
	p.Y.Label.Text = "Coefficient"

	bars, err := plotter.NewBarChart(plotter.Values(coef), vg.Points(18))
	if err != nil {
		return errors.Wrap(err, "failed to build coefficient bars")
	}
	p.Add(bars)

	labels := make([]string, len(coef))
	for j := range coef {
		labels[j] = fmt.Sprintf("x%d", j)
	}
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errors.Wrap(err, "failed to save coefficient plot")
	}
	return nil
}
