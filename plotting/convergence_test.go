package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/lassogo/linear"
)

func TestPlotConvergence(t *testing.T) {
	history := []linear.SweepStat{
		{Sweep: 1, MaxChange: 1.2},
		{Sweep: 2, MaxChange: 0.3},
		{Sweep: 3, MaxChange: 0.04},
		{Sweep: 4, MaxChange: 0.002},
	}

	path := filepath.Join(t.TempDir(), "convergence.png")
	if err := PlotConvergence(history, path); err != nil {
		t.Fatalf("PlotConvergence() unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestPlotConvergenceZeroChange(t *testing.T) {
	// A fully shrunk model records a zero change in its only sweep; the
	// plot must fall back to a linear scale instead of failing.
	history := []linear.SweepStat{{Sweep: 1, MaxChange: 0}}

	path := filepath.Join(t.TempDir(), "flat.png")
	if err := PlotConvergence(history, path); err != nil {
		t.Fatalf("PlotConvergence() unexpected error: %v", err)
	}
}

func TestPlotConvergenceEmptyHistory(t *testing.T) {
	if err := PlotConvergence(nil, "unused.png"); err == nil {
		t.Error("PlotConvergence() should reject an empty history")
	}
}

func TestPlotCoefficients(t *testing.T) {
	coef := []float64{3.0, -2.0, 0.0, 0.0, 0.5}

	path := filepath.Join(t.TempDir(), "coefficients.png")
	if err := PlotCoefficients(coef, path); err != nil {
		t.Fatalf("PlotCoefficients() unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestPlotCoefficientsEmpty(t *testing.T) {
	if err := PlotCoefficients(nil, "unused.png"); err == nil {
		t.Error("PlotCoefficients() should reject an empty vector")
	}
}
