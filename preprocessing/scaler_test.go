package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const tol = 1e-10

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1.0, 10.0,
		2.0, 20.0,
		3.0, 30.0,
		4.0, 40.0,
	})

	scaler := NewStandardScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() unexpected error: %v", err)
	}

	r, c := XScaled.Dims()
	if r != 4 || c != 2 {
		t.Fatalf("FitTransform() dims = (%d, %d), want (4, 2)", r, c)
	}

	// Each transformed column should have mean 0 and unit variance.
	for j := 0; j < c; j++ {
		var mean float64
		for i := 0; i < r; i++ {
			mean += XScaled.At(i, j)
		}
		mean /= float64(r)
		if math.Abs(mean) > tol {
			t.Errorf("column %d mean = %v, want 0", j, mean)
		}

		var variance float64
		for i := 0; i < r; i++ {
			diff := XScaled.At(i, j) - mean
			variance += diff * diff
		}
		variance /= float64(r)
		if math.Abs(variance-1.0) > tol {
			t.Errorf("column %d variance = %v, want 1", j, variance)
		}
	}
}

func TestStandardScalerConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.0, 7.0,
		2.0, 7.0,
		3.0, 7.0,
	})

	scaler := NewStandardScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() unexpected error: %v", err)
	}

	// The constant column gets scale 1, so it only loses its mean.
	if scaler.Scale[1] != 1.0 {
		t.Errorf("Scale[1] = %v, want 1.0", scaler.Scale[1])
	}
	for i := 0; i < 3; i++ {
		if got := XScaled.At(i, 1); math.Abs(got) > tol {
			t.Errorf("XScaled[%d][1] = %v, want 0", i, got)
		}
		if math.IsNaN(XScaled.At(i, 1)) {
			t.Errorf("XScaled[%d][1] is NaN", i)
		}
	}
}

func TestStandardScalerWithoutCentering(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{2.0, 4.0})

	scaler := NewStandardScaler(false, true)
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}
	if scaler.Mean[0] != 0.0 {
		t.Errorf("Mean[0] = %v, want 0 when centering is disabled", scaler.Mean[0])
	}
	if scaler.Scale[0] <= 0 {
		t.Errorf("Scale[0] = %v, want > 0", scaler.Scale[0])
	}
}

func TestStandardScalerInverseTransformRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.5, -2.0,
		0.5, 4.0,
		-3.0, 1.0,
	})

	scaler := NewStandardScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() unexpected error: %v", err)
	}

	XBack, err := scaler.InverseTransform(XScaled)
	if err != nil {
		t.Fatalf("InverseTransform() unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if diff := math.Abs(XBack.At(i, j) - X.At(i, j)); diff > 1e-9 {
				t.Errorf("round trip [%d][%d]: got %v, want %v", i, j, XBack.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	scaler := NewStandardScalerDefault()
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	if _, err := scaler.Transform(X); err == nil {
		t.Error("Transform() before Fit should fail")
	}
	if _, err := scaler.InverseTransform(X); err == nil {
		t.Error("InverseTransform() before Fit should fail")
	}
}

func TestStandardScalerDimensionMismatch(t *testing.T) {
	scaler := NewStandardScalerDefault()
	if err := scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}

	wrong := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if _, err := scaler.Transform(wrong); err == nil {
		t.Error("Transform() with extra features should fail")
	}
}

func TestStandardScalerEmptyData(t *testing.T) {
	scaler := NewStandardScalerDefault()
	if err := scaler.Fit(&mat.Dense{}); err == nil {
		t.Error("Fit() on empty data should fail")
	}
}

func TestMinMaxScalerDefaultRange(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.0, -5.0,
		2.0, 0.0,
		3.0, 5.0,
	})

	scaler := NewMinMaxScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() unexpected error: %v", err)
	}

	want := [][]float64{
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if diff := math.Abs(XScaled.At(i, j) - want[i][j]); diff > tol {
				t.Errorf("XScaled[%d][%d] = %v, want %v", i, j, XScaled.At(i, j), want[i][j])
			}
		}
	}
}

func TestMinMaxScalerCustomRange(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{0.0, 10.0})

	scaler := NewMinMaxScaler([2]float64{-1.0, 1.0})
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() unexpected error: %v", err)
	}

	if got := XScaled.At(0, 0); math.Abs(got+1.0) > tol {
		t.Errorf("min maps to %v, want -1", got)
	}
	if got := XScaled.At(1, 0); math.Abs(got-1.0) > tol {
		t.Errorf("max maps to %v, want 1", got)
	}
}

func TestMinMaxScalerConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{4.0, 4.0, 4.0})

	scaler := NewMinMaxScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		got := XScaled.At(i, 0)
		if math.IsNaN(got) {
			t.Fatalf("XScaled[%d][0] is NaN", i)
		}
		if math.Abs(got) > tol {
			t.Errorf("constant feature maps to %v, want 0", got)
		}
	}
}

func TestMinMaxScalerInverseTransformRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.0, -5.0,
		2.0, 0.0,
		3.0, 5.0,
	})

	scaler := NewMinMaxScaler([2]float64{-2.0, 2.0})
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() unexpected error: %v", err)
	}

	XBack, err := scaler.InverseTransform(XScaled)
	if err != nil {
		t.Fatalf("InverseTransform() unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if diff := math.Abs(XBack.At(i, j) - X.At(i, j)); diff > 1e-9 {
				t.Errorf("round trip [%d][%d]: got %v, want %v", i, j, XBack.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestMinMaxScalerNotFitted(t *testing.T) {
	scaler := NewMinMaxScalerDefault()
	if _, err := scaler.Transform(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Transform() before Fit should fail")
	}
}

func TestScalerString(t *testing.T) {
	s := NewStandardScalerDefault()
	if got := s.String(); got != "StandardScaler(with_mean=true, with_std=true)" {
		t.Errorf("String() = %q", got)
	}
	if err := s.Fit(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})); err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}
	if got := s.String(); got != "StandardScaler(with_mean=true, with_std=true, n_features=3)" {
		t.Errorf("String() after fit = %q", got)
	}

	m := NewMinMaxScalerDefault()
	if got := m.String(); got != "MinMaxScaler(feature_range=[0.0, 1.0])" {
		t.Errorf("String() = %q", got)
	}
}
