package linear

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lassogo/core/model"
	"github.com/YuminosukeSato/lassogo/core/parallel"
	"github.com/YuminosukeSato/lassogo/metrics"
	"github.com/YuminosukeSato/lassogo/pkg/errors"
)

// LinearRegression is ordinary least squares solved with the normal
// equations, (XᵀX)⁻¹Xᵀy, with an intercept term.
type LinearRegression struct {
	state *model.StateManager

	// Fitted attributes, scikit-learn naming.
	Coef_        []float64
	Intercept_   float64
	NFeaturesIn_ int
}

// NewLinearRegression creates an unfitted ordinary least squares model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{
		state: model.NewStateManager(),
	}
}

// Fit estimates coefficients and intercept from the training data.
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	// Augment X with a leading column of ones for the intercept.
	XWithIntercept := mat.NewDense(r, c+1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			XWithIntercept.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				XWithIntercept.Set(i, j+1, X.At(i, j))
			}
		}
	})

	var XT mat.Dense
	XT.CloneFrom(XWithIntercept.T())

	var XTX mat.Dense
	XTX.Mul(&XT, XWithIntercept)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var XTy mat.VecDense
	XTy.MulVec(&XT, yVec)

	weights := mat.NewVecDense(c+1, nil)
	weights.MulVec(&XTXInv, &XTy)

	lr.Intercept_ = weights.AtVec(0)
	lr.Coef_ = make([]float64, c)
	for j := 0; j < c; j++ {
		lr.Coef_[j] = weights.AtVec(j + 1)
	}
	lr.NFeaturesIn_ = c

	lr.state.SetDimensions(c, r)
	lr.state.SetFitted()
	return nil
}

// Predict computes X·β + b for each row of X and returns an n×1 matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeaturesIn_ {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeaturesIn_, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := lr.Intercept_
			for j := 0; j < c; j++ {
				pred += X.At(i, j) * lr.Coef_[j]
			}
			predictions.Set(i, 0, pred)
		}
	})
	return predictions, nil
}

// Score returns the coefficient of determination R² on the given data.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2ScoreMatrix(y, yPred)
}

// Coef returns a copy of the fitted coefficient vector, or nil before Fit.
func (lr *LinearRegression) Coef() []float64 {
	if lr.Coef_ == nil {
		return nil
	}
	coef := make([]float64, len(lr.Coef_))
	copy(coef, lr.Coef_)
	return coef
}

// Intercept returns the fitted intercept.
func (lr *LinearRegression) Intercept() float64 {
	return lr.Intercept_
}

// IsFitted reports whether Fit has completed successfully.
func (lr *LinearRegression) IsFitted() bool {
	return lr.state.IsFitted()
}

// String returns a scikit-learn style representation.
func (lr *LinearRegression) String() string {
	if !lr.state.IsFitted() {
		return "LinearRegression()"
	}
	return fmt.Sprintf("LinearRegression(n_features=%d)", lr.NFeaturesIn_)
}

// LoadFromSKLearn loads a model exported from scikit-learn as JSON.
func (lr *LinearRegression) LoadFromSKLearn(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return lr.LoadFromSKLearnReader(file)
}

// LoadFromSKLearnReader loads a scikit-learn exported model from r.
func (lr *LinearRegression) LoadFromSKLearnReader(r io.Reader) error {
	skModel, err := model.LoadSKLearnModelFromReader(r)
	if err != nil {
		return fmt.Errorf("failed to load sklearn model: %w", err)
	}

	params, err := model.LoadLinearRegressionParams(skModel)
	if err != nil {
		return fmt.Errorf("failed to load linear regression params: %w", err)
	}

	lr.Coef_ = make([]float64, len(params.Coefficients))
	copy(lr.Coef_, params.Coefficients)
	lr.Intercept_ = params.Intercept
	lr.NFeaturesIn_ = params.NFeatures

	if lr.state == nil {
		lr.state = model.NewStateManager()
	}
	lr.state.SetDimensions(lr.NFeaturesIn_, 0)
	lr.state.SetFitted()
	return nil
}

// ExportToSKLearn writes the model as scikit-learn compatible JSON.
func (lr *LinearRegression) ExportToSKLearn(filename string) error {
	if !lr.state.IsFitted() {
		return errors.NewNotFittedError("LinearRegression", "ExportToSKLearn")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return lr.ExportToSKLearnWriter(file)
}

// ExportToSKLearnWriter writes the model as scikit-learn compatible JSON
// to w.
func (lr *LinearRegression) ExportToSKLearnWriter(w io.Writer) error {
	if !lr.state.IsFitted() {
		return errors.NewNotFittedError("LinearRegression", "ExportToSKLearnWriter")
	}

	params := model.SKLearnLinearRegressionParams{
		Coefficients: lr.Coef(),
		Intercept:    lr.Intercept_,
		NFeatures:    lr.NFeaturesIn_,
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	skModel := model.SKLearnModel{
		ModelSpec: model.SKLearnModelSpec{
			Name:          "LinearRegression",
			FormatVersion: "1.0",
		},
		Params: paramsJSON,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&skModel); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}
