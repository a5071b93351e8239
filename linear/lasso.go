// Package linear provides linear regression models with a scikit-learn
// compatible API, including an L1-penalized lasso solved by cyclic
// coordinate descent.
package linear

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lassogo/core/model"
	"github.com/YuminosukeSato/lassogo/core/parallel"
	"github.com/YuminosukeSato/lassogo/metrics"
	"github.com/YuminosukeSato/lassogo/pkg/errors"
	"github.com/YuminosukeSato/lassogo/pkg/log"
	"github.com/YuminosukeSato/lassogo/preprocessing"
)

// Row count above which batch prediction fans out across CPU cores.
const parallelThreshold = 1000

// Lasso is linear regression with an L1 penalty on the coefficients,
// fitted by cyclic coordinate descent:
//
//	minimize (1/2)‖y - Xβ‖² + λ‖β‖₁
//
// The solver works on the features exactly as given. For features on
// very different scales enable WithStandardize, which fits on
// standardized data and maps the solution back to the original units,
// including an intercept.
//
// A Lasso instance is not safe for concurrent mutation; clone the model
// or guard it externally when sharing across goroutines. Predict on a
// fitted model is read-only and safe to call concurrently.
type Lasso struct {
	state *model.StateManager

	// Hyperparameters, set through options.
	lambda      float64
	maxIter     int
	tol         float64
	standardize bool

	// Fitted attributes, scikit-learn naming.
	Coef_        []float64
	Intercept_   float64
	NFeaturesIn_ int
	NIter_       int
	Converged_   bool

	history []SweepStat
}

// NewLasso creates a lasso model with λ=1.0, max_iter=1000 and tol=1e-6
// unless overridden by options.
//
// Example:
//
//	m := linear.NewLasso(linear.WithLambda(0.5))
//	if err := m.Fit(X, y); err != nil {
//	    return err
//	}
//	yPred, err := m.Predict(XTest)
func NewLasso(opts ...Option) *Lasso {
	l := &Lasso{
		state:   model.NewStateManager(),
		lambda:  1.0,
		maxIter: 1000,
		tol:     1e-6,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fit estimates the coefficients of the model on the training data.
//
// X is an n_samples × n_features matrix and y an n_samples × 1 column
// vector. All validation happens before the first sweep, so a returned
// error means the model state is unchanged. Running out of sweeps
// before reaching the tolerance is not an error: the fit is kept,
// Converged_ is false and a ConvergenceWarning is emitted.
func (l *Lasso) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Lasso.Fit")

	start := time.Now()
	logger := log.GetLoggerWithName("linear.lasso")

	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("Lasso.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("Lasso.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("Lasso.Fit", "y must be a column vector")
	}
	if l.lambda < 0 {
		return errors.NewValidationError("lambda", "must be non-negative", l.lambda)
	}
	if l.maxIter <= 0 {
		return errors.NewValidationError("max_iter", "must be positive", l.maxIter)
	}
	if l.tol < 0 {
		return errors.NewValidationError("tol", "must be non-negative", l.tol)
	}
	if numErr := errors.CheckMatrix("Lasso.Fit", X, r, c, 0); numErr != nil {
		return numErr
	}
	if numErr := errors.CheckMatrix("Lasso.Fit", y, ry, cy, 0); numErr != nil {
		return numErr
	}

	logger.Debug("starting lasso fit",
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.LambdaKey, l.lambda,
		log.ToleranceKey, l.tol,
	)

	yVec := make([]float64, r)
	for i := 0; i < r; i++ {
		yVec[i] = y.At(i, 0)
	}

	var (
		coef      []float64
		resid     []float64
		intercept float64
		nIter     int
		converged bool
		history   []SweepStat
	)

	if l.standardize {
		scaler := preprocessing.NewStandardScalerDefault()
		XScaled, scaleErr := scaler.FitTransform(X)
		if scaleErr != nil {
			return scaleErr
		}

		var yMean float64
		for _, v := range yVec {
			yMean += v
		}
		yMean /= float64(r)

		yCentered := make([]float64, r)
		for i, v := range yVec {
			yCentered[i] = v - yMean
		}

		var beta []float64
		beta, resid, nIter, converged, history = cdLasso(XScaled, yCentered, l.lambda, l.tol, l.maxIter)

		// The solve ran on (x_j - μ_j)/σ_j against centered y. Rescale the
		// coefficients to original units and absorb the centering into an
		// intercept: β_j = β'_j/σ_j, b = ȳ - Σ β_j μ_j.
		coef = make([]float64, c)
		intercept = yMean
		for j := 0; j < c; j++ {
			coef[j] = beta[j] / scaler.Scale[j]
			intercept -= coef[j] * scaler.Mean[j]
		}
	} else {
		coef, resid, nIter, converged, history = cdLasso(X, yVec, l.lambda, l.tol, l.maxIter)
		intercept = 0
	}

	if numErr := errors.CheckNumericalStability("Lasso.Fit", coef, nIter); numErr != nil {
		return numErr
	}

	if !converged {
		errors.Warn(errors.NewConvergenceWarning("Lasso", nIter,
			"maximum number of sweeps reached without convergence"))
	}

	l.Coef_ = coef
	l.Intercept_ = intercept
	l.NFeaturesIn_ = c
	l.NIter_ = nIter
	l.Converged_ = converged
	l.history = history

	l.state.SetDimensions(c, r)
	l.state.SetFitted()

	logger.Info("lasso training finished",
		log.ModelNameKey, "Lasso",
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.LambdaKey, l.lambda,
		log.IterationKey, nIter,
		log.ConvergedKey, converged,
		log.LossKey, floats.Dot(resid, resid),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict computes X·β + b for each row of X and returns an n×1 matrix.
func (l *Lasso) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !l.state.IsFitted() {
		return nil, errors.NewNotFittedError("Lasso", "Predict")
	}

	r, c := X.Dims()
	if c != l.NFeaturesIn_ {
		return nil, errors.NewDimensionError("Lasso.Predict", l.NFeaturesIn_, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := l.Intercept_
			for j := 0; j < c; j++ {
				pred += X.At(i, j) * l.Coef_[j]
			}
			predictions.Set(i, 0, pred)
		}
	})
	return predictions, nil
}

// Score returns the coefficient of determination R² on the given data.
func (l *Lasso) Score(X, y mat.Matrix) (float64, error) {
	yPred, err := l.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2ScoreMatrix(y, yPred)
}

// Coef returns a copy of the fitted coefficient vector, or nil before Fit.
func (l *Lasso) Coef() []float64 {
	if l.Coef_ == nil {
		return nil
	}
	coef := make([]float64, len(l.Coef_))
	copy(coef, l.Coef_)
	return coef
}

// Intercept returns the fitted intercept. It is zero unless the model
// was configured with WithStandardize.
func (l *Lasso) Intercept() float64 {
	return l.Intercept_
}

// Lambda returns the configured L1 penalty strength.
func (l *Lasso) Lambda() float64 {
	return l.lambda
}

// NIter returns the number of coordinate sweeps the last Fit performed.
func (l *Lasso) NIter() int {
	return l.NIter_
}

// Converged reports whether the last Fit reached the tolerance before
// exhausting max_iter sweeps.
func (l *Lasso) Converged() bool {
	return l.Converged_
}

// History returns the per-sweep convergence statistics of the last Fit.
func (l *Lasso) History() []SweepStat {
	if l.history == nil {
		return nil
	}
	history := make([]SweepStat, len(l.history))
	copy(history, l.history)
	return history
}

// IsFitted reports whether Fit has completed successfully.
func (l *Lasso) IsFitted() bool {
	return l.state.IsFitted()
}

// GetParams returns the hyperparameters of the model.
func (l *Lasso) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"lambda":      l.lambda,
		"max_iter":    l.maxIter,
		"tol":         l.tol,
		"standardize": l.standardize,
	}
}

// SetParams updates hyperparameters from a parameter map. Unknown keys
// and mistyped values are rejected.
func (l *Lasso) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "lambda":
			v, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("lambda", "must be a float64", value)
			}
			l.lambda = v
		case "max_iter":
			switch v := value.(type) {
			case int:
				l.maxIter = v
			case float64:
				l.maxIter = int(v)
			default:
				return errors.NewValidationError("max_iter", "must be an int", value)
			}
		case "tol":
			v, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("tol", "must be a float64", value)
			}
			l.tol = v
		case "standardize":
			v, ok := value.(bool)
			if !ok {
				return errors.NewValidationError("standardize", "must be a bool", value)
			}
			l.standardize = v
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	return nil
}

// Clone returns an unfitted copy with the same hyperparameters.
func (l *Lasso) Clone() *Lasso {
	return &Lasso{
		state:       model.NewStateManager(),
		lambda:      l.lambda,
		maxIter:     l.maxIter,
		tol:         l.tol,
		standardize: l.standardize,
	}
}

// String returns a scikit-learn style representation.
func (l *Lasso) String() string {
	if !l.state.IsFitted() {
		return fmt.Sprintf("Lasso(lambda=%g, max_iter=%d, tol=%g)", l.lambda, l.maxIter, l.tol)
	}
	return fmt.Sprintf("Lasso(lambda=%g, max_iter=%d, tol=%g, n_features=%d, n_iter=%d, converged=%t)",
		l.lambda, l.maxIter, l.tol, l.NFeaturesIn_, l.NIter_, l.Converged_)
}
