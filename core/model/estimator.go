// Package model provides the shared estimator contracts and state management
// used by all lassogo models.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for models that can be trained on data.
type Fitter interface {
	// Fit trains the model on the given design matrix and target.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can make predictions.
type Predictor interface {
	// Predict returns predictions for the given input data.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R² of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// LinearModel is the interface for fitted linear models.
type LinearModel interface {
	// Coef returns the learned coefficients.
	Coef() []float64
	// Intercept returns the learned intercept.
	Intercept() float64
}

// Regressor combines the interfaces implemented by regression models.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}

// Transformer is the interface for data transformations such as scalers.
type Transformer interface {
	// Fit learns the parameters required for the transformation.
	Fit(X mat.Matrix) error

	// Transform applies the transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits the transformer and transforms X in one step.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// InverseTransformer is the interface for transformations that can be undone.
type InverseTransformer interface {
	Transformer

	// InverseTransform applies the inverse transformation to X.
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}

// WeightExporter is the interface for models whose weights can be exported
// and re-imported, with a hash for integrity checks.
type WeightExporter interface {
	// ExportWeights exports the model's weights.
	ExportWeights() (*ModelWeights, error)

	// ImportWeights imports previously exported weights.
	ImportWeights(weights *ModelWeights) error

	// GetWeightHash computes a hash of the weights for verification.
	GetWeightHash() string
}

// Persistable is the interface for models that can be saved and loaded.
type Persistable interface {
	// Save saves the model to a file.
	Save(path string) error

	// Load loads the model from a file.
	Load(path string) error
}
