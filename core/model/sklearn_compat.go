package model

import (
	"encoding/json"
	"io"

	"github.com/YuminosukeSato/lassogo/pkg/errors"
)

// SKLearnModelSpec identifies a model exported from scikit-learn.
type SKLearnModelSpec struct {
	// Name is the scikit-learn estimator class name, e.g. "Lasso"
	Name string `json:"name"`

	// FormatVersion is the export format version
	FormatVersion string `json:"format_version"`
}

// SKLearnModel is the JSON envelope for parameters exported from
// scikit-learn. Params is kept raw so each estimator can decode its own
// parameter struct.
type SKLearnModel struct {
	ModelSpec SKLearnModelSpec `json:"model_spec"`
	Params    json.RawMessage  `json:"params"`
}

// LoadSKLearnModelFromReader reads and validates a scikit-learn model
// envelope from r.
func LoadSKLearnModelFromReader(r io.Reader) (*SKLearnModel, error) {
	var m SKLearnModel
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode sklearn model")
	}

	if m.ModelSpec.Name == "" {
		return nil, errors.NewValidationError("model_spec.name", "must not be empty", m.ModelSpec.Name)
	}
	if m.ModelSpec.FormatVersion == "" {
		return nil, errors.NewValidationError("model_spec.format_version", "must not be empty", m.ModelSpec.FormatVersion)
	}

	return &m, nil
}

// SKLearnLassoParams holds the parameters of a scikit-learn Lasso model.
type SKLearnLassoParams struct {
	// Alpha is the L1 penalty strength (scikit-learn naming)
	Alpha float64 `json:"alpha"`

	// Coefficients is the learned coefficient vector (coef_)
	Coefficients []float64 `json:"coefficients"`

	// Intercept is the learned intercept (intercept_)
	Intercept float64 `json:"intercept"`

	// NFeatures is the number of input features (n_features_in_)
	NFeatures int `json:"n_features"`

	// NIter is the number of coordinate descent sweeps run (n_iter_)
	NIter int `json:"n_iter,omitempty"`

	// MaxIter and Tol record the stopping configuration
	MaxIter int     `json:"max_iter,omitempty"`
	Tol     float64 `json:"tol,omitempty"`
}

// LoadLassoParams extracts Lasso parameters from a model envelope.
func LoadLassoParams(m *SKLearnModel) (*SKLearnLassoParams, error) {
	if m.ModelSpec.Name != "Lasso" {
		return nil, errors.NewModelError("LoadLassoParams", "unexpected model name: "+m.ModelSpec.Name, nil)
	}

	var params SKLearnLassoParams
	if err := json.Unmarshal(m.Params, &params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal Lasso params")
	}

	if params.NFeatures == 0 {
		params.NFeatures = len(params.Coefficients)
	}
	if params.NFeatures != len(params.Coefficients) {
		return nil, errors.NewDimensionError("LoadLassoParams", params.NFeatures, len(params.Coefficients), 1)
	}

	return &params, nil
}

// SKLearnLinearRegressionParams holds the parameters of a scikit-learn
// LinearRegression model.
type SKLearnLinearRegressionParams struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	NFeatures    int       `json:"n_features"`
}

// LoadLinearRegressionParams extracts LinearRegression parameters from a
// model envelope.
func LoadLinearRegressionParams(m *SKLearnModel) (*SKLearnLinearRegressionParams, error) {
	if m.ModelSpec.Name != "LinearRegression" {
		return nil, errors.NewModelError("LoadLinearRegressionParams", "unexpected model name: "+m.ModelSpec.Name, nil)
	}

	var params SKLearnLinearRegressionParams
	if err := json.Unmarshal(m.Params, &params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal LinearRegression params")
	}

	if params.NFeatures == 0 {
		params.NFeatures = len(params.Coefficients)
	}
	if params.NFeatures != len(params.Coefficients) {
		return nil, errors.NewDimensionError("LoadLinearRegressionParams", params.NFeatures, len(params.Coefficients), 1)
	}

	return &params, nil
}
