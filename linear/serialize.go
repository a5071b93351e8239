package linear

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/YuminosukeSato/lassogo/core/model"
	"github.com/YuminosukeSato/lassogo/pkg/errors"
)

// lassoGobPayload is the wire form of a Lasso model. The estimator keeps
// its hyperparameters unexported, so gob needs an explicit payload.
type lassoGobPayload struct {
	Lambda      float64
	MaxIter     int
	Tol         float64
	Standardize bool

	Fitted      bool
	Coef        []float64
	Intercept   float64
	NFeaturesIn int
	NSamples    int
	NIter       int
	Converged   bool
}

// GobEncode implements gob.GobEncoder.
func (l *Lasso) GobEncode() ([]byte, error) {
	_, nSamples := l.state.GetDimensions()
	payload := lassoGobPayload{
		Lambda:      l.lambda,
		MaxIter:     l.maxIter,
		Tol:         l.tol,
		Standardize: l.standardize,
		Fitted:      l.state.IsFitted(),
		Coef:        l.Coef(),
		Intercept:   l.Intercept_,
		NFeaturesIn: l.NFeaturesIn_,
		NSamples:    nSamples,
		NIter:       l.NIter_,
		Converged:   l.Converged_,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, errors.Wrap(err, "failed to gob-encode Lasso")
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (l *Lasso) GobDecode(data []byte) error {
	var payload lassoGobPayload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&payload); err != nil {
		return errors.Wrap(err, "failed to gob-decode Lasso")
	}

	l.state = model.NewStateManager()
	l.lambda = payload.Lambda
	l.maxIter = payload.MaxIter
	l.tol = payload.Tol
	l.standardize = payload.Standardize
	l.Coef_ = payload.Coef
	l.Intercept_ = payload.Intercept
	l.NFeaturesIn_ = payload.NFeaturesIn
	l.NIter_ = payload.NIter
	l.Converged_ = payload.Converged
	l.history = nil

	if payload.Fitted {
		l.state.SetDimensions(payload.NFeaturesIn, payload.NSamples)
		l.state.SetFitted()
	}
	return nil
}

// Save writes the fitted model to a file in gob format.
func (l *Lasso) Save(path string) error {
	if !l.state.IsFitted() {
		return errors.NewNotFittedError("Lasso", "Save")
	}
	return model.SaveModel(l, path)
}

// Load restores a model previously written by Save.
func (l *Lasso) Load(path string) error {
	return model.LoadModel(l, path)
}

// ExportWeights exports the fitted parameters together with the
// hyperparameters and training statistics.
func (l *Lasso) ExportWeights() (*model.ModelWeights, error) {
	if !l.state.IsFitted() {
		return nil, errors.NewNotFittedError("Lasso", "ExportWeights")
	}

	return &model.ModelWeights{
		ModelType:    "Lasso",
		Version:      "1.0",
		Coefficients: l.Coef(),
		Intercept:    l.Intercept_,
		Hyperparameters: map[string]interface{}{
			"lambda":      l.lambda,
			"max_iter":    l.maxIter,
			"tol":         l.tol,
			"standardize": l.standardize,
		},
		Metadata: map[string]interface{}{
			"n_iter":    l.NIter_,
			"converged": l.Converged_,
		},
		IsFitted: true,
	}, nil
}

// ImportWeights restores the model from exported weights.
func (l *Lasso) ImportWeights(weights *model.ModelWeights) error {
	if weights == nil {
		return errors.NewValueError("Lasso.ImportWeights", "weights must not be nil")
	}
	if err := weights.Validate(); err != nil {
		return err
	}
	if weights.ModelType != "Lasso" {
		return errors.NewValueError("Lasso.ImportWeights",
			fmt.Sprintf("unexpected model type %q", weights.ModelType))
	}

	if v, ok := weights.Hyperparameters["lambda"].(float64); ok {
		l.lambda = v
	}
	if v, ok := weights.Hyperparameters["max_iter"]; ok {
		switch n := v.(type) {
		case int:
			l.maxIter = n
		case float64:
			l.maxIter = int(n)
		}
	}
	if v, ok := weights.Hyperparameters["tol"].(float64); ok {
		l.tol = v
	}
	if v, ok := weights.Hyperparameters["standardize"].(bool); ok {
		l.standardize = v
	}

	l.Coef_ = make([]float64, len(weights.Coefficients))
	copy(l.Coef_, weights.Coefficients)
	l.Intercept_ = weights.Intercept
	l.NFeaturesIn_ = len(weights.Coefficients)
	l.history = nil

	if v, ok := weights.Metadata["n_iter"]; ok {
		switch n := v.(type) {
		case int:
			l.NIter_ = n
		case float64:
			l.NIter_ = int(n)
		}
	}
	if v, ok := weights.Metadata["converged"].(bool); ok {
		l.Converged_ = v
	}

	if l.state == nil {
		l.state = model.NewStateManager()
	}
	l.state.SetDimensions(l.NFeaturesIn_, 0)
	if weights.IsFitted {
		l.state.SetFitted()
	}
	return nil
}

// GetWeightHash returns the SHA-256 digest of the canonical JSON form of
// the exported weights, or an empty string when the model is unfitted.
func (l *Lasso) GetWeightHash() string {
	weights, err := l.ExportWeights()
	if err != nil {
		return ""
	}
	data, err := weights.ToJSON()
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// LoadFromSKLearn loads a model exported from scikit-learn as JSON.
//
// Example:
//
//	m := linear.NewLasso()
//	err := m.LoadFromSKLearn("sklearn_lasso.json")
func (l *Lasso) LoadFromSKLearn(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return l.LoadFromSKLearnReader(file)
}

// LoadFromSKLearnReader loads a scikit-learn exported model from r.
func (l *Lasso) LoadFromSKLearnReader(r io.Reader) error {
	skModel, err := model.LoadSKLearnModelFromReader(r)
	if err != nil {
		return fmt.Errorf("failed to load sklearn model: %w", err)
	}

	params, err := model.LoadLassoParams(skModel)
	if err != nil {
		return fmt.Errorf("failed to load lasso params: %w", err)
	}

	l.lambda = params.Alpha
	if params.MaxIter > 0 {
		l.maxIter = params.MaxIter
	}
	if params.Tol > 0 {
		l.tol = params.Tol
	}

	l.Coef_ = make([]float64, len(params.Coefficients))
	copy(l.Coef_, params.Coefficients)
	l.Intercept_ = params.Intercept
	l.NFeaturesIn_ = params.NFeatures
	l.NIter_ = params.NIter
	l.history = nil

	if l.state == nil {
		l.state = model.NewStateManager()
	}
	l.state.SetDimensions(l.NFeaturesIn_, 0)
	l.state.SetFitted()
	return nil
}

// ExportToSKLearn writes the model as scikit-learn compatible JSON.
func (l *Lasso) ExportToSKLearn(filename string) error {
	if !l.state.IsFitted() {
		return errors.NewNotFittedError("Lasso", "ExportToSKLearn")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return l.ExportToSKLearnWriter(file)
}

// ExportToSKLearnWriter writes the model as scikit-learn compatible JSON
// to w.
func (l *Lasso) ExportToSKLearnWriter(w io.Writer) error {
	if !l.state.IsFitted() {
		return errors.NewNotFittedError("Lasso", "ExportToSKLearnWriter")
	}

	params := model.SKLearnLassoParams{
		Alpha:        l.lambda,
		Coefficients: l.Coef(),
		Intercept:    l.Intercept_,
		NFeatures:    l.NFeaturesIn_,
		NIter:        l.NIter_,
		MaxIter:      l.maxIter,
		Tol:          l.tol,
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	skModel := model.SKLearnModel{
		ModelSpec: model.SKLearnModelSpec{
			Name:          "Lasso",
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
