package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/YuminosukeSato/lassogo/pkg/errors"
)

// SaveModel saves a model to a file using gob encoding.
//
// Example:
//
//	lasso := linear.NewLasso(linear.WithLambda(0.5))
//	// ... fit the model ...
//	err := model.SaveModel(lasso, "lasso.gob")
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer file.Close()

	return SaveModelToWriter(model, file)
}

// LoadModel loads a model from a file written by SaveModel.
// model must be a pointer to the concrete model type.
//
// Example:
//
//	lasso := linear.NewLasso()
//	err := model.LoadModel(lasso, "lasso.gob")
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return LoadModelFromReader(model, file)
}

// SaveModelToWriter gob-encodes a model into w.
func SaveModelToWriter(model interface{}, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(model); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader gob-decodes a model from r.
// model must be a pointer to the concrete model type.
func LoadModelFromReader(model interface{}, r io.Reader) error {
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(model); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}
