// Package lassogo provides L1-regularized linear regression for Go,
// built around a cyclic coordinate descent solver.
//
// The library follows a scikit-learn-like API so that engineers familiar
// with Python's ecosystem can move models between the two worlds: fitted
// attributes use the trailing-underscore convention, estimators expose
// Fit/Predict/Score, and models can be exchanged with scikit-learn as
// JSON.
//
// # Features
//
// - Coordinate Descent: exact soft-thresholding updates with incremental residuals
// - Deterministic: repeated fits on the same data give bit-identical results
// - scikit-learn-like API: familiar interface design for easy adoption
// - Robust Error Handling: typed errors with stack traces, warnings for soft failures
// - Model Exchange: JSON import/export compatible with scikit-learn, gob for Go
//
// # Installation
//
// Install using go get:
//
//	go get github.com/YuminosukeSato/lassogo
//
// # Quick Start
//
// Here's a simple example of lasso regression:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/lassogo/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // Create training data
//	    X := mat.NewDense(4, 2, []float64{1, 0, 2, 1, 3, 0, 4, 1})
//	    y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})
//
//	    // Create and train model
//	    model := linear.NewLasso(linear.WithLambda(0.1))
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Make predictions
//	    XTest := mat.NewDense(2, 2, []float64{5, 0, 6, 1})
//	    predictions, err := model.Predict(XTest)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("Predictions:", predictions)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - linear: Lasso and ordinary least squares (LinearRegression)
//   - metrics: Evaluation metrics (MSE, RMSE, MAE, R², MAPE)
//   - preprocessing: StandardScaler and MinMaxScaler
//   - plotting: Convergence and coefficient plots
//   - core/model: Core interfaces, state tracking and persistence
//   - core/parallel: Parallel processing utilities for batch operations
//   - pkg/errors: Typed errors and warnings
//   - pkg/log: Structured logging
//
// # scikit-learn Compatibility
//
// Models trained with scikit-learn can be loaded from JSON and vice
// versa:
//
//	model := linear.NewLasso()
//	if err := model.LoadFromSKLearn("sklearn_lasso.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Performance
//
// The solver itself runs strictly sequentially, which keeps results
// reproducible. Batch operations such as Predict and the preprocessing
// transforms parallelize automatically across CPU cores for inputs with
// more than 1000 rows.
package lassogo
