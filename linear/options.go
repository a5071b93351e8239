package linear

// Option configures a Lasso model at construction time.
type Option func(*Lasso)

// WithLambda sets the L1 penalty strength λ. Zero disables the penalty,
// reducing the model to ordinary least squares solved coordinate-wise.
func WithLambda(lambda float64) Option {
	return func(l *Lasso) {
		l.lambda = lambda
	}
}

// WithMaxIter sets the maximum number of coordinate sweeps.
func WithMaxIter(maxIter int) Option {
	return func(l *Lasso) {
		l.maxIter = maxIter
	}
}

// WithTol sets the convergence tolerance on the largest coefficient
// change per sweep.
func WithTol(tol float64) Option {
	return func(l *Lasso) {
		l.tol = tol
	}
}

// WithStandardize fits on mean-centered, unit-variance features and a
// centered response, then rescales the solution back to the original
// units and computes an intercept.
func WithStandardize(standardize bool) Option {
	return func(l *Lasso) {
		l.standardize = standardize
	}
}
