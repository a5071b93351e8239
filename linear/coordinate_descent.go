package linear

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SweepStat records the progress of one full coordinate sweep.
type SweepStat struct {
	// Sweep is the 1-based sweep number.
	Sweep int

	// MaxChange is the largest absolute coefficient update in the sweep.
	MaxChange float64
}

// SoftThreshold applies the soft-thresholding operator, the proximal map
// of the L1 penalty:
//
//	S(z, γ) = z - γ  if z > γ
//	          z + γ  if z < -γ
//	          0      otherwise
//
// Inputs inside [-γ, γ] collapse to exactly zero, which is what makes
// lasso coefficients sparse rather than merely small.
func SoftThreshold(z, gamma float64) float64 {
	switch {
	case z > gamma:
		return z - gamma
	case z < -gamma:
		return z + gamma
	default:
		return 0
	}
}

// cdLasso minimizes (1/2)‖y - Xβ‖² + λ‖β‖₁ by cyclic coordinate descent.
//
// Each sweep visits coordinates in ascending order and immediately folds
// every update back into the maintained residual r = y - Xβ, so later
// coordinates in the same sweep see the earlier updates. The loop is
// strictly sequential on purpose: identical inputs reproduce identical
// iterates bit for bit.
//
// All-zero columns are skipped entirely and their coefficient stays at
// exactly zero, so the update never divides by a zero norm.
//
// The returned resid is the maintained residual y - Xβ at the final
// iterate.
func cdLasso(X mat.Matrix, y []float64, lambda, tol float64, maxIter int) (beta, resid []float64, nIter int, converged bool, history []SweepStat) {
	n, p := X.Dims()

	// Column copies and squared norms, computed once up front.
	cols := make([][]float64, p)
	colNormSq := make([]float64, p)
	for j := 0; j < p; j++ {
		col := make([]float64, n)
		mat.Col(col, j, X)
		cols[j] = col
		colNormSq[j] = floats.Dot(col, col)
	}

	beta = make([]float64, p)

	// With β starting at zero the residual starts as a copy of y.
	resid = make([]float64, n)
	copy(resid, y)

	history = make([]SweepStat, 0, maxIter)

	for sweep := 1; sweep <= maxIter; sweep++ {
		maxChange := 0.0

		for j := 0; j < p; j++ {
			nrm := colNormSq[j]
			if nrm == 0 {
				continue
			}

			old := beta[j]
			rho := floats.Dot(cols[j], resid) + nrm*old
			next := SoftThreshold(rho/nrm, lambda/nrm)

			if next != old {
				// resid += X_j (β_old - β_new) keeps resid = y - Xβ exact.
				floats.AddScaled(resid, old-next, cols[j])
				beta[j] = next
			}

			if change := math.Abs(next - old); change > maxChange {
				maxChange = change
			}
		}

		nIter = sweep
		history = append(history, SweepStat{Sweep: sweep, MaxChange: maxChange})

		if maxChange < tol {
			converged = true
			break
		}
	}

	return beta, resid, nIter, converged, history
}
