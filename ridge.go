package regnet

import (
	"fmt"
	"math"

	"github.com/ridgelab/regnet/compute"
)

// RidgeRegression returns the coefficients minimizing ‖Aβ−y‖² + λ‖β‖².
//
// The closed form (AᵀA + λI)⁻¹Aᵀy is computed through the pseudo-inverse of
// the augmented system stacking √λ·I below A and zeros below y, which stays
// stable when AᵀA is ill-conditioned or when there are more features than
// samples. With λ=0 this degenerates to ordinary least squares and returns
// the minimum-norm solution in the rank-deficient case.
//
// Numerical failures from the pseudo-inverse propagate unchanged. A negative
// λ is an InvalidArgument error; a sample-count mismatch between a and y is
// a Dimension error.
func RidgeRegression(a *compute.Dense, y []float64, lambda float64, opts *Options) (*FitResult, error) {
	const op = "RidgeRegression"
	o := opts.withDefaults()
	n, _ := a.Dims()

	if lambda < 0 {
		return nil, NewInvalidArgError(op, fmt.Sprintf("negative ridge penalty %g", lambda))
	}
	if len(y) != n {
		return nil, NewDimensionError(op, fmt.Sprintf("design matrix has %d samples, response has %d", n, len(y)))
	}

	work := a
	yw := y
	var xMean []float64
	var yMean float64
	if o.Intercept {
		work, xMean = Center(a)
		yw, yMean = CenterLabels(y)
	}

	beta, err := ridgeCoef(work, yw, lambda, &o)
	if err != nil {
		return nil, err
	}

	res := &FitResult{Coef: beta}
	if o.Intercept {
		res.Intercept = yMean - compute.Dot(xMean, beta)
	}

	// Residual on the original system.
	r := compute.GetBuffer(n)
	copy(r, y)
	compute.Gemv(false, -1, a, beta, 1, r)
	if o.Intercept {
		for i := range r {
			r[i] -= res.Intercept
		}
	}
	res.Conv = Convergence{Residual: compute.Nrm2(r), Converged: true}
	compute.PutBuffer(r)

	return res, nil
}

// ridgeCoef computes the penalized coefficients via the augmented system.
func ridgeCoef(a *compute.Dense, y []float64, lambda float64, o *Options) ([]float64, error) {
	n, p := a.Dims()

	m := a
	b := y
	if lambda > 0 {
		aug := compute.NewDense(n+p, p, nil)
		for i := 0; i < n; i++ {
			copy(aug.Row(i), a.Row(i))
		}
		sqrtLambda := math.Sqrt(lambda)
		for j := 0; j < p; j++ {
			aug.Set(n+j, j, sqrtLambda)
		}
		m = aug

		bb := make([]float64, n+p)
		copy(bb, y)
		b = bb
	}

	pinv, err := PInv(m, o)
	if err != nil {
		return nil, err
	}

	beta := make([]float64, p)
	compute.Gemv(false, 1, pinv, b, 0, beta)
	return beta, nil
}
