package regnet

import (
	"fmt"
	"math"

	"github.com/ridgelab/regnet/compute"
)

// L1Bounds returns a useful range [tauMin, tauMax] for the L1 penalty of an
// elastic-net sweep on the given data, in the same units as the alpha
// argument of ElasticNet. Starting from zero coefficients, any penalty at or
// above max_j|x_jᵀy| forces the fully sparse (all-zero) solution, so tauMax
// sits a relative margin eps below that saturation point and tauMin is the
// same relative margin above zero. eps must lie in (0, 0.5); pass
// DefaultL1BoundsEps for the standard margin.
func L1Bounds(a *compute.Dense, y []float64, eps float64) (tauMin, tauMax float64, err error) {
	const op = "L1Bounds"
	n, p := a.Dims()

	if len(y) != n {
		return 0, 0, NewDimensionError(op, fmt.Sprintf("design matrix has %d samples, response has %d", n, len(y)))
	}
	if eps <= 0 || eps >= 0.5 {
		return 0, 0, NewInvalidArgError(op, fmt.Sprintf("eps %g outside (0, 0.5)", eps))
	}

	// max_j |x_jᵀ y|
	corr := make([]float64, p)
	compute.Gemv(true, 1, a, y, 0, corr)
	var maxCorr float64
	for _, v := range corr {
		if av := math.Abs(v); av > maxCorr {
			maxCorr = av
		}
	}

	sat := maxCorr
	if sat == 0 {
		return 0, 0, NewInvalidArgError(op, "response is uncorrelated with every feature")
	}

	return sat * eps, sat * (1 - eps), nil
}

// DefaultL1BoundsEps is the standard relative margin for L1Bounds.
const DefaultL1BoundsEps = 1e-5
