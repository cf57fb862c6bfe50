package regnet

import (
	"fmt"

	"github.com/ridgelab/regnet/compute"
)

// PathStep is one entry of a regularization path: the penalty strength it
// was fit at, the fitted coefficients, and the fit's convergence record.
type PathStep struct {
	Penalty float64
	Coef    []float64
	Conv    Convergence
}

// Path sweeps the elastic-net penalty over a non-increasing sequence of
// strengths and returns one step per requested strength, sparsest solution
// first. The L1/L2 split at strength t is α = l1Ratio·t, λ = (1−l1Ratio)·t;
// an l1Ratio of zero selects the closed-form ridge solver instead of
// coordinate descent.
//
// Each step warm-starts from the previous step's coefficients, exploiting
// that the optimal solution changes smoothly as the penalty decreases; the
// first step starts from zero. An empty penalty sequence yields an empty
// path. The sweep aborts on the first InvalidArgument or Numerical error
// rather than skipping the failing penalty.
func Path(a *compute.Dense, y []float64, penalties []float64, l1Ratio float64, opts *Options) ([]PathStep, error) {
	const op = "Path"

	if l1Ratio < 0 || l1Ratio > 1 {
		return nil, NewInvalidArgError(op, fmt.Sprintf("mixing ratio %g outside [0,1]", l1Ratio))
	}
	for i, t := range penalties {
		if t < 0 {
			return nil, NewInvalidArgError(op, fmt.Sprintf("negative penalty %g at index %d", t, i))
		}
		if i > 0 && t > penalties[i-1] {
			return nil, NewInvalidArgError(op, "penalties must be non-increasing")
		}
	}

	path := make([]PathStep, 0, len(penalties))
	_, p := a.Dims()
	warm := make([]float64, p)

	for _, t := range penalties {
		var res *FitResult
		var err error

		if l1Ratio == 0 {
			res, err = RidgeRegression(a, y, t, opts)
		} else {
			o := opts.withDefaults()
			o.WarmStart = warm
			res, err = ElasticNet(a, y, l1Ratio*t, (1-l1Ratio)*t, &o)
		}
		if err != nil {
			return nil, err
		}

		copy(warm, res.Coef)
		path = append(path, PathStep{Penalty: t, Coef: res.Coef, Conv: res.Conv})
	}
	return path, nil
}
