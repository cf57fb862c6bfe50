package regnet

// Options holds tuning parameters shared by the solvers. Fields not relevant
// to a particular solver are ignored by it. A nil *Options means defaults.
type Options struct {
	// Tol is the coordinate-descent convergence tolerance: a fit converges
	// when the largest absolute coefficient change in a full cycle drops
	// below Tol relative to the coefficient scale.
	Tol float64

	// MaxIter caps the number of full coordinate-descent cycles. Hitting
	// the cap is reported via Convergence.Converged, not as an error.
	MaxIter int

	// Rcond is the relative singular value cutoff for the pseudo-inverse.
	// Zero selects the default, machine epsilon times max(rows, cols).
	Rcond float64

	// WarmStart, when non-nil, seeds the elastic-net coefficients. Its
	// length must equal the number of features.
	WarmStart []float64

	// Intercept requests fitting an unpenalized intercept: the solver
	// centers working copies of the design matrix and response, and reports
	// the intercept alongside the coefficients. Inputs are never mutated.
	Intercept bool
}

// DefaultOptions returns the recommended default parameters.
func DefaultOptions() *Options {
	return &Options{
		Tol:     1e-4,
		MaxIter: 1000,
	}
}

// withDefaults fills zero fields of a possibly-nil Options.
func (o *Options) withDefaults() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Tol <= 0 {
		out.Tol = 1e-4
	}
	if out.MaxIter <= 0 {
		out.MaxIter = 1000
	}
	return out
}

// Convergence is the per-fit diagnostic record.
type Convergence struct {
	// Iterations is the number of full coordinate-descent cycles run.
	// Closed-form fits report zero.
	Iterations int

	// Residual is the final residual norm ‖Aβ−y‖.
	Residual float64

	// MaxDelta is the largest absolute coefficient change in the last cycle.
	MaxDelta float64

	// Converged reports whether the tolerance was met within the iteration
	// budget. Closed-form fits report true.
	Converged bool
}

// FitResult is the output of a single solver fit. Coef always has length
// equal to the number of columns of the design matrix it was fit against.
type FitResult struct {
	Coef      []float64
	Intercept float64
	Conv      Convergence
}
