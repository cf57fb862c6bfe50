package regnet

import (
	"math"

	"github.com/ridgelab/regnet/compute"
)

// PInv computes the Moore–Penrose pseudo-inverse of a through its singular
// value decomposition: A = U Σ Vᵀ, A⁺ = V Σ⁺ Uᵀ. Singular values below
// rcond·σmax are truncated to zero rather than inverted, so near-rank
// deficiency does not amplify numerical noise. The default cutoff follows
// opts.Rcond, or machine epsilon times max(rows, cols) when unset.
//
// An all-zero input yields the all-zero pseudo-inverse; single-row and
// single-column matrices follow the same formula. If the underlying
// factorization does not converge, PInv returns a Numerical error without
// retrying; the caller decides whether to retry with perturbed input.
func PInv(a *compute.Dense, opts *Options) (*compute.Dense, error) {
	const op = "PInv"
	o := opts.withDefaults()
	n, p := a.Dims()

	u, s, v, err := compute.SVD(a)
	if err != nil {
		return nil, NewNumericalError(op, "SVD factorization did not converge", err)
	}

	rcond := o.Rcond
	if rcond <= 0 {
		rcond = machEps * float64(max(n, p))
	}
	cutoff := rcond * s[0]

	// Scale the columns of V by the truncated inverse spectrum, then apply Uᵀ.
	k := len(s)
	scaled := compute.NewDense(p, k, nil)
	for l := 0; l < k; l++ {
		if s[l] <= cutoff {
			continue
		}
		inv := 1 / s[l]
		for i := 0; i < p; i++ {
			scaled.Set(i, l, v.At(i, l)*inv)
		}
	}

	pinv := compute.NewDense(p, n, nil)
	compute.Gemm(false, true, 1, scaled, u, 0, pinv)
	return pinv, nil
}

// machEps is the float64 machine epsilon, 2^-52.
var machEps = math.Nextafter(1, 2) - 1
