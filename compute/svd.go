package compute

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrSVDNonConvergence is reported when the underlying factorization fails
// to converge. The caller decides whether to retry with perturbed input;
// the primitive layer never retries.
var ErrSVDNonConvergence = errors.New("compute: SVD failed to converge")

// SVD computes the thin singular value decomposition a = U Σ Vᵀ.
// For an m×n input with k = min(m,n) it returns U (m×k), the singular values
// in descending order (length k), and V (n×k). The input is not modified.
func SVD(a *Dense) (u *Dense, s []float64, v *Dense, err error) {
	m, n := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(m, n, a.Clone().RawData()), mat.SVDThin); !ok {
		return nil, nil, nil, ErrSVDNonConvergence
	}

	s = svd.Values(nil)

	var um, vm mat.Dense
	svd.UTo(&um)
	svd.VTo(&vm)
	return fromMat(&um), s, fromMat(&vm), nil
}

// fromMat copies a gonum matrix into a Dense.
func fromMat(src *mat.Dense) *Dense {
	r, c := src.Dims()
	out := NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		copy(out.Row(i), src.RawRowView(i))
	}
	return out
}
