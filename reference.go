// Package regnet reference implementations for verification
package regnet

import (
	"math"

	"github.com/ridgelab/regnet/compute"
)

// Reference contains simple, correct implementations used for testing and
// verification of the solver stack and the compute kernels.
type Reference struct{}

// MatMul computes a·b with the naive triple loop.
func (r Reference) MatMul(a, b *compute.Dense) *compute.Dense {
	m, ka := a.Dims()
	kb, n := b.Dims()
	if ka != kb {
		panic("reference: MatMul shape mismatch")
	}
	out := compute.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < ka; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// MatVec computes a·x with the naive double loop.
func (r Reference) MatVec(a *compute.Dense, x []float64) []float64 {
	m, n := a.Dims()
	if len(x) != n {
		panic("reference: MatVec shape mismatch")
	}
	out := make([]float64, m)
	for i := 0; i < m; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a.At(i, j) * x[j]
		}
		out[i] = sum
	}
	return out
}

// Transpose returns aᵀ.
func (r Reference) Transpose(a *compute.Dense) *compute.Dense {
	m, n := a.Dims()
	out := compute.NewDense(n, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}
	return out
}

// Inverse computes the exact inverse of a square full-rank matrix by
// Gauss-Jordan elimination with partial pivoting. It returns false when a
// pivot collapses, i.e. the matrix is singular to working precision.
func (r Reference) Inverse(a *compute.Dense) (*compute.Dense, bool) {
	n, m := a.Dims()
	if n != m {
		panic("reference: Inverse needs a square matrix")
	}

	// Augment [a | I] and reduce.
	work := compute.NewDense(n, 2*n, nil)
	for i := 0; i < n; i++ {
		copy(work.Row(i)[:n], a.Row(i))
		work.Set(i, n+i, 1)
	}

	for col := 0; col < n; col++ {
		pivot := col
		for i := col + 1; i < n; i++ {
			if math.Abs(work.At(i, col)) > math.Abs(work.At(pivot, col)) {
				pivot = i
			}
		}
		if work.At(pivot, col) == 0 {
			return nil, false
		}
		if pivot != col {
			pr, cr := work.Row(pivot), work.Row(col)
			for j := range pr {
				pr[j], cr[j] = cr[j], pr[j]
			}
		}

		inv := 1 / work.At(col, col)
		row := work.Row(col)
		for j := range row {
			row[j] *= inv
		}
		for i := 0; i < n; i++ {
			if i == col {
				continue
			}
			f := work.At(i, col)
			if f == 0 {
				continue
			}
			target := work.Row(i)
			for j := range target {
				target[j] -= f * row[j]
			}
		}
	}

	out := compute.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		copy(out.Row(i), work.Row(i)[n:])
	}
	return out, true
}

// OLS solves the ordinary least squares problem through the normal equations
// AᵀAβ = Aᵀy. It requires AᵀA to be invertible, so it only serves as a
// reference on full-rank systems with at least as many samples as features.
func (r Reference) OLS(a *compute.Dense, y []float64) ([]float64, bool) {
	at := r.Transpose(a)
	ata := r.MatMul(at, a)
	inv, ok := r.Inverse(ata)
	if !ok {
		return nil, false
	}
	aty := r.MatVec(at, y)
	return r.MatVec(inv, aty), true
}

// RidgeNormal solves the ridge problem through the normal equations
// (AᵀA + λI)β = Aᵀy, for cross-checking the pseudo-inverse path.
func (r Reference) RidgeNormal(a *compute.Dense, y []float64, lambda float64) ([]float64, bool) {
	at := r.Transpose(a)
	ata := r.MatMul(at, a)
	n, _ := ata.Dims()
	for i := 0; i < n; i++ {
		ata.Set(i, i, ata.At(i, i)+lambda)
	}
	inv, ok := r.Inverse(ata)
	if !ok {
		return nil, false
	}
	aty := r.MatVec(at, y)
	return r.MatVec(inv, aty), true
}
