package compute

import (
	"fmt"
	"math"
)

// BLAS-style dense operations. Shape mismatches are programming errors and
// panic; numeric inputs never fail. Accumulation within an output element is
// always sequential over k, so parallel and sequential paths agree bitwise.

// Gemm performs c = alpha*op(a)*op(b) + beta*c, where op is identity or
// transpose per the transA/transB flags. c must not alias a or b.
func Gemm(transA, transB bool, alpha float64, a, b *Dense, beta float64, c *Dense) {
	m, ka := opDims(a, transA)
	kb, n := opDims(b, transB)
	cm, cn := c.Dims()
	if ka != kb || cm != m || cn != n {
		panic(fmt.Sprintf("compute: Gemm shape mismatch op(a)=%dx%d op(b)=%dx%d c=%dx%d",
			m, ka, kb, n, cm, cn))
	}

	rowKernel := func(i int) {
		aBase, aStep := opRow(a, transA, i)
		crow := c.Row(i)
		for j := 0; j < n; j++ {
			bBase, bStep := opCol(b, transB, j)
			var sum float64
			ai, bi := aBase, bBase
			for k := 0; k < ka; k++ {
				sum += a.data[ai] * b.data[bi]
				ai += aStep
				bi += bStep
			}
			if beta == 0 {
				crow[j] = alpha * sum
			} else {
				crow[j] = alpha*sum + beta*crow[j]
			}
		}
	}

	if m*n*ka >= GemmParallelFlops && HasWideVectors() {
		grid, block := grid1D(m, GemmRowsPerBlock)
		Launch(func(tid ThreadID) {
			if i := tid.Global(); i < m {
				rowKernel(i)
			}
		}, grid, block)
		return
	}
	for i := 0; i < m; i++ {
		rowKernel(i)
	}
}

// Gemv performs y = alpha*op(a)*x + beta*y.
func Gemv(trans bool, alpha float64, a *Dense, x []float64, beta float64, y []float64) {
	m, n := opDims(a, trans)
	if len(x) != n || len(y) != m {
		panic(fmt.Sprintf("compute: Gemv shape mismatch op(a)=%dx%d x=%d y=%d",
			m, n, len(x), len(y)))
	}

	rowKernel := func(i int) {
		base, step := opRow(a, trans, i)
		var sum float64
		ai := base
		for k := 0; k < n; k++ {
			sum += a.data[ai] * x[k]
			ai += step
		}
		if beta == 0 {
			y[i] = alpha * sum
		} else {
			y[i] = alpha*sum + beta*y[i]
		}
	}

	if m*n >= GemvParallelSize && HasWideVectors() {
		grid, block := grid1D(m, GemvRowsPerBlock)
		Launch(func(tid ThreadID) {
			if i := tid.Global(); i < m {
				rowKernel(i)
			}
		}, grid, block)
		return
	}
	for i := 0; i < m; i++ {
		rowKernel(i)
	}
}

// Dot computes the dot product of x and y.
func Dot(x, y []float64) float64 {
	if len(x) != len(y) {
		panic(fmt.Sprintf("compute: Dot length mismatch %d vs %d", len(x), len(y)))
	}
	var sum float64
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

// Axpy performs y = alpha*x + y.
func Axpy(alpha float64, x, y []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("compute: Axpy length mismatch %d vs %d", len(x), len(y)))
	}
	for i := range x {
		y[i] += alpha * x[i]
	}
}

// Scale performs x = alpha*x.
func Scale(alpha float64, x []float64) {
	for i := range x {
		x[i] *= alpha
	}
}

// Nrm2 computes the Euclidean norm of x.
func Nrm2(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// MaxAbs returns the infinity norm of x, 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	var m float64
	for _, v := range x {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// opDims returns the dimensions of op(m).
func opDims(m *Dense, trans bool) (rows, cols int) {
	if trans {
		return m.cols, m.rows
	}
	return m.rows, m.cols
}

// opRow returns the backing-store base offset and stride walking row i of op(m).
func opRow(m *Dense, trans bool, i int) (base, step int) {
	if trans {
		return i, m.cols
	}
	return i * m.cols, 1
}

// opCol returns the backing-store base offset and stride walking column j of op(m).
func opCol(m *Dense, trans bool, j int) (base, step int) {
	if trans {
		return j * m.cols, 1
	}
	return j, m.cols
}
