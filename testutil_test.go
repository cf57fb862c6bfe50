package regnet

import (
	"math/rand"

	"github.com/ridgelab/regnet/compute"
)

// randomMatrix fills an n×p matrix with standard normal entries.
func randomMatrix(rng *rand.Rand, n, p int) *compute.Dense {
	m := compute.NewDense(n, p, nil)
	data := m.RawData()
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return m
}

// randomVector fills a vector with standard normal entries.
func randomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}
	return v
}

// rankDeficientMatrix builds an n×p matrix of the given rank as the product
// of two thin random factors.
func rankDeficientMatrix(rng *rand.Rand, n, p, rank int) *compute.Dense {
	left := randomMatrix(rng, n, rank)
	right := randomMatrix(rng, rank, p)
	out := compute.NewDense(n, p, nil)
	compute.Gemm(false, false, 1, left, right, 0, out)
	return out
}

// regressionProblem builds a standardized design matrix and a response
// generated from the given true coefficients plus optional noise.
func regressionProblem(rng *rand.Rand, n int, betaTrue []float64, noise float64) (*compute.Dense, []float64) {
	p := len(betaTrue)
	a, _, _ := Standardize(randomMatrix(rng, n, p))

	y := make([]float64, n)
	compute.Gemv(false, 1, a, betaTrue, 0, y)
	if noise > 0 {
		for i := range y {
			y[i] += noise * rng.NormFloat64()
		}
	}
	return a, y
}
