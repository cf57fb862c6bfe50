package regnet

import (
	"math"

	"github.com/ridgelab/regnet/compute"
)

// Center returns a copy of a with the column means removed, along with the
// means. The input is not modified.
func Center(a *compute.Dense) (centered *compute.Dense, means []float64) {
	n, p := a.Dims()
	means = make([]float64, p)
	for i := 0; i < n; i++ {
		row := a.Row(i)
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	centered = a.Clone()
	for i := 0; i < n; i++ {
		row := centered.Row(i)
		for j := range row {
			row[j] -= means[j]
		}
	}
	return centered, means
}

// CenterLabels returns a copy of y with its mean removed, along with the mean.
func CenterLabels(y []float64) (centered []float64, mean float64) {
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	centered = make([]float64, len(y))
	for i, v := range y {
		centered[i] = v - mean
	}
	return centered, mean
}

// Standardize returns a copy of a with each column shifted to zero mean and
// scaled to unit sample variance, along with the column means and standard
// deviations. Standard deviations use the n−1 normalization. A constant
// column cannot be scaled; it is centered to all zeros and its reported
// standard deviation is zero.
//
// The solvers expect their design matrix in this form; they do not
// standardize internally.
func Standardize(a *compute.Dense) (standardized *compute.Dense, means, stds []float64) {
	n, p := a.Dims()
	standardized, means = Center(a)

	stds = make([]float64, p)
	for i := 0; i < n; i++ {
		row := standardized.Row(i)
		for j, v := range row {
			stds[j] += v * v
		}
	}
	for j := range stds {
		if n > 1 {
			stds[j] = math.Sqrt(stds[j] / float64(n-1))
		} else {
			stds[j] = 0
		}
	}

	for i := 0; i < n; i++ {
		row := standardized.Row(i)
		for j := range row {
			if stds[j] > 0 {
				row[j] /= stds[j]
			}
		}
	}
	return standardized, means, stds
}
