package regnet

import (
	"fmt"
	"math"
)

// LinearRange returns n equally spaced values from min to max inclusive.
func LinearRange(min, max float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, NewInvalidArgError("LinearRange", fmt.Sprintf("need at least 2 values, got %d", n))
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out, nil
}

// GeometricRange returns n geometrically spaced values from min to max
// inclusive. min and max must be positive. Penalty sweeps conventionally use
// this spacing so that small penalties are sampled as densely, in relative
// terms, as large ones.
func GeometricRange(min, max float64, n int) ([]float64, error) {
	const op = "GeometricRange"
	if n < 2 {
		return nil, NewInvalidArgError(op, fmt.Sprintf("need at least 2 values, got %d", n))
	}
	if min <= 0 || max <= 0 {
		return nil, NewInvalidArgError(op, fmt.Sprintf("endpoints must be positive, got [%g, %g]", min, max))
	}
	ratio := math.Pow(max/min, 1/float64(n-1))
	out := make([]float64, n)
	v := min
	for i := range out {
		out[i] = v
		v *= ratio
	}
	out[n-1] = max
	return out, nil
}

// Reversed returns a copy of values in reverse order. Penalty ranges are
// generated ascending; the path computer consumes them descending.
func Reversed(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}
