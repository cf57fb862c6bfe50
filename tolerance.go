// Package regnet tolerance-based verification for floating-point comparisons
package regnet

import (
	"fmt"
	"math"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int
}

// DefaultTolerance returns default tolerance configuration
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-10,
		RelTol: 1e-8,
		ULPTol: 4,
	}
}

// StrictTolerance returns strict tolerance configuration for high precision
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-13,
		RelTol: 1e-11,
		ULPTol: 1,
	}
}

// RelaxedTolerance returns relaxed tolerance for accumulated operations,
// such as comparing an iterative solution against a closed-form one.
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-6,
		RelTol: 1e-4,
		ULPTol: 1 << 20,
	}
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	// Any remaining infinity cannot match: diff would be infinite and
	// satisfy the relative bound against an infinite larger value.
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	// Exactly equal (handles ±0)
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	if tol.ULPTol > 0 && Float64ULPDiff(a, b) <= tol.ULPTol {
		return true
	}

	return false
}

// Float64ULPDiff computes the difference in ULPs between two float64 values
func Float64ULPDiff(a, b float64) int {
	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	// Different signs cannot use simple bit subtraction
	if (aBits^bBits)&(1<<63) != 0 {
		if a == b { // +0 and -0
			return 0
		}
		return math.MaxInt
	}

	if aBits > bBits {
		return int(aBits - bBits)
	}
	return int(bBits - aBits)
}

// VerificationResult summarizes an element-wise vector comparison
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyVector compares two float64 slices and returns detailed results
func VerifyVector(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	for i := range expected {
		if !Float64NearEqual(expected[i], actual[i], tol) {
			result.NumErrors++
			if result.FirstError == -1 {
				result.FirstError = i
			}

			absDiff := math.Abs(expected[i] - actual[i])
			if absDiff > result.MaxAbsError {
				result.MaxAbsError = absDiff
			}
			if expected[i] != 0 {
				relDiff := absDiff / math.Abs(expected[i])
				if relDiff > result.MaxRelError {
					result.MaxRelError = relDiff
				}
			}
		}
	}

	return result
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}

	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError, r.FirstError)
}
