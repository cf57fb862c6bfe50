package regnet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathShapeAndOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	betaTrue := []float64{2, -1, 0.5, 0, 0}
	a, y := regressionProblem(rng, 50, betaTrue, 0.1)

	penalties := []float64{10, 5, 1, 0.5, 0.1}
	path, err := Path(a, y, penalties, 0.5, nil)
	require.NoError(t, err)
	require.Len(t, path, len(penalties))

	for i, step := range path {
		require.Equal(t, penalties[i], step.Penalty)
		require.Len(t, step.Coef, 5)
		if i > 0 {
			require.LessOrEqual(t, step.Penalty, path[i-1].Penalty)
		}
	}
}

func TestPathEmptyPenaltySequence(t *testing.T) {
	rng := rand.New(rand.NewSource(52))
	a := randomMatrix(rng, 10, 3)
	y := randomVector(rng, 10)

	path, err := Path(a, y, nil, 0.5, nil)
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestPathRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	a := randomMatrix(rng, 10, 3)
	y := randomVector(rng, 10)

	_, err := Path(a, y, []float64{1, 2, 3}, 0.5, nil)
	require.True(t, IsInvalidArgError(err), "increasing penalties: got %v", err)

	_, err = Path(a, y, []float64{3, 2, -1}, 0.5, nil)
	require.True(t, IsInvalidArgError(err), "negative penalty: got %v", err)

	_, err = Path(a, y, []float64{3, 2, 1}, 1.5, nil)
	require.True(t, IsInvalidArgError(err), "ratio above 1: got %v", err)

	_, err = Path(a, y, []float64{3, 2, 1}, -0.1, nil)
	require.True(t, IsInvalidArgError(err), "negative ratio: got %v", err)
}

// A zero mixing ratio routes every step through the closed-form ridge
// solver, so the steps match direct ridge fits exactly.
func TestPathRidgeOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(54))
	betaTrue := []float64{1, -2, 3}
	a, y := regressionProblem(rng, 40, betaTrue, 0.1)

	penalties := []float64{10, 1, 0.1}
	path, err := Path(a, y, penalties, 0, nil)
	require.NoError(t, err)
	require.Len(t, path, 3)

	for i, step := range path {
		require.True(t, step.Conv.Converged)
		require.Zero(t, step.Conv.Iterations, "closed-form fit reports zero cycles")

		direct, err := RidgeRegression(a, y, penalties[i], nil)
		require.NoError(t, err)
		require.Equal(t, direct.Coef, step.Coef)
	}
}

// Warm starting must not change results: every step matches an independent
// cold-started fit within tolerance.
func TestPathStepsIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	betaTrue := []float64{2, -1, 0, 0.5, 0, 0}
	a, y := regressionProblem(rng, 60, betaTrue, 0.1)

	penalties := []float64{8, 2, 0.5}
	opts := &Options{Tol: 1e-8, MaxIter: 50000}
	path, err := Path(a, y, penalties, 1, opts)
	require.NoError(t, err)

	for i, step := range path {
		cold, err := ElasticNet(a, y, penalties[i], 0, opts)
		require.NoError(t, err)
		check := VerifyVector(cold.Coef, step.Coef, RelaxedTolerance())
		require.Zero(t, check.NumErrors, "step %d: %s", i, check.String())
	}
}

// On a dataset with a few informative features and several noise features,
// the informative coefficients enter the path at or before the noise ones
// as the penalty decreases.
func TestPathInformativeFeaturesEnterFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(56))
	betaTrue := []float64{4, -3, 2.5, 0, 0, 0, 0, 0, 0, 0}
	a, y := regressionProblem(rng, 100, betaTrue, 0.05)

	path, err := Path(a, y, []float64{10, 1, 0.1}, 1, nil)
	require.NoError(t, err)

	entry := make([]int, 10) // first step index with a nonzero coefficient
	for j := range entry {
		entry[j] = len(path)
		for i, step := range path {
			if step.Coef[j] != 0 {
				entry[j] = i
				break
			}
		}
	}

	firstNoise := len(path)
	for j := 3; j < 10; j++ {
		if entry[j] < firstNoise {
			firstNoise = entry[j]
		}
	}
	for j := 0; j < 3; j++ {
		require.LessOrEqual(t, entry[j], firstNoise,
			"informative feature %d entered after a noise feature", j)
	}
}

func TestPathWarmStartOptionUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(57))
	betaTrue := []float64{1, -1, 2}
	a, y := regressionProblem(rng, 30, betaTrue, 0.1)

	seed := []float64{9, 9, 9}
	opts := &Options{WarmStart: seed}
	_, err := Path(a, y, []float64{5, 1}, 1, opts)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 9, 9}, seed, "caller's warm-start slice was modified")
}
