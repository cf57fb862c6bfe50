package regnet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ridgelab/regnet/compute"
)

// With α=0 the elastic-net objective coincides with ridge regression at the
// same λ, so coordinate descent must converge to the same coefficients.
func TestElasticNetZeroAlphaMatchesRidge(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	betaTrue := []float64{2, -1, 0.5, 0, 0}
	a, y := regressionProblem(rng, 60, betaTrue, 0.1)

	for _, lambda := range []float64{0.1, 1, 10} {
		ridge, err := RidgeRegression(a, y, lambda, nil)
		require.NoError(t, err)

		opts := &Options{Tol: 1e-10, MaxIter: 100000}
		en, err := ElasticNet(a, y, 0, lambda, opts)
		require.NoError(t, err)
		require.True(t, en.Conv.Converged, "lambda=%g did not converge", lambda)

		check := VerifyVector(ridge.Coef, en.Coef, RelaxedTolerance())
		require.Zero(t, check.NumErrors, "lambda=%g: %s", lambda, check.String())
	}
}

// A large L1 penalty drives weakly correlated coefficients exactly to zero.
func TestElasticNetSparsity(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	betaTrue := []float64{5, -4, 3, 0, 0, 0, 0, 0}
	a, y := regressionProblem(rng, 200, betaTrue, 0.05)

	// Informative correlations grow with the sample count while spurious
	// noise correlations only grow with its square root, so this penalty
	// separates them cleanly.
	res, err := ElasticNet(a, y, 300, 0, nil)
	require.NoError(t, err)

	zeros := 0
	for _, v := range res.Coef[3:] {
		if v == 0 {
			zeros++
		}
	}
	require.GreaterOrEqual(t, zeros, 4, "expected the noise coefficients to be exactly zero, got %v", res.Coef)
	require.NotZero(t, res.Coef[0], "strongest informative coefficient was thresholded away")
}

func TestElasticNetFullSaturation(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	betaTrue := []float64{1, -1, 0.5}
	a, y := regressionProblem(rng, 50, betaTrue, 0)

	_, tauMax, err := L1Bounds(a, y, DefaultL1BoundsEps)
	require.NoError(t, err)

	// Starting from zero, β stays at zero iff the penalty clears every
	// feature correlation |x_jᵀy|; tauMax sits a hair below that point,
	// so nudging it over the margin saturates the fit.
	res, err := ElasticNet(a, y, 1.01*tauMax, 0, nil)
	require.NoError(t, err)
	for j, v := range res.Coef {
		require.Zero(t, v, "coefficient %d survived a saturating penalty", j)
	}
	require.True(t, res.Conv.Converged)
}

func TestElasticNetZeroColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(34))
	a := randomMatrix(rng, 30, 5)
	for i := 0; i < 30; i++ {
		a.Set(i, 3, 0)
	}
	y := randomVector(rng, 30)

	res, err := ElasticNet(a, y, 0.5, 0.5, nil)
	require.NoError(t, err)
	require.Zero(t, res.Coef[3], "zero column must get a coefficient of exactly 0")
}

func TestElasticNetWarmStartSpeedsConvergence(t *testing.T) {
	rng := rand.New(rand.NewSource(35))
	betaTrue := []float64{3, -2, 1, 0, 0, 0}
	a, y := regressionProblem(rng, 70, betaTrue, 0.1)

	// Both fits run well past the default tolerance so that the solutions
	// agree to far better than the comparison tolerance below.
	cold, err := ElasticNet(a, y, 1, 0.5, &Options{Tol: 1e-10, MaxIter: 100000})
	require.NoError(t, err)
	require.True(t, cold.Conv.Converged)

	warm, err := ElasticNet(a, y, 1, 0.5, &Options{Tol: 1e-10, MaxIter: 100000, WarmStart: cold.Coef})
	require.NoError(t, err)
	require.True(t, warm.Conv.Converged)
	require.LessOrEqual(t, warm.Conv.Iterations, cold.Conv.Iterations,
		"restarting from the solution should not take more cycles")

	check := VerifyVector(cold.Coef, warm.Coef, RelaxedTolerance())
	require.Zero(t, check.NumErrors, check.String())
}

// Exhausting the iteration budget is reported through the convergence
// record, never as an error, and still yields usable coefficients.
func TestElasticNetIterationCap(t *testing.T) {
	rng := rand.New(rand.NewSource(36))
	betaTrue := []float64{2, -3, 1, 0.5, -0.5, 0, 0, 0}
	a, y := regressionProblem(rng, 60, betaTrue, 0.2)

	res, err := ElasticNet(a, y, 0.01, 0.01, &Options{Tol: 1e-15, MaxIter: 2})
	require.NoError(t, err)
	require.False(t, res.Conv.Converged)
	require.Equal(t, 2, res.Conv.Iterations)
	require.Len(t, res.Coef, 8)
	require.NotZero(t, compute.Nrm2(res.Coef), "capped fit should still make progress")
}

func TestElasticNetInvalidArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	a := randomMatrix(rng, 10, 3)
	y := randomVector(rng, 10)

	_, err := ElasticNet(a, y, -1, 0, nil)
	require.True(t, IsInvalidArgError(err), "negative alpha: got %v", err)

	_, err = ElasticNet(a, y, 0, -1, nil)
	require.True(t, IsInvalidArgError(err), "negative lambda: got %v", err)

	_, err = ElasticNet(a, y[:5], 1, 1, nil)
	require.True(t, IsDimensionError(err), "short response: got %v", err)

	_, err = ElasticNet(a, y, 1, 1, &Options{WarmStart: make([]float64, 7)})
	require.True(t, IsDimensionError(err), "bad warm start length: got %v", err)
}

func TestElasticNetDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(38))
	betaTrue := []float64{1, 2, -1, 0}
	a, y := regressionProblem(rng, 40, betaTrue, 0.1)

	r1, err := ElasticNet(a, y, 0.3, 0.2, nil)
	require.NoError(t, err)
	r2, err := ElasticNet(a, y, 0.3, 0.2, nil)
	require.NoError(t, err)

	require.Equal(t, r1.Coef, r2.Coef, "identical inputs must give bitwise identical coefficients")
	require.Equal(t, r1.Conv, r2.Conv)
}

func TestElasticNetDoesNotMutateInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(39))
	a := randomMatrix(rng, 20, 4)
	y := randomVector(rng, 20)
	aOrig := a.Clone()
	yOrig := append([]float64(nil), y...)

	_, err := ElasticNet(a, y, 0.5, 0.5, &Options{Intercept: true})
	require.NoError(t, err)

	require.Equal(t, aOrig.RawData(), a.RawData())
	require.Equal(t, yOrig, y)
}

func TestElasticNetConvergenceRecord(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	betaTrue := []float64{2, 0, -1}
	a, y := regressionProblem(rng, 50, betaTrue, 0.1)

	res, err := ElasticNet(a, y, 0.2, 0.1, nil)
	require.NoError(t, err)
	require.True(t, res.Conv.Converged)
	require.Greater(t, res.Conv.Iterations, 0)
	require.GreaterOrEqual(t, res.Conv.Residual, 0.0)
}
