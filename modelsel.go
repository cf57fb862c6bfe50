package regnet

import (
	"fmt"
	"math/rand"

	"github.com/ridgelab/regnet/compute"
)

// ErrorFunc scores a prediction against the true response; lower is better.
type ErrorFunc func(yTrue, yPred []float64) float64

// MSE is the mean squared error.
func MSE(yTrue, yPred []float64) float64 {
	var sum float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		sum += d * d
	}
	return sum / float64(len(yTrue))
}

// Split is one cross-validation partition of sample indices.
type Split struct {
	Train, Test []int
}

// KFold partitions n sample indices into k shuffled folds, each fold serving
// once as the test set. The shuffle is seeded for reproducibility.
func KFold(n, k int, seed int64) ([]Split, error) {
	const op = "KFold"
	if k < 2 || k > n {
		return nil, NewInvalidArgError(op, fmt.Sprintf("fold count %d outside [2, %d]", k, n))
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	splits := make([]Split, k)
	foldSize := n / k
	rem := n % k
	start := 0
	for f := 0; f < k; f++ {
		size := foldSize
		if f < rem {
			size++
		}
		test := make([]int, size)
		copy(test, perm[start:start+size])

		train := make([]int, 0, n-size)
		train = append(train, perm[:start]...)
		train = append(train, perm[start+size:]...)

		splits[f] = Split{Train: train, Test: test}
		start += size
	}
	return splits, nil
}

// MinimalModelResult is the stage-one output: the penalty pair minimizing
// the mean cross-validated test error, plus the full error surfaces
// (rows indexed by tauRange, columns by lambdaRange).
type MinimalModelResult struct {
	TauOpt    float64
	LambdaOpt float64
	TestErr   *compute.Dense
	TrainErr  *compute.Dense
}

// MinimalModel selects the sparsity penalty tau and the refit ridge penalty
// lambda by cross-validation. For each split it fits a warm-started
// elastic-net sweep over tauRange at fixed correlation penalty mu, then for
// each sparse support refits ridge regression at every lambda in lambdaRange
// and scores train and test predictions. The error surfaces are averaged
// across splits and the optimum is the first minimum in row-major order.
//
// An empty support (everything thresholded away) scores the zero prediction
// rather than failing, so fully saturated tau values remain comparable.
func MinimalModel(a *compute.Dense, y []float64, mu float64, tauRange, lambdaRange []float64,
	splits []Split, errFn ErrorFunc, opts *Options) (*MinimalModelResult, error) {

	const op = "MinimalModel"
	if len(tauRange) == 0 || len(lambdaRange) == 0 {
		return nil, NewInvalidArgError(op, "empty penalty range")
	}
	if len(splits) == 0 {
		return nil, NewInvalidArgError(op, "no cross-validation splits")
	}
	if errFn == nil {
		errFn = MSE
	}

	nTau, nLambda := len(tauRange), len(lambdaRange)
	testSum := compute.NewDense(nTau, nLambda, nil)
	trainSum := compute.NewDense(nTau, nLambda, nil)

	for _, split := range splits {
		aTr, yTr := subsetRows(a, y, split.Train)
		aTs, yTs := subsetRows(a, y, split.Test)

		betas, err := sparsitySweep(aTr, yTr, mu, tauRange, opts)
		if err != nil {
			return nil, err
		}

		for ti, beta := range betas {
			mask := nonzeroMask(beta)
			for li, lambda := range lambdaRange {
				refit, err := refitOnSupport(aTr, yTr, mask, lambda, opts)
				if err != nil {
					return nil, err
				}
				trainSum.Set(ti, li, trainSum.At(ti, li)+errFn(yTr, predict(aTr, refit)))
				testSum.Set(ti, li, testSum.At(ti, li)+errFn(yTs, predict(aTs, refit)))
			}
		}
	}

	inv := 1 / float64(len(splits))
	compute.Scale(inv, testSum.RawData())
	compute.Scale(inv, trainSum.RawData())

	// First minimum in row-major order.
	bestT, bestL := 0, 0
	for ti := 0; ti < nTau; ti++ {
		for li := 0; li < nLambda; li++ {
			if testSum.At(ti, li) < testSum.At(bestT, bestL) {
				bestT, bestL = ti, li
			}
		}
	}

	return &MinimalModelResult{
		TauOpt:    tauRange[bestT],
		LambdaOpt: lambdaRange[bestL],
		TestErr:   testSum,
		TrainErr:  trainSum,
	}, nil
}

// NestedModelsResult is the stage-two output: one refit model per mu value.
type NestedModelsResult struct {
	Beta     [][]float64 // full-length coefficients, zeros off-support
	Selected [][]bool
	TrainErr []float64
	TestErr  []float64
}

// NestedModels builds the final models: for each correlation penalty mu it
// runs elastic-net variable selection at the chosen tau, refits ridge
// regression at the chosen lambda on the selected support, and scores the
// refit model on the training and held-out sets.
func NestedModels(a *compute.Dense, y []float64, aTest *compute.Dense, yTest []float64,
	tau, lambda float64, muRange []float64, errFn ErrorFunc, opts *Options) (*NestedModelsResult, error) {

	const op = "NestedModels"
	if len(muRange) == 0 {
		return nil, NewInvalidArgError(op, "empty mu range")
	}
	if errFn == nil {
		errFn = MSE
	}

	res := &NestedModelsResult{
		Beta:     make([][]float64, len(muRange)),
		Selected: make([][]bool, len(muRange)),
		TrainErr: make([]float64, len(muRange)),
		TestErr:  make([]float64, len(muRange)),
	}

	for mi, mu := range muRange {
		en, err := ElasticNet(a, y, tau, mu, opts)
		if err != nil {
			return nil, err
		}
		mask := nonzeroMask(en.Coef)

		refit, err := refitOnSupport(a, y, mask, lambda, opts)
		if err != nil {
			return nil, err
		}

		res.Beta[mi] = refit
		res.Selected[mi] = mask
		res.TrainErr[mi] = errFn(y, predict(a, refit))
		res.TestErr[mi] = errFn(yTest, predict(aTest, refit))
	}
	return res, nil
}

// ModelSelectionResult combines both selection stages.
type ModelSelectionResult struct {
	Minimal *MinimalModelResult
	Nested  *NestedModelsResult
}

// ModelSelection runs the full two-stage procedure: stage one selects tau
// and lambda by cross-validation at the smallest mu, stage two builds the
// final models across the whole mu range with the selected penalties.
func ModelSelection(a *compute.Dense, y []float64, aTest *compute.Dense, yTest []float64,
	muRange, tauRange, lambdaRange []float64, splits []Split, errFn ErrorFunc,
	opts *Options) (*ModelSelectionResult, error) {

	const op = "ModelSelection"
	if len(muRange) == 0 {
		return nil, NewInvalidArgError(op, "empty mu range")
	}

	minimal, err := MinimalModel(a, y, muRange[0], tauRange, lambdaRange, splits, errFn, opts)
	if err != nil {
		return nil, err
	}

	nested, err := NestedModels(a, y, aTest, yTest, minimal.TauOpt, minimal.LambdaOpt,
		muRange, errFn, opts)
	if err != nil {
		return nil, err
	}

	return &ModelSelectionResult{Minimal: minimal, Nested: nested}, nil
}

// sparsitySweep fits a warm-started elastic net for every tau, sweeping
// largest-first for path continuity but returning results aligned with the
// input order.
func sparsitySweep(a *compute.Dense, y []float64, mu float64, tauRange []float64, opts *Options) ([][]float64, error) {
	order := descendingOrder(tauRange)
	_, p := a.Dims()

	betas := make([][]float64, len(tauRange))
	warm := make([]float64, p)
	for _, idx := range order {
		o := opts.withDefaults()
		o.WarmStart = warm
		res, err := ElasticNet(a, y, tauRange[idx], mu, &o)
		if err != nil {
			return nil, err
		}
		copy(warm, res.Coef)
		betas[idx] = res.Coef
	}
	return betas, nil
}

// refitOnSupport fits ridge regression restricted to the masked features and
// scatters the coefficients back to full length. An empty support yields the
// zero coefficient vector.
func refitOnSupport(a *compute.Dense, y []float64, mask []bool, lambda float64, opts *Options) ([]float64, error) {
	n, p := a.Dims()

	count := 0
	for _, m := range mask {
		if m {
			count++
		}
	}
	if count == 0 {
		return make([]float64, p), nil
	}

	sub := compute.NewDense(n, count, nil)
	for i := 0; i < n; i++ {
		row := a.Row(i)
		dst := sub.Row(i)
		k := 0
		for j, m := range mask {
			if m {
				dst[k] = row[j]
				k++
			}
		}
	}

	res, err := RidgeRegression(sub, y, lambda, opts)
	if err != nil {
		return nil, err
	}

	full := make([]float64, p)
	k := 0
	for j, m := range mask {
		if m {
			full[j] = res.Coef[k]
			k++
		}
	}
	return full, nil
}

// predict computes a·beta.
func predict(a *compute.Dense, beta []float64) []float64 {
	n, _ := a.Dims()
	out := make([]float64, n)
	compute.Gemv(false, 1, a, beta, 0, out)
	return out
}

// nonzeroMask marks the nonzero coefficients.
func nonzeroMask(beta []float64) []bool {
	mask := make([]bool, len(beta))
	for j, v := range beta {
		mask[j] = v != 0
	}
	return mask
}

// subsetRows gathers the indexed rows of a and y.
func subsetRows(a *compute.Dense, y []float64, idx []int) (*compute.Dense, []float64) {
	_, p := a.Dims()
	sub := compute.NewDense(len(idx), p, nil)
	suby := make([]float64, len(idx))
	for i, s := range idx {
		copy(sub.Row(i), a.Row(s))
		suby[i] = y[s]
	}
	return sub, suby
}

// descendingOrder returns the indices of values sorted largest-first.
func descendingOrder(values []float64) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for k := i; k > 0 && values[order[k]] > values[order[k-1]]; k-- {
			order[k], order[k-1] = order[k-1], order[k]
		}
	}
	return order
}
