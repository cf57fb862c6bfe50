// Package regnet implements a regularized linear regression solver stack:
// a Moore–Penrose pseudo-inverse built on singular value decomposition,
// closed-form ridge regression computed through the pseudo-inverse of an
// augmented system, an elastic-net (L1+L2) solver using cyclic coordinate
// descent, and a regularization-path generator that sweeps the penalty
// strength with warm starts between steps.
//
// Dense matrix products and the SVD factorization run through the compute
// subpackage, which executes the data-parallel bulk work across CPU workers
// using a grid/block kernel launch model. Solver logic is independent of
// which kernel path executes.
//
// Example usage:
//
//	a := compute.NewDense(n, p, data)
//	res, err := regnet.ElasticNet(a, y, 0.1, 0.01, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !res.Conv.Converged {
//		// usable but suboptimal coefficients; see res.Conv.Iterations
//	}
//
// Design matrices and response vectors are read-only inputs: no solver
// mutates caller-owned data, and every returned coefficient vector is owned
// by the caller. Features are expected to be pre-standardized (zero mean,
// unit variance) by the caller; see Standardize.
package regnet
