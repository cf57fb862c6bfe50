// Package compute provides the dense matrix/vector primitive layer for the
// regnet solvers: matrix-matrix and matrix-vector products executed through a
// grid/block kernel launch model across CPU worker goroutines, and a singular
// value decomposition backed by LAPACK routines.
//
// The bulk operations are data parallel and dispatch between a parallel
// kernel path and a sequential scalar path based on problem size and detected
// CPU features. Solver results do not depend on which path executed: per-row
// accumulations are always sequential, so results are reproducible bit for bit.
package compute
