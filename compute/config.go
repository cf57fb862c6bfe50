// Package compute configuration constants
package compute

// Thread and block dimensions
const (
	// DefaultBlockSize is the default number of work items per block.
	DefaultBlockSize = 256

	// GemmRowsPerBlock is the number of output rows each GEMM block computes.
	GemmRowsPerBlock = 8

	// GemvRowsPerBlock is the number of output rows each GEMV block computes.
	GemvRowsPerBlock = 64
)

// Dispatch thresholds
const (
	// GemmParallelFlops is the minimum m*n*k product at which GEMM takes the
	// parallel kernel path. Below it the launch overhead exceeds the win.
	GemmParallelFlops = 64 * 64 * 64

	// GemvParallelSize is the minimum m*n product for parallel GEMV.
	GemvParallelSize = 256 * 256
)
