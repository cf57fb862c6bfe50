package compute

import (
	"runtime"
	"sync"
)

// Dim3 represents 3D dimensions for grid and block configurations.
type Dim3 struct {
	X, Y, Z int
}

// Size returns the total number of elements.
func (d Dim3) Size() int { return d.X * d.Y * d.Z }

// ThreadID identifies a work item's position within the launch hierarchy.
type ThreadID struct {
	BlockIdx  Dim3 // Block index within the grid
	ThreadIdx Dim3 // Thread index within the block
	BlockDim  Dim3 // Dimensions of the block
	GridDim   Dim3 // Dimensions of the grid
}

// Global returns the global linear index along X.
func (tid ThreadID) Global() int {
	return tid.BlockIdx.X*tid.BlockDim.X + tid.ThreadIdx.X
}

// KernelFunc is a function executed once per work item of a launch.
// Implementations must be safe for concurrent execution across blocks.
type KernelFunc func(tid ThreadID)

// Launch executes a kernel across a grid of blocks and blocks until every
// work item has completed. Blocks are partitioned across workers; work items
// within a block execute sequentially on one worker, which keeps per-block
// accumulation order deterministic.
func Launch(fn KernelFunc, grid, block Dim3) {
	gridSize := grid.Size()
	blockSize := block.Size()
	if gridSize == 0 || blockSize == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if gridSize < numWorkers {
		numWorkers = gridSize
	}
	blocksPerWorker := (gridSize + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for workerID := 0; workerID < numWorkers; workerID++ {
		startBlock := workerID * blocksPerWorker
		endBlock := startBlock + blocksPerWorker
		if endBlock > gridSize {
			endBlock = gridSize
		}

		go func(start, end int) {
			defer wg.Done()
			for blockID := start; blockID < end; blockID++ {
				blockIdx := linearTo3D(blockID, grid)
				for threadID := 0; threadID < blockSize; threadID++ {
					fn(ThreadID{
						BlockIdx:  blockIdx,
						ThreadIdx: linearTo3D(threadID, block),
						BlockDim:  block,
						GridDim:   grid,
					})
				}
			}
		}(startBlock, endBlock)
	}
	wg.Wait()
}

// linearTo3D converts a linear index to 3D coordinates.
func linearTo3D(linear int, dim Dim3) Dim3 {
	z := linear / (dim.X * dim.Y)
	y := (linear % (dim.X * dim.Y)) / dim.X
	x := linear % dim.X
	return Dim3{X: x, Y: y, Z: z}
}

// grid1D returns a 1D grid covering n work items with the given block size.
func grid1D(n, blockSize int) (grid, block Dim3) {
	grid = Dim3{X: (n + blockSize - 1) / blockSize, Y: 1, Z: 1}
	block = Dim3{X: blockSize, Y: 1, Z: 1}
	return grid, block
}
