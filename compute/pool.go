package compute

import "sync"

// MemoryPool recycles float64 scratch buffers used for solver residuals,
// column-major matrix copies and factorization intermediates. Buffers are
// call-private: a solver takes what it needs at entry and returns everything
// before returning to the caller, on every exit path.
type MemoryPool struct {
	mu         sync.Mutex
	free       [][]float64
	totalAlloc int64
	peakLive   int64
	live       int64
}

// Default package-level pool shared by the solvers.
var defaultPool MemoryPool

// GetBuffer returns a zeroed scratch slice of length n from the default pool.
func GetBuffer(n int) []float64 { return defaultPool.Get(n) }

// PutBuffer returns a scratch slice to the default pool for reuse.
func PutBuffer(buf []float64) { defaultPool.Put(buf) }

// Get returns a zeroed slice of length n, reusing a pooled buffer when one
// with sufficient capacity is available.
func (p *MemoryPool) Get(n int) []float64 {
	p.mu.Lock()
	var buf []float64
	for i := len(p.free) - 1; i >= 0; i-- {
		if cap(p.free[i]) >= n {
			buf = p.free[i][:n]
			p.free = append(p.free[:i], p.free[i+1:]...)
			break
		}
	}
	if buf == nil {
		p.totalAlloc += int64(n)
		buf = make([]float64, n)
	}
	p.live += int64(n)
	if p.live > p.peakLive {
		p.peakLive = p.live
	}
	p.mu.Unlock()

	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Put returns a buffer to the pool. Nil and zero-length buffers are ignored.
func (p *MemoryPool) Put(buf []float64) {
	if cap(buf) == 0 {
		return
	}
	p.mu.Lock()
	p.live -= int64(len(buf))
	if len(p.free) < freeListLimit {
		p.free = append(p.free, buf[:cap(buf)])
	}
	p.mu.Unlock()
}

// Stats reports cumulative allocation and the peak number of live elements.
func (p *MemoryPool) Stats() (totalAlloc, peakLive int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalAlloc, p.peakLive
}

// freeListLimit bounds pooled buffers to avoid retaining large transients.
const freeListLimit = 32
