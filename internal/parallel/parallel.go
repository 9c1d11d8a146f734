// Package parallel provides chunked parallel execution for the loom array library.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForRange executes f(lo, hi) over disjoint chunks covering [0, n).
// Kernels that can process a contiguous span in one call avoid the
// per-index closure overhead of For.
func ForRange(n int, f func(lo, hi int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		if n > 0 {
			f(0, n)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Reduce computes a partial result per chunk of [0, n) with f and folds
// the partials left-to-right with combine, starting from zero. The fold
// order over chunks is deterministic for a given n and config.
func Reduce[R any](n int, zero R, f func(lo, hi int) R, combine func(a, b R) R, cfg Config) R {
	if n <= 0 {
		return zero
	}
	if !cfg.Enabled || n < cfg.MinChunkSize {
		return combine(zero, f(0, n))
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	numChunks := (n + chunkSize - 1) / chunkSize
	partials := make([]R, numChunks)

	var wg sync.WaitGroup
	for c := 0; c < numChunks; c++ {
		lo := c * chunkSize
		hi := min(lo+chunkSize, n)
		wg.Add(1)
		go func(c, lo, hi int) {
			defer wg.Done()
			partials[c] = f(lo, hi)
		}(c, lo, hi)
	}
	wg.Wait()

	acc := zero
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc
}
