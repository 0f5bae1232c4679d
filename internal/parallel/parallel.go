// Package parallel splits index ranges across worker goroutines.
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

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	return WithWorkers(0)
}

// WithWorkers returns a Config using n workers; n <= 0 means runtime.NumCPU().
func WithWorkers(n int) Config {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Chunks returns how many contiguous chunks For will split n items into.
func (c Config) Chunks(n int) int {
	if n <= 0 {
		return 0
	}
	if !c.Enabled || c.NumWorkers <= 1 || n < c.MinChunkSize {
		return 1
	}
	size := c.chunkSize(n)
	return (n + size - 1) / size
}

func (c Config) chunkSize(n int) int {
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize, 1)
}

// For calls f(chunk, lo, hi) for contiguous ranges covering [0, n).
//
// chunk runs from 0 to cfg.Chunks(n)-1, so callers can keep one accumulator
// per chunk without locking. Runs sequentially as a single chunk if
// parallelism is disabled or n is too small.
func For(n int, cfg Config, f func(chunk, lo, hi int)) {
	chunks := cfg.Chunks(n)
	if chunks == 0 {
		return
	}
	if chunks == 1 {
		f(0, 0, n)
		return
	}

	size := cfg.chunkSize(n)
	var wg sync.WaitGroup
	for chunk := 0; chunk < chunks; chunk++ {
		lo := chunk * size
		hi := min(lo+size, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(chunk, lo, hi)
		}()
	}
	wg.Wait()
}
