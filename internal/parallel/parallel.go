// Package parallel provides chunked parallel loops for elementwise kernels.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of goroutines running at once.
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

// Sequential returns a Config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// ForRange splits [0, n) into contiguous chunks and calls f(start, end)
// once per chunk. It returns after every chunk has finished.
// Falls back to a single call if parallelism is disabled or n is too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	workers := cfg.NumWorkers
	if !cfg.Enabled || workers <= 1 || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait() // chunks never fail
}
