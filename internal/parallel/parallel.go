// Package parallel runs independent evaluations on a bounded set of
// goroutines.
//
// Forward passes of photonic components only read their parameters, so
// a solver may evaluate many components at once as long as no optimizer
// step runs concurrently.
package parallel

import (
	"context"
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
		MinChunkSize: 4,
	}
}

// For executes f(i) for i in [0, n) and returns the first error.
//
// Work is split into contiguous chunks, one goroutine per chunk. Once an
// error occurs or ctx is done, chunks stop picking up new items. Falls back
// to sequential execution if parallelism is disabled or n is too small.
func For(ctx context.Context, n int, f func(i int) error, cfg Config) error {
	if cfg.NumWorkers < 1 {
		cfg.NumWorkers = 1
	}
	if cfg.MinChunkSize < 1 {
		cfg.MinChunkSize = 1
	}

	if !cfg.Enabled || cfg.NumWorkers == 1 || n < 2*cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				if err := ctx.Err(); err != nil {
					fail(err)
					return
				}
				if err := f(i); err != nil {
					fail(err)
					return
				}
			}
		}(start, end)
	}
	wg.Wait()
	return firstErr
}
