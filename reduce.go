package histboost

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// ParallelSum reduces values with a static-schedule fan-out across
// runtime.GOMAXPROCS(0) goroutines, each summing its contiguous chunk
// with gonum's floats.Sum before the partial sums are combined. It is
// used for sanity checks and gradient/hessian totals by the external
// grower, not by the split search itself.
func ParallelSum(values []float64) float64 {
	return parallelSumN(values, runtime.GOMAXPROCS(0))
}

// parallelSumN is ParallelSum with an explicit thread count, so tests
// can exercise the chunking logic deterministically.
func parallelSumN(values []float64, nThreads int) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if nThreads < 1 {
		nThreads = 1
	}
	if nThreads > n {
		nThreads = n
	}
	if nThreads == 1 {
		return floats.Sum(values)
	}

	chunkSize := (n + nThreads - 1) / nThreads
	partials := make([]float64, nThreads)

	g, _ := errgroup.WithContext(context.Background())
	for t := 0; t < nThreads; t++ {
		start := t * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		t := t
		g.Go(func() error {
			partials[t] = floats.Sum(values[start:end])
			return nil
		})
	}
	_ = g.Wait()

	var total float64
	for _, p := range partials {
		total += p
	}
	return total
}
