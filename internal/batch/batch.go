// Package batch fans a single-item generator out over the available CPUs.
package batch

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of consecutive items one goroutine produces.
// Batches no larger than this run on the caller's goroutine.
const chunkSize = 256

// Workers returns the upper bound on goroutines a batch runs concurrently.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// Generate calls fn exactly count times and returns the results. Calls are
// spread over at most Workers() goroutines, so the order of the results says
// nothing about the order in which they were produced. fn must be safe for
// concurrent use. A count of zero or less returns an empty slice.
func Generate[T any](count int, fn func() T) []T {
	if count <= 0 {
		return []T{}
	}

	out := make([]T, count)
	if count <= chunkSize {
		fill(out, fn)
		return out
	}

	var g errgroup.Group
	g.SetLimit(Workers())
	for start := 0; start < count; start += chunkSize {
		chunk := out[start:min(start+chunkSize, count)]
		g.Go(func() error {
			fill(chunk, fn)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func fill[T any](dst []T, fn func() T) {
	for i := range dst {
		dst[i] = fn()
	}
}
