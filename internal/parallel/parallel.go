// Package parallel provides the fork-join loop used by the state-vector kernels.
//
// Work is expressed as a half-open index range [0, n) that is cut into
// contiguous, disjoint chunks. Each chunk is handed to exactly one goroutine,
// so kernels that only write inside their own chunk need no synchronisation.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

// MinGrain is the smallest chunk handed to a goroutine. Below this size the
// scheduling cost outweighs the work.
const MinGrain = 1 << 12

// Serial reports whether a loop over n units with the given worker count runs
// inline on the calling goroutine.
func Serial(workers, n int) bool {
	return workers <= 1 || n <= MinGrain
}

// ChunkSize returns the chunk length For uses for n units split across
// workers. The result is a multiple of grain (grain >= 1) and at least
// MinGrain rounded up to grain.
func ChunkSize(workers, n, grain int) int {
	if grain < 1 {
		grain = 1
	}

	if workers < 1 {
		workers = 1
	}

	// Aim for a few chunks per worker so uneven chunks even out.
	chunk := n / (workers * 4)
	chunk = max(chunk, MinGrain)
	chunk = (chunk + grain - 1) / grain * grain

	return chunk
}

// For runs fn over [0, n) in disjoint chunks of ChunkSize(workers, n, grain),
// with at most workers chunks running at once, and returns when all chunks are
// done. When Serial(workers, n) holds fn(0, n) is called directly.
func For(workers, n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	if Serial(workers, n) {
		fn(0, n)
		return
	}

	chunk := ChunkSize(workers, n, grain)
	if chunk >= n {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}

	// fn cannot fail; Wait only joins.
	_ = g.Wait()
}
