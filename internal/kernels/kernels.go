// Package kernels implements the state-vector kernels: single-qubit gate
// application, transposition of a sharded state and piece swapping.
//
// The kernels do no validation. Shapes, qubit ranges and permutations are
// checked by the caller; a violated precondition gives an undefined result or
// an index panic. Every kernel writes only inside the buffers it is given and
// allocates no amplitude storage. With workers <= 1 they do not allocate at all.
package kernels

import (
	"github.com/cwbudde/algo-qsim/internal/parallel"
	"github.com/cwbudde/algo-qsim/internal/qtypes"
)

// Complex is the amplitude constraint. The canonical definition is in
// internal/qtypes.
type Complex = qtypes.Complex

// InitialState sets state to |00...0>: state[0] = 1, every other amplitude 0.
func InitialState[T Complex](state []T, workers int) {
	Zero(state, workers)

	if len(state) > 0 {
		state[0] = 1
	}
}

// Zero clears every amplitude in state.
func Zero[T Complex](state []T, workers int) {
	if parallel.Serial(workers, len(state)) {
		clear(state)
		return
	}

	zeroParallel(state, workers)
}

func zeroParallel[T Complex](state []T, workers int) {
	parallel.For(workers, len(state), 1, func(lo, hi int) {
		clear(state[lo:hi])
	})
}
