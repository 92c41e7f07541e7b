package kernels

import (
	"math/bits"

	"github.com/cwbudde/algo-qsim/internal/parallel"
	"github.com/cwbudde/algo-qsim/internal/qmath"
)

type transposeJob[T Complex] struct {
	pieces [][]T
	dst    []T
	exps   [64]int // exps[q]: weight in the source index of output bit q (LSB first)
	shift  int     // log2 of the piece length
	mask   int     // piece length - 1
}

// TransposeState writes into dst the state held in pieces reordered to the
// qubit order: output bit position p (from the most significant bit) holds
// logical qubit order[p]. pieces concatenated in order form the source state.
//
// The caller guarantees len(pieces) is a power of two, every piece has
// 2^nqubits/len(pieces) amplitudes, len(dst) == 1<<nqubits and order is a
// permutation of 0..nqubits-1. dst must not alias any piece.
func TransposeState[T Complex](pieces [][]T, dst []T, nqubits int, order []int, workers int) {
	npiece := len(dst) / len(pieces)

	job := transposeJob[T]{
		pieces: pieces,
		dst:    dst,
		shift:  qmath.Log2(npiece),
		mask:   npiece - 1,
	}

	for q := range nqubits {
		job.exps[q] = 1 << (nqubits - order[nqubits-q-1] - 1)
	}

	n := len(dst)
	if parallel.Serial(workers, n) {
		job.run(0, n)
		return
	}

	transposeParallel(job, n, workers)
}

func transposeParallel[T Complex](job transposeJob[T], n, workers int) {
	parallel.For(workers, n, 1, job.run)
}

func (j *transposeJob[T]) run(lo, hi int) {
	dst := j.dst
	pieces := j.pieces

	for g := lo; g < hi; g++ {
		k := 0
		for b := uint(g); b != 0; b &= b - 1 {
			k += j.exps[bits.TrailingZeros(b)]
		}

		dst[g] = pieces[k>>j.shift][k&j.mask]
	}
}
