package kernels

import (
	"github.com/cwbudde/algo-qsim/internal/parallel"
)

type swapJob[T Complex] struct {
	piece0 []T
	piece1 []T
	m      int
	tk     int
}

// SwapPieces exchanges half of piece0 and piece1 in place so that the qubit
// at physical position newGlobal of an nqubits register trades places with
// the global qubit (position 0) that selects between the two pieces.
//
// piece0 holds the amplitudes whose global qubit is 0, piece1 those where it
// is 1. For every local index i with the newGlobal bit clear, piece0[i+tk] is
// swapped with piece1[i]. Applying it twice restores both pieces.
//
// The caller guarantees nqubits >= 2, 1 <= newGlobal < nqubits and that both
// pieces hold 2^(nqubits-1) amplitudes and do not overlap.
func SwapPieces[T Complex](piece0, piece1 []T, newGlobal, nqubits, workers int) {
	m := nqubits - newGlobal - 1

	job := swapJob[T]{
		piece0: piece0,
		piece1: piece1,
		m:      m,
		tk:     1 << m,
	}

	nstates := 1 << (nqubits - 2)
	if parallel.Serial(workers, nstates) {
		job.run(0, nstates)
		return
	}

	swapParallel(job, nstates, workers)
}

func swapParallel[T Complex](job swapJob[T], nstates, workers int) {
	parallel.For(workers, nstates, 1, job.run)
}

func (j *swapJob[T]) run(lo, hi int) {
	p0, p1 := j.piece0, j.piece1
	m, tk := j.m, j.tk

	for g := lo; g < hi; g++ {
		i := ((g >> m) << (m + 1)) + (g & (tk - 1))
		p0[i+tk], p1[i] = p1[i], p0[i+tk]
	}
}
