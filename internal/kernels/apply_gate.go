package kernels

import (
	"github.com/cwbudde/algo-qsim/internal/parallel"
)

// gateJob carries everything a chunk of ApplyGate needs. It is passed by value
// into the parallel path so the serial path keeps it on the stack.
type gateJob[T Complex] struct {
	state []T
	gate  [4]T
	m     int // log2 of the target weight
	tk    int // target weight, 2^m
	cmask int // OR of all control weights
	cktot int // sum of all control weights; equals cmask for distinct controls
}

// ApplyGate applies the row-major 2x2 matrix gate to qubit target of the
// 2^nqubits amplitudes in state, in place. Pairs whose control qubits are not
// all 1 are left untouched.
//
// The caller guarantees len(state) == 1<<nqubits, 0 <= target < nqubits and
// that controls are distinct, in range and different from target.
func ApplyGate[T Complex](state []T, gate [4]T, nqubits, target int, controls []int, workers int) {
	m := nqubits - target - 1

	job := gateJob[T]{
		state: state,
		gate:  gate,
		m:     m,
		tk:    1 << m,
	}

	for _, c := range controls {
		ck := 1 << (nqubits - c - 1)
		job.cmask |= ck
		job.cktot += ck
	}

	npairs := len(state) >> 1
	if parallel.Serial(workers, npairs) {
		job.run(0, npairs)
		return
	}

	applyGateParallel(job, npairs, workers)
}

func applyGateParallel[T Complex](job gateJob[T], npairs, workers int) {
	// Small target weights keep whole 2*tk windows inside one chunk.
	grain := min(job.tk, parallel.MinGrain)
	parallel.For(workers, npairs, grain, job.run)
}

// run processes pair indices [lo, hi). Pair p maps to the skeleton index with
// a zero inserted at the target bit; consecutive pairs inside one window map
// to consecutive skeleton indices, so the loop walks window halves directly.
func (j *gateJob[T]) run(lo, hi int) {
	state := j.state
	g0, g1, g2, g3 := j.gate[0], j.gate[1], j.gate[2], j.gate[3]
	low := j.tk - 1

	for p := lo; p < hi; {
		base := ((p >> j.m) << (j.m + 1)) | (p & low)
		span := min(hi-p, j.tk-(p&low))

		for i := base; i < base+span; i++ {
			if i&j.cmask != 0 {
				continue
			}

			i1 := i + j.cktot
			i2 := i1 + j.tk

			a, b := state[i1], state[i2]
			state[i1] = g0*a + g1*b
			state[i2] = g2*a + g3*b
		}

		p += span
	}
}
