package kernels

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pauliX = [4]complex128{0, 1, 1, 0}

func TestApplyGatePauliXNoControls(t *testing.T) {
	t.Parallel()

	state := []complex128{1, 0, 0, 0}
	ApplyGate(state, pauliX, 2, 1, nil, 1)

	assert.Equal(t, []complex128{0, 1, 0, 0}, state)
}

func TestApplyGateControlledX(t *testing.T) {
	t.Parallel()

	state := make([]complex128, 8)
	state[0b110] = 1

	ApplyGate(state, pauliX, 3, 2, []int{0}, 1)

	want := make([]complex128, 8)
	want[0b111] = 1
	assert.Equal(t, want, state)
}

func TestApplyGateControlNotSetLeavesState(t *testing.T) {
	t.Parallel()

	state := make([]complex128, 8)
	state[0b010] = 1

	ApplyGate(state, pauliX, 3, 2, []int{0}, 1)

	want := make([]complex128, 8)
	want[0b010] = 1
	assert.Equal(t, want, state)
}

func TestApplyGateComplex64(t *testing.T) {
	t.Parallel()

	state := []complex64{1, 0, 0, 0, 0, 0, 0, 0}
	h := complex64(complex(1/math.Sqrt2, 0))
	gate := [4]complex64{h, h, h, -h}

	ApplyGate(state, gate, 3, 0, nil, 1)

	assert.InDelta(t, real(h), real(state[0]), 1e-6)
	assert.InDelta(t, real(h), real(state[4]), 1e-6)
	for _, i := range []int{1, 2, 3, 5, 6, 7} {
		assert.Zero(t, state[i])
	}
}

func TestApplyGateMatchesReference(t *testing.T) {
	t.Parallel()

	rnd := newRand(1)

	for nqubits := 1; nqubits <= 8; nqubits++ {
		for target := range nqubits {
			for k := 0; k < nqubits; k++ {
				t.Run(fmt.Sprintf("n=%d/t=%d/c=%d", nqubits, target, k), func(t *testing.T) {
					gate := randomUnitary(rnd)
					controls := randomControls(rnd, nqubits, target, k)
					state := randomState(rnd, nqubits)

					want := append([]complex128(nil), state...)
					referenceApplyGate(want, gate, nqubits, target, controls)

					ApplyGate(state, gate, nqubits, target, controls, 1)
					assertStatesClose(t, state, want, 1e-12)
				})
			}
		}
	}
}

func TestApplyGateInverseRestores(t *testing.T) {
	t.Parallel()

	rnd := newRand(2)
	const nqubits = 7

	for target := range nqubits {
		for k := range 4 {
			gate := randomUnitary(rnd)
			controls := randomControls(rnd, nqubits, target, k)
			original := randomState(rnd, nqubits)

			state := append([]complex128(nil), original...)
			ApplyGate(state, gate, nqubits, target, controls, 1)
			ApplyGate(state, dagger(gate), nqubits, target, controls, 1)

			assertStatesClose(t, state, original, 1e-12)
		}
	}
}

func TestApplyGatePreservesNorm(t *testing.T) {
	t.Parallel()

	rnd := newRand(3)
	const nqubits = 9

	state := randomState(rnd, nqubits)
	for range 200 {
		target := rnd.IntN(nqubits)
		controls := randomControls(rnd, nqubits, target, rnd.IntN(nqubits))
		ApplyGate(state, randomUnitary(rnd), nqubits, target, controls, 1)
	}

	assert.InDelta(t, 1.0, norm2(state), 1e-10)
}

func TestApplyGateIdentityIsBitExact(t *testing.T) {
	t.Parallel()

	rnd := newRand(4)
	const nqubits = 6
	identity := [4]complex128{1, 0, 0, 1}

	for target := range nqubits {
		for k := range nqubits {
			original := randomState(rnd, nqubits)
			state := append([]complex128(nil), original...)
			controls := randomControls(rnd, nqubits, target, k)

			ApplyGate(state, identity, nqubits, target, controls, 1)
			require.Equal(t, original, state, "target=%d controls=%v", target, controls)
		}
	}
}

func TestApplyGateControlOrderIrrelevant(t *testing.T) {
	t.Parallel()

	rnd := newRand(5)
	const nqubits = 8

	for target := range nqubits {
		gate := randomUnitary(rnd)
		controls := randomControls(rnd, nqubits, target, 3)
		original := randomState(rnd, nqubits)

		orders := [][]int{
			{controls[0], controls[1], controls[2]},
			{controls[2], controls[1], controls[0]},
			{controls[1], controls[2], controls[0]},
		}

		var first []complex128
		for _, order := range orders {
			state := append([]complex128(nil), original...)
			ApplyGate(state, gate, nqubits, target, order, 1)

			if first == nil {
				first = state
				continue
			}
			require.Equal(t, first, state, "controls %v differ from %v", order, orders[0])
		}
	}
}

func TestApplyGateParallelMatchesSerial(t *testing.T) {
	t.Parallel()

	rnd := newRand(6)
	const nqubits = 16

	original := randomState(rnd, nqubits)

	for target := range nqubits {
		for _, k := range []int{0, 1, 3} {
			gate := randomUnitary(rnd)
			controls := randomControls(rnd, nqubits, target, k)

			serial := append([]complex128(nil), original...)
			ApplyGate(serial, gate, nqubits, target, controls, 1)

			par := append([]complex128(nil), original...)
			ApplyGate(par, gate, nqubits, target, controls, 8)

			require.Equal(t, serial, par, "target=%d controls=%v", target, controls)
		}
	}
}

func BenchmarkApplyGate(b *testing.B) {
	rnd := newRand(7)
	const nqubits = 20

	state := randomState(rnd, nqubits)
	gate := randomUnitary(rnd)

	for _, workers := range []int{1, 4} {
		for _, target := range []int{0, nqubits / 2, nqubits - 1} {
			b.Run(fmt.Sprintf("w=%d/t=%d", workers, target), func(b *testing.B) {
				b.SetBytes(int64(len(state) * 16))
				for b.Loop() {
					ApplyGate(state, gate, nqubits, target, nil, workers)
				}
			})
		}
	}
}
