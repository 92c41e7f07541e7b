package kernels

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"
)

// Shared test helpers used across the kernel tests.

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomState returns a normalised state with no zero components.
func randomState(rnd *rand.Rand, nqubits int) []complex128 {
	state := make([]complex128, 1<<nqubits)

	var norm float64
	for i := range state {
		state[i] = complex(rnd.Float64()+0.01, rnd.Float64()-0.5)
		norm += real(state[i])*real(state[i]) + imag(state[i])*imag(state[i])
	}

	scale := complex(1/math.Sqrt(norm), 0)
	for i := range state {
		state[i] *= scale
	}

	return state
}

// randomUnitary returns e^{i phi} [[a, -conj(b)], [b, conj(a)]] with |a|^2+|b|^2 = 1.
func randomUnitary(rnd *rand.Rand) [4]complex128 {
	theta := rnd.Float64() * math.Pi
	alpha := rnd.Float64() * 2 * math.Pi
	beta := rnd.Float64() * 2 * math.Pi
	phi := rnd.Float64() * 2 * math.Pi

	a := complex(math.Cos(theta/2), 0) * cmplx.Exp(complex(0, alpha))
	b := complex(math.Sin(theta/2), 0) * cmplx.Exp(complex(0, beta))
	g := cmplx.Exp(complex(0, phi))

	return [4]complex128{g * a, -g * cmplx.Conj(b), g * b, g * cmplx.Conj(a)}
}

func dagger(m [4]complex128) [4]complex128 {
	return [4]complex128{cmplx.Conj(m[0]), cmplx.Conj(m[2]), cmplx.Conj(m[1]), cmplx.Conj(m[3])}
}

// randomControls picks k distinct qubits different from target.
func randomControls(rnd *rand.Rand, nqubits, target, k int) []int {
	perm := rnd.Perm(nqubits)
	controls := make([]int, 0, k)

	for _, q := range perm {
		if len(controls) == k {
			break
		}
		if q != target {
			controls = append(controls, q)
		}
	}

	return controls
}

// referenceApplyGate is the direct pair-by-pair definition of a controlled gate.
func referenceApplyGate(state []complex128, gate [4]complex128, nqubits, target int, controls []int) {
	tk := 1 << (nqubits - target - 1)

	for i1 := range state {
		if i1&tk != 0 {
			continue
		}

		apply := true
		for _, c := range controls {
			if (i1/(1<<(nqubits-c-1)))%2 == 0 {
				apply = false
				break
			}
		}

		if !apply {
			continue
		}

		i2 := i1 + tk
		a, b := state[i1], state[i2]
		state[i1] = gate[0]*a + gate[1]*b
		state[i2] = gate[2]*a + gate[3]*b
	}
}

// referenceTranspose maps every source index to its destination by moving
// the bit of logical qubit order[p] to output position p.
func referenceTranspose(state []complex128, nqubits int, order []int) []complex128 {
	out := make([]complex128, len(state))

	for k := range state {
		g := 0
		for p, q := range order {
			if k>>(nqubits-q-1)&1 == 1 {
				g |= 1 << (nqubits - p - 1)
			}
		}

		out[g] = state[k]
	}

	return out
}

func split[T Complex](state []T, ndevices int) [][]T {
	npiece := len(state) / ndevices
	pieces := make([][]T, ndevices)

	for d := range pieces {
		pieces[d] = state[d*npiece : (d+1)*npiece : (d+1)*npiece]
	}

	return pieces
}

func norm2(state []complex128) float64 {
	var sum float64
	for _, v := range state {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return sum
}

func assertStatesClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("state[%d] = %v, want %v (diff=%v)", i, got[i], want[i], cmplx.Abs(got[i]-want[i]))
		}
	}
}
