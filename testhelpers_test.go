package qsim

import (
	"math/cmplx"
	"testing"
)

// Shared test helper functions used across multiple test files

func mustExecutor[T Complex](t *testing.T, opts ...Option) *Executor[T] {
	t.Helper()

	e, err := NewExecutor[T](opts...)
	if err != nil {
		t.Fatalf("NewExecutor() failed: %v", err)
	}

	return e
}

func assertStateApprox(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("state[%d] = %v, want %v (diff=%v)", i, got[i], want[i], cmplx.Abs(got[i]-want[i]))
		}
	}
}

// rampState returns [1, 2, ..., 2^nqubits] so every index is distinguishable.
func rampState(nqubits int) []complex128 {
	s := make([]complex128, 1<<nqubits)
	for i := range s {
		s[i] = complex(float64(i+1), 0)
	}

	return s
}
