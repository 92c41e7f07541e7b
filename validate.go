package qsim

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-qsim/internal/qmath"
)

func validateQubits(nqubits, minQubits int) error {
	if nqubits < minQubits || nqubits > MaxQubits {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidQubits, nqubits, minQubits, MaxQubits)
	}

	return nil
}

func validateState[T Complex](name string, state []T, want int) error {
	if state == nil {
		return fmt.Errorf("%w: %s", ErrNilSlice, name)
	}

	if len(state) != want {
		return fmt.Errorf("%w: len(%s) = %d, want %d", ErrLengthMismatch, name, len(state), want)
	}

	return nil
}

func validateGate[T Complex](state, gate []T, nqubits, target int, controls []int) error {
	if err := validateQubits(nqubits, 1); err != nil {
		return err
	}

	if err := validateState("state", state, 1<<nqubits); err != nil {
		return err
	}

	if err := validateState("gate", gate, 4); err != nil {
		return err
	}

	if target < 0 || target >= nqubits {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidTarget, target, nqubits)
	}

	if len(controls) >= nqubits {
		return fmt.Errorf("%w: %d controls for %d qubits", ErrInvalidControls, len(controls), nqubits)
	}

	seen := uint64(1) << uint(target)
	for _, c := range controls {
		if c < 0 || c >= nqubits {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidControls, c, nqubits)
		}

		bit := uint64(1) << uint(c)
		if seen&bit != 0 {
			if c == target {
				return fmt.Errorf("%w: control %d is the target", ErrInvalidControls, c)
			}
			return fmt.Errorf("%w: control %d repeated", ErrInvalidControls, c)
		}

		seen |= bit
	}

	return nil
}

func validateTranspose[T Complex](pieces [][]T, dst []T, nqubits int, order []int) error {
	if err := validateQubits(nqubits, 1); err != nil {
		return err
	}

	if pieces == nil {
		return fmt.Errorf("%w: pieces", ErrNilSlice)
	}

	ndevices := len(pieces)
	if !qmath.IsPowerOf2(ndevices) || ndevices > 1<<nqubits {
		return fmt.Errorf("%w: %d pieces for %d qubits", ErrInvalidDevices, ndevices, nqubits)
	}

	npiece := (1 << nqubits) / ndevices
	for d, piece := range pieces {
		if err := validateState(fmt.Sprintf("pieces[%d]", d), piece, npiece); err != nil {
			return err
		}
	}

	if err := validateState("transposed_state", dst, 1<<nqubits); err != nil {
		return err
	}

	if len(order) != nqubits || !qmath.IsPermutation(order) {
		return fmt.Errorf("%w: %v", ErrInvalidPermutation, order)
	}

	for d, piece := range pieces {
		if overlaps(piece, dst) {
			return fmt.Errorf("%w: transposed_state and pieces[%d]", ErrAliasedBuffers, d)
		}
	}

	return nil
}

func validateSwap[T Complex](piece0, piece1 []T, newGlobal, nqubits int) error {
	if err := validateQubits(nqubits, 2); err != nil {
		return err
	}

	npiece := 1 << (nqubits - 1)
	if err := validateState("piece0", piece0, npiece); err != nil {
		return err
	}

	if err := validateState("piece1", piece1, npiece); err != nil {
		return err
	}

	if newGlobal < 1 || newGlobal >= nqubits {
		return fmt.Errorf("%w: new global %d not in [1, %d)", ErrInvalidTarget, newGlobal, nqubits)
	}

	if overlaps(piece0, piece1) {
		return fmt.Errorf("%w: piece0 and piece1", ErrAliasedBuffers)
	}

	return nil
}

func validateInitial[T Complex](state []T) error {
	if state == nil {
		return fmt.Errorf("%w: state", ErrNilSlice)
	}

	if !qmath.IsPowerOf2(len(state)) {
		return fmt.Errorf("%w: len(state) = %d is not a power of two", ErrLengthMismatch, len(state))
	}

	return nil
}

// overlaps reports whether a and b share any element of backing storage.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	size := unsafe.Sizeof(a[0])
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size

	return a0 < b1 && b0 < a1
}
