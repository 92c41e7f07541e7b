package qsim

import (
	"fmt"

	"github.com/cwbudde/algo-qsim/internal/qmath"
)

// SplitState returns ndevices equal views into state, one per device, in
// global index order. The views share storage with state.
func SplitState[T Complex](state []T, ndevices int) ([][]T, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: state", ErrNilSlice)
	}

	if !qmath.IsPowerOf2(ndevices) || ndevices > len(state) {
		return nil, fmt.Errorf("%w: %d pieces for %d amplitudes", ErrInvalidDevices, ndevices, len(state))
	}

	if !qmath.IsPowerOf2(len(state)) {
		return nil, fmt.Errorf("%w: len(state) = %d is not a power of two", ErrLengthMismatch, len(state))
	}

	n := len(state) / ndevices
	pieces := make([][]T, ndevices)
	for d := range pieces {
		pieces[d] = state[d*n : (d+1)*n : (d+1)*n]
	}

	return pieces, nil
}
