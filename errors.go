package qsim

import "errors"

// Sentinel errors returned by Executor operations. Details are added with
// fmt.Errorf("%w: ..."), so match them with errors.Is.
var (
	// ErrNotImplemented is returned when the selected execution target cannot
	// run the operation (for example DeviceGPU without an available backend).
	ErrNotImplemented = errors.New("qsim: execution target not implemented")

	// ErrNilSlice is returned when a nil buffer is passed to an operation.
	ErrNilSlice = errors.New("qsim: nil slice")

	// ErrInvalidQubits is returned when the qubit count is out of range.
	ErrInvalidQubits = errors.New("qsim: invalid qubit count")

	// ErrLengthMismatch is returned when a buffer length does not match the
	// qubit count (2^n for states, 4 for gates, 2^n/ndevices for pieces).
	ErrLengthMismatch = errors.New("qsim: slice length mismatch")

	// ErrInvalidTarget is returned when a target or swap qubit is out of range.
	ErrInvalidTarget = errors.New("qsim: invalid target qubit")

	// ErrInvalidControls is returned when a control qubit is out of range,
	// repeated, equal to the target, or there are too many controls.
	ErrInvalidControls = errors.New("qsim: invalid control qubits")

	// ErrInvalidDevices is returned when the piece count is not a power of two
	// or exceeds the state size.
	ErrInvalidDevices = errors.New("qsim: invalid device count")

	// ErrInvalidPermutation is returned when a qubit order is not a
	// permutation of 0..n-1.
	ErrInvalidPermutation = errors.New("qsim: invalid qubit order")

	// ErrAliasedBuffers is returned when buffers that must be distinct overlap.
	ErrAliasedBuffers = errors.New("qsim: overlapping buffers")

	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("qsim: invalid worker count")
)
