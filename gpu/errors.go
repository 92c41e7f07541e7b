package gpu

import "errors"

var (
	// ErrNoBackend is returned when no GPU backend is registered.
	ErrNoBackend = errors.New("qsim/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not available
	// on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("qsim/gpu: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations and unsupported buffer types.
	ErrNotImplemented = errors.New("qsim/gpu: not implemented")

	// ErrNilSlice is returned when a buffer is nil.
	ErrNilSlice = errors.New("qsim/gpu: nil slice")

	// ErrLengthMismatch is returned when buffer lengths are not as required.
	ErrLengthMismatch = errors.New("qsim/gpu: length mismatch")
)
