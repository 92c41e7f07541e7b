package gpu

import "sync"

// Backend is implemented by GPU backends (CUDA, ROCm, Metal, Vulkan, etc.).
// It is responsible for device discovery and context creation.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context runs the state-vector operations on one device.
//
// Buffers are host slices: []complex64 or []complex128 for states and pieces,
// [][]complex64 or [][]complex128 for the piece list of TransposeState, and a
// length-4 slice of the same type for gates. The arguments are untyped to keep
// the interface free of type parameters; implementations return
// ErrNotImplemented for types they do not handle. Shapes are validated by the
// caller. Every method is synchronous.
type Context interface {
	Device() DeviceInfo
	ApplyGate(state, gate any, nqubits, target int, controls []int) error
	TransposeState(pieces, dst any, nqubits int, order []int) error
	SwapPieces(piece0, piece1 any, newGlobal, nqubits int) error
	InitialState(state any) error
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers a GPU backend. Passing nil clears the backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackend returns the registered backend, or nil.
func CurrentBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	b := CurrentBackend()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

// Open returns a context on device deviceIndex of b. A nil b uses the
// registered backend. It fails with ErrNoBackend when there is none and with
// ErrBackendUnavailable when the backend cannot run on this system.
func Open(b Backend, deviceIndex int) (Context, error) {
	if b == nil {
		b = CurrentBackend()
	}

	if b == nil {
		return nil, ErrNoBackend
	}

	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	return b.NewContext(deviceIndex)
}
