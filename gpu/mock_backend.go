package gpu

import (
	"fmt"

	"github.com/cwbudde/algo-qsim/internal/kernels"
)

// MockBackend is a CPU-backed GPU backend for development and tests.
// It satisfies the GPU backend interfaces but executes the CPU kernels.
type MockBackend struct {
	device  DeviceInfo
	workers int
}

// NewMockBackend returns a mock backend with a single fake device whose
// kernels run on up to workers goroutines.
func NewMockBackend(workers int) *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockGPU",
			Vendor:     "algo-qsim",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: "cpu",
		},
		workers: workers,
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock GPU backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device, workers: b.workers}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend(workers int) {
	RegisterBackend(NewMockBackend(workers))
}

type mockContext struct {
	device  DeviceInfo
	workers int
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) ApplyGate(state, gate any, nqubits, target int, controls []int) error {
	switch s := state.(type) {
	case []complex64:
		g, ok := gate.([]complex64)
		if !ok {
			return ErrNotImplemented
		}
		return applyGate(c, s, g, nqubits, target, controls)
	case []complex128:
		g, ok := gate.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		return applyGate(c, s, g, nqubits, target, controls)
	default:
		return ErrNotImplemented
	}
}

func applyGate[T Complex](c *mockContext, state, gate []T, nqubits, target int, controls []int) error {
	if state == nil || gate == nil {
		return ErrNilSlice
	}
	if len(gate) != 4 || len(state) != 1<<nqubits {
		return ErrLengthMismatch
	}
	kernels.ApplyGate(state, [4]T(gate), nqubits, target, controls, c.workers)
	return nil
}

func (c *mockContext) TransposeState(pieces, dst any, nqubits int, order []int) error {
	switch p := pieces.(type) {
	case [][]complex64:
		d, ok := dst.([]complex64)
		if !ok {
			return ErrNotImplemented
		}
		return transposeState(c, p, d, nqubits, order)
	case [][]complex128:
		d, ok := dst.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		return transposeState(c, p, d, nqubits, order)
	default:
		return ErrNotImplemented
	}
}

func transposeState[T Complex](c *mockContext, pieces [][]T, dst []T, nqubits int, order []int) error {
	if pieces == nil || dst == nil {
		return ErrNilSlice
	}
	if len(pieces) == 0 || len(dst) != 1<<nqubits {
		return ErrLengthMismatch
	}
	kernels.TransposeState(pieces, dst, nqubits, order, c.workers)
	return nil
}

func (c *mockContext) SwapPieces(piece0, piece1 any, newGlobal, nqubits int) error {
	switch p0 := piece0.(type) {
	case []complex64:
		p1, ok := piece1.([]complex64)
		if !ok {
			return ErrNotImplemented
		}
		return swapPieces(c, p0, p1, newGlobal, nqubits)
	case []complex128:
		p1, ok := piece1.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		return swapPieces(c, p0, p1, newGlobal, nqubits)
	default:
		return ErrNotImplemented
	}
}

func swapPieces[T Complex](c *mockContext, piece0, piece1 []T, newGlobal, nqubits int) error {
	if piece0 == nil || piece1 == nil {
		return ErrNilSlice
	}
	if nqubits < 2 || len(piece0) != 1<<(nqubits-1) || len(piece1) != len(piece0) {
		return ErrLengthMismatch
	}
	kernels.SwapPieces(piece0, piece1, newGlobal, nqubits, c.workers)
	return nil
}

func (c *mockContext) InitialState(state any) error {
	switch s := state.(type) {
	case []complex64:
		kernels.InitialState(s, c.workers)
	case []complex128:
		kernels.InitialState(s, c.workers)
	default:
		return ErrNotImplemented
	}
	return nil
}

func (c *mockContext) Close() error {
	return nil
}
