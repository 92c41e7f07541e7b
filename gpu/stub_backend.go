package gpu

import "fmt"

// StubBackend stands in for an accelerator runtime that is not linked into
// the binary (for example "cuda" or "opencl"). It is always unavailable, so
// Open fails with ErrBackendUnavailable and callers never fall back to the CPU.
type StubBackend struct {
	name string
}

// NewStubBackend returns an unavailable backend reporting the given name.
func NewStubBackend(name string) *StubBackend {
	return &StubBackend{name: name}
}

func (b *StubBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        b.name,
		Version:     "stub",
		Description: fmt.Sprintf("%s state-vector backend (not built in)", b.name),
	}
}

func (b *StubBackend) Available() bool {
	return false
}

func (b *StubBackend) Devices() ([]DeviceInfo, error) {
	return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, b.name)
}

func (b *StubBackend) NewContext(_ int) (Context, error) {
	return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, b.name)
}

// BackendByName returns the backend registered under a command-line name:
// "mock" runs the CPU kernels on up to workers goroutines, "cuda" and
// "opencl" are unavailable stubs. ok is false for any other name.
func BackendByName(name string, workers int) (b Backend, ok bool) {
	switch name {
	case "mock":
		return NewMockBackend(workers), true
	case "cuda", "opencl":
		return NewStubBackend(name), true
	default:
		return nil, false
	}
}
