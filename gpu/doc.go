// Package gpu provides the accelerator execution target for algo-qsim.
//
// A Backend exposes the same three state-vector contracts as the CPU kernels
// (gate application, transposition, piece swapping) through a per-device
// Context. No real accelerator backend ships with the module: StubBackend
// stands in for CUDA and OpenCL and reports itself unavailable, and
// MockBackend runs the CPU kernels for development and tests. Until a backend is registered every operation fails
// with ErrNoBackend.
package gpu
