package qsim

import "github.com/cwbudde/algo-qsim/internal/qtypes"

// Complex is a type constraint for the amplitude types supported by the kernels.
// The canonical definition is in internal/qtypes.
type Complex = qtypes.Complex

// Device selects the execution target of an Executor.
type Device = qtypes.Device

const (
	// DeviceCPU runs the kernels on a goroutine worker pool.
	DeviceCPU = qtypes.DeviceCPU
	// DeviceGPU runs the kernels on the registered gpu.Backend.
	DeviceGPU = qtypes.DeviceGPU
)

// Precision describes the amplitude type of an Executor.
type Precision = qtypes.Precision

const (
	PrecisionComplex64  = qtypes.PrecisionComplex64
	PrecisionComplex128 = qtypes.PrecisionComplex128
)

// MaxQubits is the largest register the executor accepts.
const MaxQubits = qtypes.MaxQubits

// ParseDevice parses "cpu" or "gpu".
func ParseDevice(s string) (Device, bool) {
	return qtypes.ParseDevice(s)
}

// ParsePrecision parses "complex64" or "complex128".
func ParsePrecision(s string) (Precision, bool) {
	return qtypes.ParsePrecision(s)
}
