package gpu

import "github.com/cwbudde/algo-qsim/internal/qtypes"

// Complex is the shared amplitude constraint.
type Complex = qtypes.Complex

// PrecisionKind describes the amplitude precision of a buffer.
type PrecisionKind = qtypes.Precision

const (
	PrecisionComplex64  = qtypes.PrecisionComplex64
	PrecisionComplex128 = qtypes.PrecisionComplex128
)

// DeviceInfo describes a GPU device.
type DeviceInfo struct {
	Name       string
	Vendor     string
	Driver     string
	MemoryMB   int
	ComputeCap string
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}
