package qtypes

import (
	"strconv"
	"strings"
)

// Complex is the amplitude constraint shared by every package.
type Complex interface {
	~complex64 | ~complex128
}

// MaxQubits bounds the qubit count so every index and bit weight fits in int.
const MaxQubits = strconv.IntSize - 2

// Device selects the execution target for an operation.
type Device uint8

const (
	DeviceCPU Device = iota
	DeviceGPU
)

// String returns the lower-case device name.
func (d Device) String() string {
	switch d {
	case DeviceCPU:
		return "cpu"
	case DeviceGPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// ParseDevice parses a device name as produced by String.
func ParseDevice(s string) (Device, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cpu":
		return DeviceCPU, true
	case "gpu":
		return DeviceGPU, true
	default:
		return DeviceCPU, false
	}
}

// Precision describes the amplitude type of a buffer.
type Precision uint8

const (
	PrecisionComplex64 Precision = iota
	PrecisionComplex128
)

// String returns the Go type name for the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionComplex64:
		return "complex64"
	case PrecisionComplex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// ParsePrecision parses "complex64" or "complex128" (also "single"/"double").
func ParsePrecision(s string) (Precision, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "complex128", "double":
		return PrecisionComplex128, true
	case "complex64", "single":
		return PrecisionComplex64, true
	default:
		return PrecisionComplex128, false
	}
}

// PrecisionOf reports the precision of T.
func PrecisionOf[T Complex]() Precision {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return PrecisionComplex64
	default:
		return PrecisionComplex128
	}
}
