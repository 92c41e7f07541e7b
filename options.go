package qsim

import (
	"github.com/cwbudde/algo-qsim/gpu"
)

type options struct {
	device      Device
	workers     int
	backend     gpu.Backend
	deviceIndex int
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures an Executor.
type Option func(*options)

// WithDevice selects the execution target. The default is DeviceCPU.
//
// DeviceGPU never falls back to the CPU: without an available backend every
// operation fails with ErrNotImplemented.
func WithDevice(d Device) Option {
	return func(o *options) {
		o.device = d
	}
}

// WithWorkers sets the number of goroutines the CPU kernels may use.
// 0 selects runtime.GOMAXPROCS(0); 1 runs every kernel on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBackend pins the GPU backend used by DeviceGPU instead of the one
// registered with gpu.RegisterBackend.
func WithBackend(b gpu.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithDeviceIndex selects which GPU device to open (0 = default).
func WithDeviceIndex(i int) Option {
	return func(o *options) {
		o.deviceIndex = i
	}
}

// WithLogger configures the logger. If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector. If nil is passed,
// NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
