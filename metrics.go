package qsim

import (
	"sync/atomic"
	"time"
)

// Operation identifies an Executor operation in logs and metrics.
type Operation uint8

const (
	OpApplyGate Operation = iota
	OpTransposeState
	OpSwapPieces
	OpInitialState

	numOperations
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpApplyGate:
		return "apply_gate"
	case OpTransposeState:
		return "transpose_state"
	case OpSwapPieces:
		return "swap_pieces"
	case OpInitialState:
		return "initial_state"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordOperation is called after every Executor operation.
	// amplitudes is the number of amplitudes the call covered, duration the
	// wall time including validation, err is nil if successful.
	RecordOperation(op Operation, amplitudes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperation(Operation, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ops [numOperations]operationCounters
}

type operationCounters struct {
	count      atomic.Int64
	errors     atomic.Int64
	totalNanos atomic.Int64
	amplitudes atomic.Int64
}

// OperationStats is a snapshot of the counters of one operation.
type OperationStats struct {
	Count      int64
	Errors     int64
	Amplitudes int64
	Total      time.Duration
}

// Average returns the mean duration per call.
func (s OperationStats) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// RecordOperation implements MetricsCollector.
func (c *BasicMetricsCollector) RecordOperation(op Operation, amplitudes int, duration time.Duration, err error) {
	if op >= numOperations {
		return
	}

	ctr := &c.ops[op]
	ctr.count.Add(1)
	ctr.totalNanos.Add(duration.Nanoseconds())
	ctr.amplitudes.Add(int64(amplitudes))
	if err != nil {
		ctr.errors.Add(1)
	}
}

// Stats returns the counters recorded for op.
func (c *BasicMetricsCollector) Stats(op Operation) OperationStats {
	if op >= numOperations {
		return OperationStats{}
	}

	ctr := &c.ops[op]
	return OperationStats{
		Count:      ctr.count.Load(),
		Errors:     ctr.errors.Load(),
		Amplitudes: ctr.amplitudes.Load(),
		Total:      time.Duration(ctr.totalNanos.Load()),
	}
}
