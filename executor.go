package qsim

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/cwbudde/algo-qsim/gpu"
	"github.com/cwbudde/algo-qsim/internal/cpu"
	"github.com/cwbudde/algo-qsim/internal/kernels"
	"github.com/cwbudde/algo-qsim/internal/qtypes"
)

// Executor validates state-vector buffers and runs the kernels on the
// selected execution target.
//
// An Executor holds no buffers and is safe for concurrent use, provided
// concurrent calls do not share a buffer: every operation has exclusive
// access to the buffers it is given for the duration of the call.
type Executor[T Complex] struct {
	device      Device
	workers     int
	backend     gpu.Backend
	deviceIndex int
	logger      *Logger
	metrics     MetricsCollector
}

// NewExecutor creates an executor for amplitudes of type T.
//
// Returns ErrInvalidWorkers for a negative worker count and ErrNotImplemented
// for an unknown device. Selecting DeviceGPU succeeds even when no backend is
// registered; the backend is resolved on every operation.
func NewExecutor[T Complex](opts ...Option) (*Executor[T], error) {
	o := options{
		device:  DeviceCPU,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, o.workers)
	}

	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	if o.device != DeviceCPU && o.device != DeviceGPU {
		return nil, fmt.Errorf("%w: device %d", ErrNotImplemented, o.device)
	}

	e := &Executor[T]{
		device:      o.device,
		workers:     o.workers,
		backend:     o.backend,
		deviceIndex: o.deviceIndex,
		logger:      o.logger.WithDevice(o.device),
		metrics:     o.metrics,
	}

	e.logger.Debug("executor created",
		"precision", e.Precision().String(),
		"workers", e.workers,
		"cpu", cpu.DetectFeatures().String())

	return e, nil
}

// Device returns the execution target.
func (e *Executor[T]) Device() Device {
	return e.device
}

// Workers returns the worker count used by the CPU kernels.
func (e *Executor[T]) Workers() int {
	return e.workers
}

// Precision returns the amplitude precision of T.
func (e *Executor[T]) Precision() Precision {
	return qtypes.PrecisionOf[T]()
}

// ApplyGate applies the row-major 2x2 matrix gate to qubit target of state,
// in place, for every basis pair whose control qubits are all 1.
//
// state must hold exactly 2^nqubits amplitudes and gate exactly 4. Controls
// must be distinct, in [0, nqubits) and different from target.
func (e *Executor[T]) ApplyGate(state, gate []T, nqubits, target int, controls []int) error {
	start := time.Now()
	err := e.applyGate(state, gate, nqubits, target, controls)
	e.record(OpApplyGate, len(state), start, err)
	return err
}

func (e *Executor[T]) applyGate(state, gate []T, nqubits, target int, controls []int) error {
	if err := validateGate(state, gate, nqubits, target, controls); err != nil {
		return err
	}

	if e.device == DeviceGPU {
		ctx, err := e.openGPU()
		if err != nil {
			return err
		}
		defer func() { _ = ctx.Close() }()

		return e.gpuError(ctx.ApplyGate(state, gate, nqubits, target, controls))
	}

	kernels.ApplyGate(state, [4]T(gate), nqubits, target, controls, e.workers)
	return nil
}

// TransposeState fills dst with the state held in pieces, reordered so that
// bit position p of the output index (counted from the most significant bit)
// holds logical qubit order[p].
//
// len(pieces) must be a power of two, every piece must hold
// 2^nqubits/len(pieces) amplitudes, dst 2^nqubits amplitudes, and dst must not
// overlap any piece.
func (e *Executor[T]) TransposeState(pieces [][]T, dst []T, nqubits int, order []int) error {
	start := time.Now()
	err := e.transposeState(pieces, dst, nqubits, order)
	e.record(OpTransposeState, len(dst), start, err)
	return err
}

func (e *Executor[T]) transposeState(pieces [][]T, dst []T, nqubits int, order []int) error {
	if err := validateTranspose(pieces, dst, nqubits, order); err != nil {
		return err
	}

	if e.device == DeviceGPU {
		ctx, err := e.openGPU()
		if err != nil {
			return err
		}
		defer func() { _ = ctx.Close() }()

		return e.gpuError(ctx.TransposeState(pieces, dst, nqubits, order))
	}

	kernels.TransposeState(pieces, dst, nqubits, order, e.workers)
	return nil
}

// SwapPieces exchanges half of piece0 and piece1 in place so that the qubit at
// bit position newGlobal of an nqubits register becomes the global qubit that
// selects between the pieces, and the previous global qubit takes its place.
//
// piece0 holds the amplitudes whose global qubit is 0, piece1 those where it
// is 1; each holds 2^(nqubits-1) amplitudes. 1 <= newGlobal < nqubits.
// Applying the same swap twice restores both pieces.
func (e *Executor[T]) SwapPieces(piece0, piece1 []T, newGlobal, nqubits int) error {
	start := time.Now()
	err := e.swapPieces(piece0, piece1, newGlobal, nqubits)
	e.record(OpSwapPieces, len(piece0)+len(piece1), start, err)
	return err
}

func (e *Executor[T]) swapPieces(piece0, piece1 []T, newGlobal, nqubits int) error {
	if err := validateSwap(piece0, piece1, newGlobal, nqubits); err != nil {
		return err
	}

	if e.device == DeviceGPU {
		ctx, err := e.openGPU()
		if err != nil {
			return err
		}
		defer func() { _ = ctx.Close() }()

		return e.gpuError(ctx.SwapPieces(piece0, piece1, newGlobal, nqubits))
	}

	kernels.SwapPieces(piece0, piece1, newGlobal, nqubits, e.workers)
	return nil
}

// InitialState sets state to |00...0>. len(state) must be a power of two.
func (e *Executor[T]) InitialState(state []T) error {
	start := time.Now()
	err := e.initialState(state)
	e.record(OpInitialState, len(state), start, err)
	return err
}

func (e *Executor[T]) initialState(state []T) error {
	if err := validateInitial(state); err != nil {
		return err
	}

	if e.device == DeviceGPU {
		ctx, err := e.openGPU()
		if err != nil {
			return err
		}
		defer func() { _ = ctx.Close() }()

		return e.gpuError(ctx.InitialState(state))
	}

	kernels.InitialState(state, e.workers)
	return nil
}

func (e *Executor[T]) openGPU() (gpu.Context, error) {
	ctx, err := gpu.Open(e.backend, e.deviceIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotImplemented, e.device, err)
	}

	return ctx, nil
}

// gpuError maps a backend's ErrNotImplemented onto the package sentinel.
func (e *Executor[T]) gpuError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gpu.ErrNotImplemented) {
		return fmt.Errorf("%w: %s: %w", ErrNotImplemented, e.device, err)
	}

	return fmt.Errorf("qsim: %s: %w", e.device, err)
}

func (e *Executor[T]) record(op Operation, amplitudes int, start time.Time, err error) {
	d := time.Since(start)
	e.metrics.RecordOperation(op, amplitudes, d, err)

	if err != nil {
		e.logger.WithOp(op).Warn("operation failed", "error", err, "duration", d)
	}
}
