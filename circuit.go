package qsim

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-qsim/gates"
)

// ErrInvalidCircuit is returned when a circuit file is malformed.
var ErrInvalidCircuit = errors.New("qsim: invalid circuit")

// Circuit is a sequence of operations on an nqubits register, as read from a
// YAML circuit file.
type Circuit struct {
	NQubits   int    `yaml:"nqubits"`
	Workers   int    `yaml:"workers,omitempty"`
	Device    string `yaml:"device,omitempty"`
	Precision string `yaml:"precision,omitempty"`
	Ops       []Op   `yaml:"ops"`
}

// Op is one circuit step. Exactly one of Gate, Transpose and Swap is set.
type Op struct {
	Gate     string    `yaml:"gate,omitempty"`
	Target   int       `yaml:"target,omitempty"`
	Controls []int     `yaml:"controls,omitempty"`
	Params   []float64 `yaml:"params,omitempty"`

	Transpose *TransposeOp `yaml:"transpose,omitempty"`
	Swap      *SwapOp      `yaml:"swap,omitempty"`
}

// TransposeOp splits the state into NDevices pieces and reorders its qubits.
type TransposeOp struct {
	NDevices int   `yaml:"ndevices"`
	Order    []int `yaml:"order"`
}

// SwapOp exchanges the global qubit (position 0) with position NewGlobal.
type SwapOp struct {
	NewGlobal int `yaml:"new_global"`
}

// ParseCircuit decodes a YAML circuit. Unknown fields are rejected.
func ParseCircuit(r io.Reader) (*Circuit, error) {
	var c Circuit

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCircuit, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadCircuit reads and parses a YAML circuit file.
func LoadCircuit(path string) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("qsim: open circuit: %w", err)
	}
	defer f.Close()

	return ParseCircuit(f)
}

// Validate checks the fields that do not depend on the state buffers. Qubit
// indices are checked again by the Executor when the circuit runs.
func (c *Circuit) Validate() error {
	if c.NQubits < 1 || c.NQubits > MaxQubits {
		return fmt.Errorf("%w: nqubits %d", ErrInvalidCircuit, c.NQubits)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidCircuit, c.Workers)
	}

	if _, ok := ParseDevice(c.Device); !ok {
		return fmt.Errorf("%w: device %q", ErrInvalidCircuit, c.Device)
	}

	if _, ok := ParsePrecision(c.Precision); !ok {
		return fmt.Errorf("%w: precision %q", ErrInvalidCircuit, c.Precision)
	}

	for i, op := range c.Ops {
		set := 0
		if op.Gate != "" {
			set++
		}
		if op.Transpose != nil {
			set++
		}
		if op.Swap != nil {
			set++
		}

		if set != 1 {
			return fmt.Errorf("%w: ops[%d] must set exactly one of gate, transpose, swap", ErrInvalidCircuit, i)
		}

		if op.Gate != "" {
			if _, err := gates.ByName(op.Gate, op.Params); err != nil {
				return fmt.Errorf("%w: ops[%d]: %w", ErrInvalidCircuit, i, err)
			}
		}
	}

	return nil
}

// PrecisionValue returns the parsed precision (complex128 when unset).
func (c *Circuit) PrecisionValue() Precision {
	p, _ := ParsePrecision(c.Precision)
	return p
}

// Options returns the executor options the circuit file asks for.
func (c *Circuit) Options() []Option {
	dev, _ := ParseDevice(c.Device)

	return []Option{
		WithDevice(dev),
		WithWorkers(c.Workers),
	}
}

// RunCircuit executes the operations of c on state in order.
//
// scratch receives transpositions before they are copied back into state; it
// may be nil, in which case it is allocated on the first transpose.
func RunCircuit[T Complex](e *Executor[T], c *Circuit, state, scratch []T) error {
	for i, op := range c.Ops {
		var err error

		switch {
		case op.Gate != "":
			var m gates.Matrix
			m, err = gates.ByName(op.Gate, op.Params)
			if err == nil {
				err = e.ApplyGate(state, gates.Slice[T](m), c.NQubits, op.Target, op.Controls)
			}

		case op.Transpose != nil:
			if scratch == nil {
				scratch = make([]T, len(state))
			}

			var pieces [][]T
			pieces, err = SplitState(state, op.Transpose.NDevices)
			if err == nil {
				err = e.TransposeState(pieces, scratch, c.NQubits, op.Transpose.Order)
			}
			if err == nil {
				copy(state, scratch)
			}

		case op.Swap != nil:
			half := len(state) / 2
			err = e.SwapPieces(state[:half:half], state[half:], op.Swap.NewGlobal, c.NQubits)

		default:
			err = fmt.Errorf("%w: ops[%d] is empty", ErrInvalidCircuit, i)
		}

		if err != nil {
			return fmt.Errorf("ops[%d]: %w", i, err)
		}
	}

	return nil
}
