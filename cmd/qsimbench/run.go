package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	qsim "github.com/cwbudde/algo-qsim"
)

var (
	circuitPath string  // Path to the YAML circuit
	threshold   float64 // Smallest probability printed
)

// runCmd executes a circuit from |0...0> and prints the final probabilities
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a YAML circuit and print the basis-state probabilities",
	Run: func(cmd *cobra.Command, args []string) {
		if circuitPath == "" {
			logrus.Fatalf("Circuit file not provided (--circuit)")
		}

		c, err := qsim.LoadCircuit(circuitPath)
		if err != nil {
			logrus.Fatalf("Loading circuit: %v", err)
		}

		prec := c.PrecisionValue()
		if cmd.Flags().Changed("precision") {
			p, ok := qsim.ParsePrecision(precision)
			if !ok {
				logrus.Fatalf("Invalid precision: %s", precision)
			}
			prec = p
		}

		logrus.Infof("Running %s: %d qubits, %d ops, %s", circuitPath, c.NQubits, len(c.Ops), prec)

		opts := executorOptions(cmd, c.Options())
		switch prec {
		case qsim.PrecisionComplex64:
			err = runCircuit[complex64](os.Stdout, c, opts, threshold)
		default:
			err = runCircuit[complex128](os.Stdout, c, opts, threshold)
		}

		if err != nil {
			logrus.Fatalf("Running circuit: %v", err)
		}
	},
}

func init() {
	runCmd.Flags().StringVar(&circuitPath, "circuit", "", "Path to the YAML circuit file")
	runCmd.Flags().Float64Var(&threshold, "threshold", 1e-9, "Smallest probability to print")
}

func runCircuit[T qsim.Complex](w io.Writer, c *qsim.Circuit, opts []qsim.Option, threshold float64) error {
	e, err := qsim.NewExecutor[T](opts...)
	if err != nil {
		return err
	}

	state := make([]T, 1<<c.NQubits)
	if err := e.InitialState(state); err != nil {
		return err
	}

	start := time.Now()
	if err := qsim.RunCircuit(e, c, state, nil); err != nil {
		return err
	}
	logrus.Debugf("Circuit finished in %v", time.Since(start))

	return printProbabilities(w, state, c.NQubits, threshold)
}

func printProbabilities[T qsim.Complex](w io.Writer, state []T, nqubits int, threshold float64) error {
	for i, a := range state {
		z := complex128(a)
		p := real(z)*real(z) + imag(z)*imag(z)
		if p < threshold {
			continue
		}

		if _, err := fmt.Fprintf(w, "|%0*b>  %.6f  (%+.6f%+.6fi)\n", nqubits, i, p, real(z), imag(z)); err != nil {
			return err
		}
	}

	return nil
}
