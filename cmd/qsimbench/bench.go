package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	qsim "github.com/cwbudde/algo-qsim"
	"github.com/cwbudde/algo-qsim/gates"
)

var (
	qubitList string // Comma-separated register sizes
	iters     int    // Timed iterations per kernel
	warmup    int    // Untimed iterations per kernel
	seed      uint64 // RNG seed for the random state and target qubits
)

type benchResult struct {
	nqubits int
	kernel  string
	nsPerOp float64
}

// benchCmd times every kernel on a random state
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the state-vector kernels",
	Run: func(cmd *cobra.Command, args []string) {
		sizes, err := parseQubits(qubitList)
		if err != nil {
			logrus.Fatalf("Invalid --qubits: %v", err)
		}

		prec, ok := qsim.ParsePrecision(precision)
		if !ok {
			logrus.Fatalf("Invalid precision: %s", precision)
		}

		opts := executorOptions(cmd, nil)
		rnd := rand.New(rand.NewPCG(seed, seed))

		fmt.Printf("precision=%s iters=%d warmup=%d\n", prec, iters, warmup)
		fmt.Printf("%8s  %16s  %14s  %12s\n", "qubits", "kernel", "ns/op", "Mamp/s")

		for _, n := range sizes {
			var results []benchResult
			switch prec {
			case qsim.PrecisionComplex64:
				results, err = benchmarkSize[complex64](rnd, n, opts)
			default:
				results, err = benchmarkSize[complex128](rnd, n, opts)
			}

			if err != nil {
				logrus.Fatalf("Benchmark %d qubits: %v", n, err)
			}

			printResults(os.Stdout, results)
		}
	},
}

func init() {
	benchCmd.Flags().StringVar(&qubitList, "qubits", "16,20", "Comma-separated register sizes")
	benchCmd.Flags().IntVar(&iters, "iters", 20, "Benchmark iterations")
	benchCmd.Flags().IntVar(&warmup, "warmup", 3, "Warmup iterations")
	benchCmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed")
}

func parseQubits(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}

		if n < 2 || n > qsim.MaxQubits {
			return nil, fmt.Errorf("%d qubits out of range [2, %d]", n, qsim.MaxQubits)
		}

		out = append(out, n)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes specified")
	}

	sort.Ints(out)
	return out, nil
}

func benchmarkSize[T qsim.Complex](rnd *rand.Rand, nqubits int, opts []qsim.Option) ([]benchResult, error) {
	e, err := qsim.NewExecutor[T](opts...)
	if err != nil {
		return nil, err
	}

	state := make([]T, 1<<nqubits)
	for i := range state {
		state[i] = T(complex(rnd.Float64()-0.5, rnd.Float64()-0.5))
	}
	scratch := make([]T, len(state))

	ry := gates.Slice[T](gates.RY(rnd.Float64()))
	x := gates.Slice[T](gates.X)
	target := rnd.IntN(nqubits)
	control := (target + 1 + rnd.IntN(nqubits-1)) % nqubits
	order := rnd.Perm(nqubits)
	half := len(state) / 2
	newGlobal := 1 + rnd.IntN(nqubits-1)

	pieces, err := qsim.SplitState(state, 2)
	if err != nil {
		return nil, err
	}

	kernels := []struct {
		name string
		fn   func() error
	}{
		{"apply_gate", func() error { return e.ApplyGate(state, ry, nqubits, target, nil) }},
		{"apply_gate_ctrl", func() error { return e.ApplyGate(state, x, nqubits, target, []int{control}) }},
		{"transpose_state", func() error { return e.TransposeState(pieces, scratch, nqubits, order) }},
		{"swap_pieces", func() error { return e.SwapPieces(state[:half:half], state[half:], newGlobal, nqubits) }},
		{"initial_state", func() error { return e.InitialState(scratch) }},
	}

	results := make([]benchResult, 0, len(kernels))
	for _, k := range kernels {
		for range warmup {
			if err := k.fn(); err != nil {
				return nil, fmt.Errorf("%s: %w", k.name, err)
			}
		}

		start := time.Now()
		for range iters {
			if err := k.fn(); err != nil {
				return nil, fmt.Errorf("%s: %w", k.name, err)
			}
		}

		ns := float64(time.Since(start).Nanoseconds()) / float64(max(iters, 1))
		logrus.Debugf("%d qubits %s: %.1f ns/op", nqubits, k.name, ns)
		results = append(results, benchResult{nqubits: nqubits, kernel: k.name, nsPerOp: ns})
	}

	return results, nil
}

func printResults(w io.Writer, results []benchResult) {
	for _, res := range results {
		amps := float64(int(1) << res.nqubits)
		fmt.Fprintf(w, "%8d  %16s  %14.1f  %12.1f\n", res.nqubits, res.kernel, res.nsPerOp, amps/res.nsPerOp*1e3)
	}
}
