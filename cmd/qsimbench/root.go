package main

import (
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	qsim "github.com/cwbudde/algo-qsim"
	"github.com/cwbudde/algo-qsim/gpu"
)

var (
	logLevel  string // Log verbosity level
	precision string // Amplitude type: complex64 or complex128
	workers   int    // Worker goroutines, 0 = GOMAXPROCS
	device    string // Execution target: cpu or gpu
	gpuName   string // GPU backend to register: mock, cuda or opencl
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "qsimbench",
	Short: "Run and benchmark quantum state-vector kernels",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if gpuName != "" {
			b, ok := gpu.BackendByName(gpuName, workers)
			if !ok {
				logrus.Fatalf("Unknown GPU backend: %s", gpuName)
			}
			gpu.RegisterBackend(b)
			logrus.Debugf("Registered GPU backend %s", gpuName)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&precision, "precision", "", "Amplitude precision (complex64, complex128); overrides the circuit file")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Worker goroutines (0 = GOMAXPROCS); overrides the circuit file")
	rootCmd.PersistentFlags().StringVar(&device, "device", "", "Execution target (cpu, gpu); overrides the circuit file")

	rootCmd.PersistentFlags().StringVar(&gpuName, "gpu-backend", "", "GPU backend to register (mock, cuda, opencl)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(infoCmd)
}

// executorLogger bridges the executor's structured logs to the logrus level.
func executorLogger() *qsim.Logger {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return qsim.NoopLogger()
	}

	return qsim.NewTextLogger(slog.LevelDebug)
}

// executorOptions merges circuit options with the flags that were set.
func executorOptions(cmd *cobra.Command, base []qsim.Option) []qsim.Option {
	opts := append([]qsim.Option{}, base...)

	if cmd.Flags().Changed("workers") {
		opts = append(opts, qsim.WithWorkers(workers))
	}

	if cmd.Flags().Changed("device") {
		d, ok := qsim.ParseDevice(device)
		if !ok {
			logrus.Fatalf("Invalid device: %s", device)
		}
		opts = append(opts, qsim.WithDevice(d))
	}

	return append(opts, qsim.WithLogger(executorLogger()))
}
