package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	qsim "github.com/cwbudde/algo-qsim"
	"github.com/cwbudde/algo-qsim/gpu"
	"github.com/cwbudde/algo-qsim/internal/cpu"
)

// infoCmd prints the detected CPU features and the GPU backend
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show CPU features and the registered GPU backend",
	Run: func(cmd *cobra.Command, args []string) {
		f := cpu.DetectFeatures()

		fmt.Printf("go:          %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Printf("cpus:        %d (GOMAXPROCS %d)\n", f.NumCPU, runtime.GOMAXPROCS(0))
		fmt.Printf("features:    %s\n", f.String())
		fmt.Printf("max qubits:  %d\n", qsim.MaxQubits)

		info, ok := gpu.CurrentBackendInfo()
		if !ok {
			fmt.Println("gpu backend: none (device gpu returns not implemented)")
			return
		}

		fmt.Printf("gpu backend: %s %s (%s)\n", info.Name, info.Version, info.Description)
	},
}
