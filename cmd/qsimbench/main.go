// Command qsimbench runs YAML circuits and benchmarks the state-vector
// kernels. CLI handling lives in the cobra commands in root.go.
package main

func main() {
	Execute()
}
