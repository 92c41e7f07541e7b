// Package cpu reports the CPU features of the host. The executor logs them at
// construction and the qsimbench CLI prints them.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to the amplitude kernels.
type Features struct {
	HasSSE2      bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasFMA       bool
	HasAVX512    bool
	HasNEON      bool
	HasSVE       bool
	Architecture string
	NumCPU       int
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasFMA:       cpu.X86.HasFMA,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
		HasSVE:       cpu.ARM64.HasSVE,
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
	}
}

// List returns the names of the detected features in a fixed order.
func (f Features) List() []string {
	var names []string

	add := func(ok bool, name string) {
		if ok {
			names = append(names, name)
		}
	}

	add(f.HasSSE2, "sse2")
	add(f.HasSSE41, "sse4.1")
	add(f.HasAVX, "avx")
	add(f.HasAVX2, "avx2")
	add(f.HasFMA, "fma")
	add(f.HasAVX512, "avx512f")
	add(f.HasNEON, "neon")
	add(f.HasSVE, "sve")

	return names
}

// String returns "arch: feat1,feat2" or "arch: generic" without any feature.
func (f Features) String() string {
	list := f.List()
	if len(list) == 0 {
		return f.Architecture + ": generic"
	}

	return f.Architecture + ": " + strings.Join(list, ",")
}
