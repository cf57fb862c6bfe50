package compute

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks instruction set extensions relevant to the kernels.
type CPUFeatures struct {
	HasSSE4  bool
	HasAVX   bool
	HasAVX2  bool
	HasFMA   bool
	HasASIMD bool // ARM64 Advanced SIMD
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE4:  cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:   cpu.X86.HasAVX,
		HasAVX2:  cpu.X86.HasAVX2,
		HasFMA:   cpu.X86.HasFMA,
		HasASIMD: cpu.ARM64.HasASIMD,
	}
}

// HasWideVectors reports whether the CPU has vector units wide enough that
// the blocked parallel kernels pay off at the default thresholds. Without
// them the sequential path is preferred for all but the largest problems.
func HasWideVectors() bool {
	return (cpuFeatures.HasAVX2 && cpuFeatures.HasFMA) || cpuFeatures.HasASIMD
}

// CPUInfo returns a string describing available CPU features.
func CPUInfo() string {
	var features []string
	if cpuFeatures.HasSSE4 {
		features = append(features, "SSE4")
	}
	if cpuFeatures.HasAVX {
		features = append(features, "AVX")
	}
	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if cpuFeatures.HasASIMD {
		features = append(features, "ASIMD")
	}
	if len(features) == 0 {
		return "scalar"
	}
	return strings.Join(features, "+")
}
