// Package hostcaps reports the CPU capabilities of the host machine.
// The dispatch layer uses the report to pick chunk-size defaults; the CLI
// prints it verbatim.
package hostcaps

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Caps describes the detected host CPU capabilities.
type Caps struct {
	LogicalCores int      // detected logical core count
	VectorBits   int      // widest usable SIMD register width, 0 if none detected
	Features     []string // detected SIMD feature names
}

// Detect probes the host CPU. The result is stable for the process lifetime.
func Detect() Caps {
	c := Caps{LogicalCores: runtime.NumCPU()}

	if cpu.X86.HasAVX512F {
		c.VectorBits = 512
		c.Features = append(c.Features, "AVX512F")
	} else if cpu.X86.HasAVX2 {
		c.VectorBits = 256
		c.Features = append(c.Features, "AVX2")
	} else if cpu.X86.HasSSE42 {
		c.VectorBits = 128
		c.Features = append(c.Features, "SSE4.2")
	}
	if cpu.X86.HasFMA {
		c.Features = append(c.Features, "FMA")
	}
	if cpu.ARM64.HasASIMD {
		c.VectorBits = 128
		c.Features = append(c.Features, "ASIMD")
	}
	if cpu.ARM64.HasSVE {
		c.Features = append(c.Features, "SVE")
	}
	return c
}

// ChunkHint returns a suggested minimum number of indices per worker chunk.
// Wider vector units favor larger chunks so vectorized kernel bodies keep
// their lanes full across the chunk.
func (c Caps) ChunkHint() int {
	switch {
	case c.VectorBits >= 512:
		return 256
	case c.VectorBits >= 256:
		return 128
	default:
		return 64
	}
}
