// Package cpufeat reports, once at startup, whether the host can run the
// four-wide vector dot kernel natively.  The kernel package itself performs
// no capability detection; callers resolve a tier with this package and
// hold onto the choice for the life of the process.
package cpufeat

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HasVector4 reports whether the host executes 4-wide float32 vector
// arithmetic natively.
func HasVector4() bool {
	switch runtime.GOARCH {
	case "amd64":
		// SSE2 is part of the amd64 baseline.
		return true
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}

// Describe returns a short summary of the host's vector features, for logs.
func Describe() string {
	switch {
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		return "amd64 avx2+fma"
	case cpu.X86.HasSSE2:
		return "amd64 sse2"
	case cpu.ARM64.HasASIMD:
		return "arm64 neon"
	default:
		return runtime.GOARCH
	}
}
