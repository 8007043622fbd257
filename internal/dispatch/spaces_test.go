//go:build !nosteal

package dispatch

import "github.com/parallax-hpc/parallax/internal/policy"

// cpuSpaces lists the execution spaces available in this build configuration
// that must produce identical results.
func cpuSpaces() []policy.Space {
	return []policy.Space{policy.Serial, policy.Threads, policy.Pool}
}

// parallelSpaces lists the spaces checked against the serial baseline.
func parallelSpaces() []policy.Space {
	return []policy.Space{policy.Threads, policy.Pool}
}
