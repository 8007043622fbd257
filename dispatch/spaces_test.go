//go:build !nosteal

package dispatch_test

import "github.com/parallax-hpc/parallax/policy"

// parallelSpaces lists the parallel execution spaces available in this build
// configuration.
func parallelSpaces() []policy.Space {
	return []policy.Space{policy.Threads, policy.Pool}
}
