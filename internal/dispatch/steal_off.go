//go:build nosteal

package dispatch

import "github.com/parallax-hpc/parallax/internal/policy"

// poolEnabled reports whether the Pool space is compiled in. This build
// excludes it; dispatch rejects policy.Pool at validation, so the stubs
// below are unreachable.
const poolEnabled = false

func runPool(Config, policy.Schedule, int, rangeRunner) {
	panic("dispatch: pool backend compiled out")
}

func runPoolReduce[A any](Config, policy.Schedule, int, A, func(start, end int, acc *A)) []A {
	panic("dispatch: pool backend compiled out")
}
