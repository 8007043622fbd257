package dispatch

import (
	"fmt"

	"github.com/parallax-hpc/parallax/internal/policy"
)

// ArityError reports a mismatch between the policy's range rank and the
// kernel's declared index arity. The kernel was not invoked.
type ArityError struct {
	PolicyRank int
	KernelRank int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("rank mismatch: policy range is rank %d, kernel expects rank %d", e.PolicyRank, e.KernelRank)
}

// UnsupportedError reports a dispatch against an execution space this build
// cannot execute on. The kernel was not invoked; there is no fallback.
type UnsupportedError struct {
	Space  policy.Space
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported backend %s: %s", e.Space, e.Reason)
}
