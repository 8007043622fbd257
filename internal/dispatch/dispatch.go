// Package dispatch turns an execution policy and a kernel into actual,
// possibly parallel, execution. Every call is a fresh run: validation,
// backend selection, execution, join. No state persists across calls and a
// call blocks until all of its workers have finished.
package dispatch

import (
	"fmt"
	"sync"

	"github.com/parallax-hpc/parallax/internal/gpuprobe"
	"github.com/parallax-hpc/parallax/internal/policy"
)

// gpuAdapter caches the adapter probe; probing instantiates a wgpu instance,
// far too slow to repeat per dispatch.
var gpuAdapter = sync.OnceValue(gpuprobe.Available)

// ParallelFor executes the kernel once per logical index of the policy's
// range, on the policy's execution space.
//
// All failures are validation-time: an error return means the kernel was
// invoked zero times. An empty range is a no-op success.
func ParallelFor(p policy.Policy, k ForKernel, opts ...Option) error {
	s := applyOptions(opts)
	if err := validate(p, k.rank); err != nil {
		return wrapLabel(s.label, err)
	}
	if p.Range.Empty() {
		return nil
	}

	sp := newIterSpace(p.Range)
	switch p.Space {
	case policy.Serial:
		serialFor(sp, k)
	case policy.Threads:
		runThreads(s.cfg, p.Schedule, sp.total, forRunner(sp, k))
	case policy.Pool:
		runPool(s.cfg, p.Schedule, sp.total, forRunner(sp, k))
	}
	return nil
}

// validate is the single validation point per dispatch call. No kernel
// invocation happens before it passes.
func validate(p policy.Policy, kernelRank int) error {
	if p.Range.Rank() != kernelRank {
		return &ArityError{PolicyRank: p.Range.Rank(), KernelRank: kernelRank}
	}
	switch p.Space {
	case policy.Serial, policy.Threads:
	case policy.Pool:
		if !poolEnabled {
			return &UnsupportedError{Space: policy.Pool, Reason: "work-stealing pool compiled out (nosteal)"}
		}
	case policy.GPU:
		reason := "gpu execution is not implemented (no adapter detected)"
		if gpuAdapter() {
			reason = "gpu execution is not implemented (adapter present)"
		}
		return &UnsupportedError{Space: policy.GPU, Reason: reason}
	default:
		return &UnsupportedError{Space: p.Space, Reason: "unknown execution space"}
	}
	if p.Schedule.Kind == policy.Dynamic && p.Schedule.Chunk <= 0 {
		return fmt.Errorf("%w: chunk size %d", policy.ErrBadChunk, p.Schedule.Chunk)
	}
	return nil
}

func wrapLabel(label string, err error) error {
	if label == "" {
		return err
	}
	return fmt.Errorf("%s: %w", label, err)
}

// iterSpace maps the linear index space [0, total) onto the policy range in
// row-major order.
type iterSpace struct {
	bounds []policy.Bounds
	total  int
	suffix []int // suffix[d] = product of dimension sizes after d
}

func newIterSpace(r policy.Range) *iterSpace {
	bounds := r.Bounds()
	suffix := make([]int, len(bounds))
	prod := 1
	for d := len(bounds) - 1; d >= 0; d-- {
		suffix[d] = prod
		prod *= bounds[d].Size()
	}
	return &iterSpace{bounds: bounds, total: prod, suffix: suffix}
}

// coords fills idx with the logical index for linear position li.
func (sp *iterSpace) coords(li int, idx []int) {
	for d := range sp.bounds {
		idx[d] = sp.bounds[d].Begin + (li/sp.suffix[d])%sp.bounds[d].Size()
	}
}

// rangeRunner executes the kernel over a contiguous slice [start, end) of
// the linear index space. Parallel backends hand each worker its own runner
// invocations; the index buffer is per-invocation, never shared.
type rangeRunner func(start, end int)

func forRunner(sp *iterSpace, k ForKernel) rangeRunner {
	if k.flat != nil {
		begin := sp.bounds[0].Begin
		return func(start, end int) {
			for i := start; i < end; i++ {
				k.flat(begin + i)
			}
		}
	}
	return func(start, end int) {
		idx := make([]int, len(sp.bounds))
		for li := start; li < end; li++ {
			sp.coords(li, idx)
			k.nd(idx)
		}
	}
}

// serialFor iterates the full index space on the calling goroutine, in
// strict row-major order. This is the correctness baseline the parallel
// spaces are tested against.
func serialFor(sp *iterSpace, k ForKernel) {
	if k.flat != nil {
		b := sp.bounds[0]
		for i := b.Begin; i < b.End; i++ {
			k.flat(i)
		}
		return
	}
	idx := make([]int, len(sp.bounds))
	nestedLoop(sp.bounds, idx, 0, k.nd)
}

// nestedLoop unravels one loop per dimension, invoking visit with the full
// index once the innermost dimension is reached.
func nestedLoop(bounds []policy.Bounds, idx []int, depth int, visit func([]int)) {
	if depth == len(bounds) {
		visit(idx)
		return
	}
	for i := bounds[depth].Begin; i < bounds[depth].End; i++ {
		idx[depth] = i
		nestedLoop(bounds, idx, depth+1, visit)
	}
}
