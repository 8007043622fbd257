package dispatch

// ForKernel is the per-index operation a dispatch call executes. A kernel is
// built for exactly one index arity: a flat-index kernel (rank 1) or an N-D
// kernel receiving one index per dimension. Dispatch validates the arity
// against the policy's range before any invocation.
//
// Contract for non-Serial spaces: the kernel is called concurrently from
// multiple goroutines and must not read or write overlapping memory across
// indices unless externally synchronized. The index slice passed to an N-D
// kernel is reused between calls on the same worker and must not be retained.
type ForKernel struct {
	rank int
	flat func(i int)
	nd   func(idx []int)
}

// Index builds a rank-1 kernel receiving the flat index.
func Index(f func(i int)) ForKernel {
	return ForKernel{rank: 1, flat: f}
}

// IndexND builds a rank-N kernel receiving one index per dimension.
func IndexND(rank int, f func(idx []int)) ForKernel {
	return ForKernel{rank: rank, nd: f}
}

// Rank returns the kernel's declared index arity.
func (k ForKernel) Rank() int {
	return k.rank
}

// ReduceKernel is the per-index operation of a reduction. Each worker keeps
// a private accumulator seeded with the identity value; partial accumulators
// are combined at join time in unspecified order, so the reduction must be
// associative and commutative. The same concurrency contract as ForKernel
// applies.
type ReduceKernel[A any] struct {
	rank int
	flat func(i int, acc *A)
	nd   func(idx []int, acc *A)
}

// ReduceIndex builds a rank-1 reduction kernel.
func ReduceIndex[A any](f func(i int, acc *A)) ReduceKernel[A] {
	return ReduceKernel[A]{rank: 1, flat: f}
}

// ReduceIndexND builds a rank-N reduction kernel.
func ReduceIndexND[A any](rank int, f func(idx []int, acc *A)) ReduceKernel[A] {
	return ReduceKernel[A]{rank: rank, nd: f}
}

// Rank returns the kernel's declared index arity.
func (k ReduceKernel[A]) Rank() int {
	return k.rank
}
