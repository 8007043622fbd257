package dispatch

import "github.com/parallax-hpc/parallax/internal/policy"

// ParallelReduce executes the reduction kernel once per logical index of the
// policy's range and returns the combined accumulator. Each worker reduces
// into a private accumulator seeded with identity; partials are folded with
// combine at join time, in unspecified order across workers.
//
// On a validation error the kernel was invoked zero times and identity is
// returned. An empty range returns identity.
func ParallelReduce[A any](p policy.Policy, k ReduceKernel[A], identity A, combine func(A, A) A, opts ...Option) (A, error) {
	s := applyOptions(opts)
	if err := validate(p, k.rank); err != nil {
		return identity, wrapLabel(s.label, err)
	}
	if p.Range.Empty() {
		return identity, nil
	}

	sp := newIterSpace(p.Range)
	run := reduceRunner(sp, k)

	var partials []A
	switch p.Space {
	case policy.Serial:
		acc := identity
		run(0, sp.total, &acc)
		return acc, nil
	case policy.Threads:
		partials = runThreadsReduce(s.cfg, p.Schedule, sp.total, identity, run)
	case policy.Pool:
		partials = runPoolReduce(s.cfg, p.Schedule, sp.total, identity, run)
	}

	acc := identity
	for _, partial := range partials {
		acc = combine(acc, partial)
	}
	return acc, nil
}

func reduceRunner[A any](sp *iterSpace, k ReduceKernel[A]) func(start, end int, acc *A) {
	if k.flat != nil {
		begin := sp.bounds[0].Begin
		return func(start, end int, acc *A) {
			for i := start; i < end; i++ {
				k.flat(begin+i, acc)
			}
		}
	}
	return func(start, end int, acc *A) {
		idx := make([]int, len(sp.bounds))
		for li := start; li < end; li++ {
			sp.coords(li, idx)
			k.nd(idx, acc)
		}
	}
}
