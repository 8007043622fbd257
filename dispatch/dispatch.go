// Copyright 2025 The Parallax Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dispatch provides the public dispatch entry points: ParallelFor
// and ParallelReduce execute a kernel over an execution policy's iteration
// range on the policy's execution space.
//
// Every call is synchronous: it validates the policy against the kernel,
// runs to completion across all workers, and only then returns. A failing
// call returns a structured error having invoked the kernel zero times.
package dispatch

import (
	"github.com/parallax-hpc/parallax/internal/dispatch"
	"github.com/parallax-hpc/parallax/policy"
)

// Type aliases for public API

// ForKernel is the per-index operation a dispatch call executes.
type ForKernel = dispatch.ForKernel

// ReduceKernel is the per-index operation of a reduction.
type ReduceKernel[A any] = dispatch.ReduceKernel[A]

// Config controls how parallel execution spaces split work.
type Config = dispatch.Config

// Option adjusts a single dispatch call.
type Option = dispatch.Option

// Error types.
type (
	// ArityError reports a policy-range rank that does not match the
	// kernel's index arity.
	ArityError = dispatch.ArityError
	// UnsupportedError reports a dispatch against an execution space this
	// build cannot execute on. There is never a silent fallback.
	UnsupportedError = dispatch.UnsupportedError
)

// Index builds a rank-1 kernel receiving the flat index.
func Index(f func(i int)) ForKernel {
	return dispatch.Index(f)
}

// IndexND builds a rank-N kernel receiving one index per dimension. The
// index slice is reused between calls and must not be retained.
func IndexND(rank int, f func(idx []int)) ForKernel {
	return dispatch.IndexND(rank, f)
}

// ReduceIndex builds a rank-1 reduction kernel.
func ReduceIndex[A any](f func(i int, acc *A)) ReduceKernel[A] {
	return dispatch.ReduceIndex(f)
}

// ReduceIndexND builds a rank-N reduction kernel.
func ReduceIndexND[A any](rank int, f func(idx []int, acc *A)) ReduceKernel[A] {
	return dispatch.ReduceIndexND(rank, f)
}

// DefaultConfig returns worker defaults based on the detected core count
// and host vector width.
func DefaultConfig() Config {
	return dispatch.DefaultConfig()
}

// WithConfig overrides the worker configuration for one call.
func WithConfig(cfg Config) Option {
	return dispatch.WithConfig(cfg)
}

// WithLabel attaches a diagnostic label, surfaced in error messages.
func WithLabel(label string) Option {
	return dispatch.WithLabel(label)
}

// ParallelFor executes the kernel once per logical index of the policy's
// range. Non-Serial spaces give no ordering guarantee between indices
// assigned to different workers; every index is visited exactly once.
//
// Example:
//
//	r, _ := policy.NewRange1(0, len(xs))
//	p := policy.New(r, policy.ScheduleStatic(), policy.Threads)
//	err := dispatch.ParallelFor(p, dispatch.Index(func(i int) {
//	    xs[i] *= 2
//	}))
func ParallelFor(p policy.Policy, k ForKernel, opts ...Option) error {
	return dispatch.ParallelFor(p, k, opts...)
}

// ParallelReduce executes the reduction kernel once per logical index and
// folds the per-worker partial accumulators with combine, starting from
// identity. The combine order across workers is unspecified; the reduction
// must be associative and commutative.
func ParallelReduce[A any](p policy.Policy, k ReduceKernel[A], identity A, combine func(A, A) A, opts ...Option) (A, error) {
	return dispatch.ParallelReduce(p, k, identity, combine, opts...)
}
