// Copyright 2025 The Parallax Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package policy provides the public API for execution policies: the
// iteration range, the work-distribution schedule, and the execution space
// of a dispatch call.
package policy

import (
	"github.com/parallax-hpc/parallax/internal/policy"
)

// Type aliases for public API

// Bounds is a half-open interval [Begin, End) over one dimension.
type Bounds = policy.Bounds

// Range describes the iteration space of a dispatch call.
type Range = policy.Range

// MaxRank is the maximum number of dimensions a range may have.
const MaxRank = policy.MaxRank

// ScheduleKind selects the work-distribution strategy among workers.
type ScheduleKind = policy.ScheduleKind

// Schedule kinds.
const (
	Static  ScheduleKind = policy.Static
	Dynamic ScheduleKind = policy.Dynamic
)

// Schedule pairs a schedule kind with the chunk size used by Dynamic.
type Schedule = policy.Schedule

// Space is the execution backend a dispatch call targets.
type Space = policy.Space

// Execution spaces.
const (
	Serial  Space = policy.Serial
	Threads Space = policy.Threads
	Pool    Space = policy.Pool
	GPU     Space = policy.GPU
)

// Policy composes a range, a schedule, and an execution space.
type Policy = policy.Policy

// RangeError reports an invalid interval in some dimension.
type RangeError = policy.RangeError

// Sentinel errors.
var (
	ErrBadRank  = policy.ErrBadRank
	ErrBadChunk = policy.ErrBadChunk
)

// NewRange builds an N-dimensional range from per-dimension bounds. Each
// interval must satisfy 0 <= Begin <= End; empty intervals are legal and
// yield zero kernel invocations.
func NewRange(bounds ...Bounds) (Range, error) {
	return policy.NewRange(bounds...)
}

// NewRange1 builds a one-dimensional range [begin, end).
func NewRange1(begin, end int) (Range, error) {
	return policy.NewRange1(begin, end)
}

// ScheduleStatic returns the static schedule: a fixed partition of the range
// across workers, computed up front.
func ScheduleStatic() Schedule {
	return policy.ScheduleStatic()
}

// ScheduleDynamic returns a dynamic schedule: workers pull chunks of the
// given size until the range is exhausted. The chunk size must be positive.
func ScheduleDynamic(chunk int) (Schedule, error) {
	return policy.ScheduleDynamic(chunk)
}

// New composes a policy from already-validated parts.
//
// Example:
//
//	r, _ := policy.NewRange1(0, 1<<20)
//	p := policy.New(r, policy.ScheduleStatic(), policy.Threads)
func New(r Range, s Schedule, space Space) Policy {
	return policy.New(r, s, space)
}
