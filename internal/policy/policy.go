// Package policy defines the value types that parameterize a dispatch call:
// the iteration range, the work-distribution schedule, and the execution
// space. All validation happens at construction; a Policy composed from
// validated parts needs no further checks of its own.
package policy

import "fmt"

// MaxRank is the maximum number of dimensions an iteration range may have.
// Kept in lockstep with the view package's rank limit.
const MaxRank = 8

// Bounds is a half-open interval [Begin, End) over one dimension.
type Bounds struct {
	Begin int
	End   int
}

// Size returns the number of indices in the interval.
func (b Bounds) Size() int {
	return b.End - b.Begin
}

// Range describes the iteration space of a dispatch call: one half-open
// interval per dimension. A range with any empty interval yields zero kernel
// invocations.
type Range struct {
	bounds []Bounds
}

// NewRange builds an N-dimensional range from per-dimension bounds.
func NewRange(bounds ...Bounds) (Range, error) {
	if len(bounds) == 0 || len(bounds) > MaxRank {
		return Range{}, fmt.Errorf("%w: rank %d (must be 1..%d)", ErrBadRank, len(bounds), MaxRank)
	}
	for d, b := range bounds {
		if b.Begin < 0 || b.Begin > b.End {
			return Range{}, &RangeError{Dim: d, Begin: b.Begin, End: b.End}
		}
	}
	cloned := make([]Bounds, len(bounds))
	copy(cloned, bounds)
	return Range{bounds: cloned}, nil
}

// NewRange1 builds a one-dimensional range [begin, end).
func NewRange1(begin, end int) (Range, error) {
	return NewRange(Bounds{Begin: begin, End: end})
}

// Rank returns the number of dimensions of the range.
func (r Range) Rank() int {
	return len(r.bounds)
}

// Bounds returns the per-dimension intervals.
func (r Range) Bounds() []Bounds {
	return r.bounds
}

// NumIndices returns the total number of logical indices the range covers.
func (r Range) NumIndices() int {
	n := 1
	for _, b := range r.bounds {
		n *= b.Size()
	}
	if len(r.bounds) == 0 {
		return 0
	}
	return n
}

// Empty reports whether the range covers no indices.
func (r Range) Empty() bool {
	return r.NumIndices() == 0
}

// ScheduleKind selects the work-distribution strategy among workers.
type ScheduleKind int

const (
	// Static partitions the range into fixed contiguous chunks, one per
	// worker, computed up front. Partitioning is deterministic for a fixed
	// range and worker count.
	Static ScheduleKind = iota
	// Dynamic has workers pull chunks of a fixed size until the range is
	// exhausted. Better load balance for irregular kernel cost.
	Dynamic
)

// String returns a human-readable schedule name.
func (k ScheduleKind) String() string {
	switch k {
	case Static:
		return "Static"
	case Dynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}

// Schedule pairs a schedule kind with the chunk size used by Dynamic.
type Schedule struct {
	Kind  ScheduleKind
	Chunk int // indices per pull; used only when Kind == Dynamic
}

// ScheduleStatic returns the static schedule.
func ScheduleStatic() Schedule {
	return Schedule{Kind: Static}
}

// ScheduleDynamic returns a dynamic schedule pulling chunk indices at a time.
func ScheduleDynamic(chunk int) (Schedule, error) {
	if chunk <= 0 {
		return Schedule{}, fmt.Errorf("%w: chunk size %d", ErrBadChunk, chunk)
	}
	return Schedule{Kind: Dynamic, Chunk: chunk}, nil
}

// Space is the execution backend a dispatch call targets.
type Space int

const (
	// Serial executes the kernel sequentially on the calling goroutine,
	// in row-major index order. The correctness baseline.
	Serial Space = iota
	// Threads fans the range out across one goroutine per worker and joins.
	Threads
	// Pool executes over a per-call chunk queue drained by worker
	// goroutines, for better load balance on irregular kernels. May be
	// compiled out, in which case dispatch rejects it.
	Pool
	// GPU marks intent to execute on a device. Unimplemented: dispatching
	// against it always fails deterministically rather than silently
	// falling back to a CPU space.
	GPU
)

// String returns a human-readable space name.
func (s Space) String() string {
	switch s {
	case Serial:
		return "Serial"
	case Threads:
		return "Threads"
	case Pool:
		return "Pool"
	case GPU:
		return "GPU"
	default:
		return "Unknown"
	}
}

// Policy composes a range, a schedule, and an execution space. The range's
// rank must equal the kernel's index arity at dispatch time.
type Policy struct {
	Range    Range
	Schedule Schedule
	Space    Space
}

// New composes a policy from already-validated parts.
func New(r Range, s Schedule, space Space) Policy {
	return Policy{Range: r, Schedule: s, Space: space}
}
