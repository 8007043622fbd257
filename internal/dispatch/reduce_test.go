package dispatch

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-hpc/parallax/internal/policy"
)

func addInt64(a, b int64) int64 { return a + b }

// TestReduceCountAllSpaces: summing 1 over a range of size K must return
// exactly K regardless of space or schedule.
func TestReduceCountAllSpaces(t *testing.T) {
	const k = 997 // prime, so no schedule divides it evenly

	kernel := ReduceIndex(func(i int, acc *int64) {
		*acc++
	})

	for _, space := range cpuSpaces() {
		for _, sched := range []policy.Schedule{policy.ScheduleStatic(), mustDynamic(t, 16)} {
			p := policy.New(mustRange1(t, 0, k), sched, space)
			got, err := ParallelReduce(p, kernel, 0, addInt64, WithConfig(testConfig()))
			require.NoError(t, err)
			assert.Equal(t, int64(k), got, "space %s schedule %s", space, sched.Kind)
		}
	}
}

func TestReduceSum1D(t *testing.T) {
	const n = 500
	want := int64(n * (n - 1) / 2)

	kernel := ReduceIndex(func(i int, acc *int64) {
		*acc += int64(i)
	})

	for _, space := range cpuSpaces() {
		p := policy.New(mustRange1(t, 0, n), mustDynamic(t, 9), space)
		got, err := ParallelReduce(p, kernel, 0, addInt64, WithConfig(testConfig()))
		require.NoError(t, err)
		assert.Equal(t, want, got, "space %s", space)
	}
}

func TestReduceSum2D(t *testing.T) {
	bounds := []policy.Bounds{{Begin: 0, End: 20}, {Begin: 0, End: 30}}

	kernel := ReduceIndexND(2, func(idx []int, acc *int64) {
		*acc += int64(idx[0] * idx[1])
	})

	serial := policy.New(mustRange(t, bounds...), policy.ScheduleStatic(), policy.Serial)
	want, err := ParallelReduce(serial, kernel, 0, addInt64)
	require.NoError(t, err)

	// Closed form: (sum i)(sum j).
	assert.Equal(t, int64(20*19/2)*int64(30*29/2), want)

	for _, space := range parallelSpaces() {
		for _, sched := range []policy.Schedule{policy.ScheduleStatic(), mustDynamic(t, 11)} {
			p := policy.New(mustRange(t, bounds...), sched, space)
			got, err := ParallelReduce(p, kernel, 0, addInt64, WithConfig(testConfig()))
			require.NoError(t, err)
			assert.Equal(t, want, got, "space %s schedule %s", space, sched.Kind)
		}
	}
}

func TestReduceMax(t *testing.T) {
	data := []float64{3, -7, 12, 0.5, 11.9, -100, 4}

	kernel := ReduceIndex(func(i int, acc *float64) {
		if data[i] > *acc {
			*acc = data[i]
		}
	})
	combine := func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	}

	for _, space := range cpuSpaces() {
		p := policy.New(mustRange1(t, 0, len(data)), policy.ScheduleStatic(), space)
		got, err := ParallelReduce(p, kernel, -1e300, combine, WithConfig(testConfig()))
		require.NoError(t, err)
		assert.Equal(t, 12.0, got, "space %s", space)
	}
}

func TestReduceEmptyRangeReturnsIdentity(t *testing.T) {
	var calls atomic.Int64
	kernel := ReduceIndex(func(i int, acc *int64) { calls.Add(1) })

	p := policy.New(mustRange1(t, 4, 4), policy.ScheduleStatic(), policy.Threads)
	got, err := ParallelReduce(p, kernel, 42, addInt64, WithConfig(testConfig()))
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
	assert.Zero(t, calls.Load())
}

func TestReduceRankMismatch(t *testing.T) {
	var calls atomic.Int64
	kernel := ReduceIndexND(3, func(idx []int, acc *int64) { calls.Add(1) })

	p := policy.New(mustRange1(t, 0, 10), policy.ScheduleStatic(), policy.Serial)
	got, err := ParallelReduce(p, kernel, 7, addInt64)

	var ae *ArityError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 1, ae.PolicyRank)
	assert.Equal(t, 3, ae.KernelRank)
	assert.Equal(t, int64(7), got, "identity returned on validation failure")
	assert.Zero(t, calls.Load())
}

func TestReduceGPURejected(t *testing.T) {
	p := policy.New(mustRange1(t, 0, 10), policy.ScheduleStatic(), policy.GPU)
	_, err := ParallelReduce(p, ReduceIndex(func(int, *int64) {}), 0, addInt64)

	var ue *UnsupportedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, policy.GPU, ue.Space)
}

func TestReduceOffsetRange(t *testing.T) {
	// Begin offsets must reach the kernel, not zero-based positions.
	kernel := ReduceIndex(func(i int, acc *int64) {
		*acc += int64(i)
	})

	for _, space := range parallelSpaces() {
		p := policy.New(mustRange1(t, 100, 110), mustDynamic(t, 3), space)
		got, err := ParallelReduce(p, kernel, 0, addInt64, WithConfig(testConfig()))
		require.NoError(t, err)
		assert.Equal(t, int64(1045), got, "space %s", space) // 100+...+109
	}
}
