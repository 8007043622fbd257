//go:build !nosteal

package dispatch

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-hpc/parallax/internal/policy"
)

func TestFillQueueStatic(t *testing.T) {
	cfg := Config{Workers: 4, MinChunk: 1}
	queue, workers := fillQueue(cfg, policy.ScheduleStatic(), 100)

	assert.Equal(t, 4, workers)

	// Chunks arrive in range order (FIFO), covering [0, 100) exactly.
	var spans []span
	for s := range queue {
		spans = append(spans, s)
	}
	require.Len(t, spans, 4)
	next := 0
	for _, s := range spans {
		assert.Equal(t, next, s.start)
		assert.Greater(t, s.end, s.start)
		next = s.end
	}
	assert.Equal(t, 100, next)
}

func TestFillQueueDynamic(t *testing.T) {
	cfg := Config{Workers: 4, MinChunk: 1}
	sched, err := policy.ScheduleDynamic(7)
	require.NoError(t, err)

	queue, workers := fillQueue(cfg, sched, 20)
	assert.Equal(t, 3, workers, "never more workers than chunks")

	var spans []span
	for s := range queue {
		spans = append(spans, s)
	}
	require.Len(t, spans, 3)
	assert.Equal(t, span{0, 7}, spans[0])
	assert.Equal(t, span{7, 14}, spans[1])
	assert.Equal(t, span{14, 20}, spans[2])
}

func TestPoolIrregularKernelCost(t *testing.T) {
	// Kernel cost varies wildly across indices; the pool must still visit
	// every index exactly once.
	const n = 200
	counts := make([]int32, n)

	sched, err := policy.ScheduleDynamic(4)
	require.NoError(t, err)
	p := policy.New(mustRange1(t, 0, n), sched, policy.Pool)

	err = ParallelFor(p, Index(func(i int) {
		spin := 1
		if i%17 == 0 {
			spin = 5000
		}
		for s := 0; s < spin; s++ {
			_ = s * s
		}
		atomic.AddInt32(&counts[i], 1)
	}), WithConfig(testConfig()))
	require.NoError(t, err)

	for i, c := range counts {
		require.Equal(t, int32(1), c, "index %d", i)
	}
}

func BenchmarkParallelForSpaces(b *testing.B) {
	const n = 100000
	out := make([]float64, n)
	cfg := DefaultConfig()

	for _, space := range cpuSpaces() {
		b.Run(space.String(), func(b *testing.B) {
			r, _ := policy.NewRange1(0, n)
			p := policy.New(r, policy.ScheduleStatic(), space)
			kernel := Index(func(i int) {
				out[i] = float64(i) * 1.5
			})
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := ParallelFor(p, kernel, WithConfig(cfg)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
