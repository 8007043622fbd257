//go:build !nosteal

package dispatch

import (
	"sync"

	"github.com/parallax-hpc/parallax/internal/policy"
)

// poolEnabled reports whether the Pool space is compiled in. Build with the
// nosteal tag to exclude it; dispatch then rejects policy.Pool at validation.
const poolEnabled = true

// span is one contiguous chunk of the linear index space.
type span struct {
	start, end int
}

// runPool executes the linear index space [0, total) on the Pool space.
// Chunks are pushed onto a shared queue in range order and idle workers pull
// the next chunk (FIFO) until the queue drains, balancing load when kernel
// cost varies across indices. Partitioning semantics match runThreads:
// Static derives the chunk size from the worker count, Dynamic uses the
// schedule's chunk size.
func runPool(cfg Config, sched policy.Schedule, total int, run rangeRunner) {
	if total < cfg.MinChunk {
		run(0, total)
		return
	}

	queue, workers := fillQueue(cfg, sched, total)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for s := range queue {
				run(s.start, s.end)
			}
		}()
	}
	wg.Wait()
}

// runPoolReduce is runPool for reductions, with one private accumulator per
// worker. Partials are returned for the caller to combine.
func runPoolReduce[A any](cfg Config, sched policy.Schedule, total int, identity A, run func(start, end int, acc *A)) []A {
	if total < cfg.MinChunk {
		acc := identity
		run(0, total, &acc)
		return []A{acc}
	}

	queue, workers := fillQueue(cfg, sched, total)
	partials := make([]A, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		go func(acc *A) {
			defer wg.Done()
			*acc = identity
			for s := range queue {
				run(s.start, s.end, acc)
			}
		}(&partials[w])
	}
	wg.Wait()
	return partials
}

// fillQueue builds the chunk queue for a run and returns it closed, along
// with the number of workers to drain it.
func fillQueue(cfg Config, sched policy.Schedule, total int) (chan span, int) {
	chunk := staticChunk(total, cfg.Workers)
	if sched.Kind == policy.Dynamic {
		chunk = sched.Chunk
	}
	n := chunkCount(total, chunk)
	queue := make(chan span, n)
	for start := 0; start < total; start += chunk {
		queue <- span{start: start, end: min(start+chunk, total)}
	}
	close(queue)
	return queue, min(cfg.Workers, n)
}
