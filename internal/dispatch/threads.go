package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/parallax-hpc/parallax/internal/policy"
)

// runThreads executes the linear index space [0, total) on the Threads
// space: one goroutine per chunk, joined before returning.
//
// Static partitions the range into at most cfg.Workers contiguous chunks
// computed up front; chunk boundaries are deterministic for a fixed range
// and worker count. Dynamic has workers pull fixed-size chunks from a shared
// cursor until the range is exhausted.
func runThreads(cfg Config, sched policy.Schedule, total int, run rangeRunner) {
	if total < cfg.MinChunk {
		run(0, total)
		return
	}

	switch sched.Kind {
	case policy.Dynamic:
		workers := min(cfg.Workers, chunkCount(total, sched.Chunk))
		var cursor atomic.Int64
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			go func() {
				defer wg.Done()
				for {
					start := int(cursor.Add(int64(sched.Chunk))) - sched.Chunk
					if start >= total {
						return
					}
					run(start, min(start+sched.Chunk, total))
				}
			}()
		}
		wg.Wait()
	default: // Static
		chunk := staticChunk(total, cfg.Workers)
		var wg sync.WaitGroup
		for start := 0; start < total; start += chunk {
			end := min(start+chunk, total)
			wg.Add(1)
			go func(s, e int) {
				defer wg.Done()
				run(s, e)
			}(start, end)
		}
		wg.Wait()
	}
}

// runThreadsReduce is runThreads for reductions: every chunk or worker keeps
// a private accumulator seeded with identity, and the partials are returned
// for the caller to combine.
func runThreadsReduce[A any](cfg Config, sched policy.Schedule, total int, identity A, run func(start, end int, acc *A)) []A {
	if total < cfg.MinChunk {
		acc := identity
		run(0, total, &acc)
		return []A{acc}
	}

	switch sched.Kind {
	case policy.Dynamic:
		workers := min(cfg.Workers, chunkCount(total, sched.Chunk))
		partials := make([]A, workers)
		var cursor atomic.Int64
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := range workers {
			go func(acc *A) {
				defer wg.Done()
				*acc = identity
				for {
					start := int(cursor.Add(int64(sched.Chunk))) - sched.Chunk
					if start >= total {
						return
					}
					run(start, min(start+sched.Chunk, total), acc)
				}
			}(&partials[w])
		}
		wg.Wait()
		return partials
	default: // Static
		chunk := staticChunk(total, cfg.Workers)
		partials := make([]A, chunkCount(total, chunk))
		var wg sync.WaitGroup
		for w, start := 0, 0; start < total; w, start = w+1, start+chunk {
			end := min(start+chunk, total)
			wg.Add(1)
			go func(s, e int, acc *A) {
				defer wg.Done()
				*acc = identity
				run(s, e, acc)
			}(start, end, &partials[w])
		}
		wg.Wait()
		return partials
	}
}

// staticChunk returns the contiguous chunk size that splits total indices
// into at most workers chunks.
func staticChunk(total, workers int) int {
	workers = min(workers, total)
	return (total + workers - 1) / workers
}

// chunkCount returns how many chunks of the given size cover total indices.
func chunkCount(total, chunk int) int {
	return (total + chunk - 1) / chunk
}
