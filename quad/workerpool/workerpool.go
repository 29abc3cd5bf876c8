// Copyright 2025 The go-quadrature Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for chunked
// numerical reductions. Unlike per-call goroutine spawning, a Pool is created
// once and reused across many integrations, eliminating allocation and spawn
// overhead when the same integrand is evaluated at many resolutions.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	partials := make([]float64, pool.NumChunks(n))
//	pool.ParallelChunks(n, func(chunk, start, end int) {
//	    partials[chunk] = sumRange(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many parallel reductions.
// Workers are spawned once at creation and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single unit of work queued to the workers.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned immediately.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop of each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes first. Close is
// idempotent. A closed pool degrades to sequential execution rather than
// failing, but must not be closed concurrently with ParallelChunks if the
// caller sized accumulators from NumChunks.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// plan splits n items into contiguous chunks, one per participating worker.
// Chunks have uniform cost in this domain, so a static split beats work
// stealing.
func (p *Pool) plan(n int) (chunks, chunkSize int) {
	if n <= 0 {
		return 0, 0
	}
	if p.closed.Load() {
		return 1, n
	}
	chunks = min(p.numWorkers, n)
	chunkSize = (n + chunks - 1) / chunks
	// Rounding up the size can leave trailing workers with empty ranges.
	chunks = (n + chunkSize - 1) / chunkSize
	return chunks, chunkSize
}

// NumChunks reports how many chunks ParallelChunks will split n items into,
// so callers can pre-size per-chunk accumulators. Always >= 1 for n >= 1.
func (p *Pool) NumChunks(n int) int {
	chunks, _ := p.plan(n)
	return chunks
}

// ParallelChunks executes fn once per contiguous chunk of [0, n), passing the
// chunk index and the half-open index range [start, end). Chunk indices are
// dense in [0, NumChunks(n)). Blocks until all chunks complete. On a closed
// pool, or when only one chunk results, fn runs on the calling goroutine as
// fn(0, 0, n).
func (p *Pool) ParallelChunks(n int, fn func(chunk, start, end int)) {
	chunks, chunkSize := p.plan(n)
	if chunks == 0 {
		return
	}
	if chunks == 1 {
		fn(0, 0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(chunks)

	for c := 0; c < chunks; c++ {
		c := c
		start := c * chunkSize
		end := min(start+chunkSize, n)
		p.workC <- workItem{
			fn: func() {
				fn(c, start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelFor executes fn over contiguous ranges covering [0, n), without
// exposing chunk identity. Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelChunks(n, func(_, start, end int) {
		fn(start, end)
	})
}
