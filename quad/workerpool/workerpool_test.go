// Copyright 2025 The go-quadrature Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelChunks_CoversAllIndicesOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 103
	var mu sync.Mutex
	seen := make([]int, n)

	pool.ParallelChunks(n, func(chunk, start, end int) {
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			seen[i]++
		}
	})

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d covered %d times, want 1", i, c)
		}
	}
}

func TestParallelChunks_DenseChunkIndices(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 2, 3, 4, 5, 7, 100} {
		chunks := pool.NumChunks(n)
		if chunks < 1 || chunks > n {
			t.Fatalf("NumChunks(%d) = %d, want within [1, %d]", n, chunks, n)
		}

		var mu sync.Mutex
		hit := make([]bool, chunks)
		pool.ParallelChunks(n, func(chunk, start, end int) {
			mu.Lock()
			defer mu.Unlock()
			if chunk < 0 || chunk >= chunks {
				t.Errorf("n=%d: chunk index %d outside [0, %d)", n, chunk, chunks)
				return
			}
			hit[chunk] = true
		})

		for c, ok := range hit {
			if !ok {
				t.Errorf("n=%d: chunk %d never executed", n, c)
			}
		}
	}
}

func TestParallelChunks_SmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// n=1 collapses to a single inline chunk.
	ran := false
	pool.ParallelChunks(1, func(chunk, start, end int) {
		ran = true
		if chunk != 0 || start != 0 || end != 1 {
			t.Errorf("got chunk=%d start=%d end=%d, want 0, 0, 1", chunk, start, end)
		}
	})
	if !ran {
		t.Error("chunk never executed for n=1")
	}
}

func TestParallelChunks_ZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	pool.ParallelChunks(0, func(chunk, start, end int) {
		t.Errorf("fn called for n=0 with chunk=%d", chunk)
	})
	if pool.NumChunks(0) != 0 {
		t.Errorf("NumChunks(0) = %d, want 0", pool.NumChunks(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()

	ran := false
	pool.ParallelChunks(10, func(chunk, start, end int) {
		ran = true
		if chunk != 0 || start != 0 || end != 10 {
			t.Errorf("got chunk=%d start=%d end=%d, want 0, 0, 10", chunk, start, end)
		}
	})
	if !ran {
		t.Error("closed pool did not run work")
	}
	if pool.NumChunks(10) != 1 {
		t.Errorf("NumChunks on closed pool = %d, want 1", pool.NumChunks(10))
	}
}

func TestCloseIdempotent(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close() // must not panic
}
