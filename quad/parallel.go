package quad

import (
	"github.com/ajroetker/go-quadrature/quad/workerpool"
)

// ParallelSimpson is Simpson with the n sub-intervals split into contiguous
// chunks evaluated concurrently on pool. Each chunk accumulates its own
// partial sum over whole sub-intervals, so the partitioning is identical to
// the sequential rule; partials are combined in chunk order, making the
// result deterministic for a given pool size.
//
// f must be safe for concurrent calls. Within a chunk, f is still evaluated
// left to right; ordering across chunks is concurrent. A nil pool falls back
// to the sequential Simpson.
func ParallelSimpson[T Float](pool *workerpool.Pool, f Func[T], a, b T, n int) T {
	if pool == nil {
		return Simpson(f, a, b, n)
	}

	dx := (b - a) / T(n)
	partials := make([]T, pool.NumChunks(n))
	pool.ParallelChunks(n, func(chunk, start, end int) {
		var sum T
		x := a + T(start)*dx
		for i := start; i < end; i++ {
			sum += f(x) + 4*f(x+dx/2) + f(x+dx)
			x += dx
		}
		partials[chunk] = sum
	})

	var sum T
	for _, s := range partials {
		sum += s
	}
	return sum * dx / 6
}
