package op

import (
	"runtime"
	"sync"
)

// parallelThreshold is the fan-in above which reductions are chunked across
// goroutines. Below it the goroutine overhead dwarfs the arithmetic.
const parallelThreshold = 4096

// sum reduces vals by addition. The chunked path changes the floating-point
// association order, so results for ill-conditioned inputs may differ in the
// last bits between runs; callers comparing outputs should use a tolerance.
func sum(vals []float64) float64 {
	if len(vals) < parallelThreshold {
		var acc float64
		for _, v := range vals {
			acc += v
		}
		return acc
	}
	return reduceChunks(vals, 0, func(acc float64, chunk []float64) float64 {
		for _, v := range chunk {
			acc += v
		}
		return acc
	}, func(a, b float64) float64 { return a + b })
}

// mapSum reduces vals by f(x) then addition, with the same ordering caveat
// as sum.
func mapSum(vals []float64, f func(float64) float64) float64 {
	if len(vals) < parallelThreshold {
		var acc float64
		for _, v := range vals {
			acc += f(v)
		}
		return acc
	}
	return reduceChunks(vals, 0, func(acc float64, chunk []float64) float64 {
		for _, v := range chunk {
			acc += f(v)
		}
		return acc
	}, func(a, b float64) float64 { return a + b })
}

// product reduces vals by multiplication, identity 1.
func product(vals []float64) float64 {
	if len(vals) < parallelThreshold {
		acc := 1.0
		for _, v := range vals {
			acc *= v
		}
		return acc
	}
	return reduceChunks(vals, 1, func(acc float64, chunk []float64) float64 {
		for _, v := range chunk {
			acc *= v
		}
		return acc
	}, func(a, b float64) float64 { return a * b })
}

// reduceChunks splits vals across up to GOMAXPROCS goroutines, folds each
// chunk starting from identity, and combines the partial results in chunk
// order. The combine function must be associative and commutative.
func reduceChunks(vals []float64, identity float64, fold func(float64, []float64) float64, combine func(a, b float64) float64) float64 {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(vals) {
		workers = len(vals)
	}

	partials := make([]float64, workers)
	chunk := (len(vals) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(vals))
		if lo >= hi {
			partials[w] = identity
			continue
		}
		wg.Add(1)
		go func(w int, part []float64) {
			defer wg.Done()
			partials[w] = fold(identity, part)
		}(w, vals[lo:hi])
	}
	wg.Wait()

	acc := identity
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc
}
