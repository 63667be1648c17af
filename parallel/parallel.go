// Package parallel provides fork/join primitives and generic reducers used
// to express parallel algorithms.
//
// Do and Range are the "spawn"/"sync" and "parallel-for" scheduler
// primitives that the algorithms in parstl/algo and parstl/sort are built
// out of. Reduce, ReduceSum, and ReduceExtremum are the associative
// reducer facility those algorithms use to combine per-batch partial
// results at a join.
package parallel

import (
	"fmt"
	"sync"

	"github.com/shreyasbalaji/parstl"
	"github.com/shreyasbalaji/parstl/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only when all
// thunks have terminated. If len(thunks) > 2, the thunk list is recursively
// halved so that the fork/join tree stays logarithmic in depth rather than
// spawning one goroutine per thunk up front.
//
// If one or more thunks panic, the corresponding goroutines recover the
// panics, and Do eventually panics with the left-most recovered panic
// value, annotated with a stack trace by internal.WrapPanic.
func Do(thunks ...parstl.Thunk) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(thunks) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			thunks[1]()
		}()
		thunks[0]()
	default:
		half := len(thunks) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			Do(thunks[half:]...)
		}()
		Do(thunks[:half]...)
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
}

// Range receives a range, a batch count n, and a range function f, divides
// the range into batches, and invokes the range function for each of these
// batches in parallel, covering the half-open interval from low to high,
// including low but excluding high.
//
// The batches are determined by dividing up the size of the range
// (high - low) by n. If n is 0, a reasonable default is used that takes
// runtime.GOMAXPROCS(0) into account.
//
// Range panics if high < low, or if n < 0. If one or more range function
// invocations panic, the corresponding goroutines recover the panics, and
// Range eventually panics with the left-most recovered panic value.
func Range(low, high, n int, f parstl.RangeFunc) {
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		switch {
		case n == 1:
			f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				f(low, high)
				return
			}
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				recur(mid, high, n-half)
			}()
			recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// Reduce receives one or more functions, executes them in parallel, and
// combines their results in parallel with join, using the same
// recursive-halving fork/join tree as Do.
//
// If one or more functions panic, the corresponding goroutines recover the
// panics, and Reduce eventually panics with the left-most recovered panic
// value.
func Reduce[T any](join func(x, y T) T, first func() T, more ...func() T) T {
	if len(more) == 0 {
		return first()
	}
	var left, right T
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	if len(more) == 1 {
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			right = more[0]()
		}()
		left = first()
	} else {
		half := (len(more) + 1) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			right = Reduce(join, more[half-1], more[half:]...)
		}()
		left = Reduce(join, first, more[:half-1]...)
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return join(left, right)
}

// Numeric is the set of types ReduceSum and algo.Sum can accumulate.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ReduceSum receives a range, a batch count n, and a per-element value
// function, divides the range into batches, sums each batch's elements in
// parallel, and combines the partial sums, matching the associative
// "scalar sum" reducer described by cilkstl's cilk::op_add.
func ReduceSum[T Numeric](low, high, n int, value func(i int) T) T {
	if high <= low {
		var zero T
		return zero
	}
	var recur func(int, int, int) T
	recur = func(low, high, n int) T {
		batchSum := func(low, high int) T {
			var sum T
			for i := low; i < high; i++ {
				sum += value(i)
			}
			return sum
		}
		switch {
		case n == 1:
			return batchSum(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return batchSum(low, high)
			}
			var left, right T
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				right = recur(mid, high, n-half)
			}()
			left = recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return left + right
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// RangeReduce receives a range, a batch count n, a per-batch value
// function, and a join function, divides the range into batches, computes
// a value for each batch in parallel, and combines the partial values with
// join, generalizing ReduceSum to an arbitrary associative combiner.
func RangeReduce[T any](low, high, n int, value func(low, high int) T, join func(x, y T) T) T {
	var recur func(int, int, int) T
	recur = func(low, high, n int) T {
		switch {
		case n == 1:
			return value(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return value(low, high)
			}
			var left, right T
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				right = recur(mid, high, n-half)
			}()
			left = recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return join(left, right)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// extremum tracks an (index, value) pair the way cilk::op_max_index and
// cilk::op_min_index do, so that ties can be broken deterministically.
type extremum[T any] struct {
	index int
	value T
}

// ReduceExtremum receives a range, a batch count n, a per-element value
// function, and a "replace" comparator, divides the range into batches, and
// finds the index of the extremal element in parallel.
//
// better(candidate, current) reports whether candidate should replace
// current as the running extremum; MinElement passes the caller's less
// directly, MaxElement passes its inverse. Because the fork/join tree
// always combines a left (lower-index) partial result with a right one and
// only replaces the left when better strictly holds, a tie — better(x, y)
// false in both directions — resolves to the lowest index, matching the
// tie-break rule for extremum reducers.
//
// ok is false only when low == high (an empty range), in which case index
// is meaningless.
func ReduceExtremum[T any](low, high, n int, value func(i int) T, better func(candidate, current T) bool) (index int, ok bool) {
	if high <= low {
		return 0, false
	}
	combine := func(left, right extremum[T]) extremum[T] {
		if better(right.value, left.value) {
			return right
		}
		return left
	}
	var recur func(int, int, int) extremum[T]
	recur = func(low, high, n int) extremum[T] {
		batchExtremum := func(low, high int) extremum[T] {
			e := extremum[T]{index: low, value: value(low)}
			for i := low + 1; i < high; i++ {
				e = combine(e, extremum[T]{index: i, value: value(i)})
			}
			return e
		}
		switch {
		case n == 1:
			return batchExtremum(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return batchExtremum(low, high)
			}
			var left, right extremum[T]
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				right = recur(mid, high, n-half)
			}()
			left = recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return combine(left, right)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	e := recur(low, high, internal.ComputeNofBatches(low, high, n))
	return e.index, true
}
