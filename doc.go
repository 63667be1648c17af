// Package parstl provides data-parallel algorithms over random-access slices:
// a parallel stable sort, a parallel in-place partition, two parallel find
// variants, and a family of parallel reductions, transforms, and rotations.
//
// It is a fork/join port of the cilkstl C++ header library onto Go's
// goroutine scheduler, following the task-parallelism idiom of
// github.com/exascience/pargo.
//
// parstl provides the following subpackages:
//
// parstl/parallel provides fork/join primitives (Do, Range) and generic
// reducers (Reduce, ReduceSum, ReduceExtremum) used to build the algorithms
// in parstl/algo and parstl/sort.
//
// parstl/speculative provides early-terminating predicate combinators, used
// by parstl/algo.IsSorted.
//
// parstl/sequential provides single-threaded reference implementations of
// every algorithm in parstl/algo and parstl/sort, for testing and as the
// grain-size base case.
//
// parstl/matomic provides a generics-friendly monotonic atomic index cell,
// used by parstl/algo.Find2's pruning search.
//
// parstl/algo provides parallel transform, count, min/max, sum, is-sorted,
// rotate, find, and partition.
//
// parstl/sort provides the parallel stable merge sort.
//
// Like Cilk, Threading Building Blocks, and java.util.concurrent, parstl
// expects the work performed by a single task to be large relative to task
// scheduling overhead; for exactly that reason the recursive algorithms
// here fall back to a serial implementation below a grain-size threshold,
// and the flat parallel-for algorithms split their range into a bounded
// number of batches.
package parstl
