// Package sort provides a parallel stable sort over random-access slices.
package sort

import "github.com/shreyasbalaji/parstl/sequential"

// parallelCutoff is the range size below which StableSort defers entirely
// to a serial stable sort, and the half-range size at or below which the
// recursive merge sort stops forking and sorts both halves serially
// before a single parallel merge.
const parallelCutoff = 4000

// parallelMergeCutoff is the combined input size below which a merge
// falls back to a serial merge rather than forking further.
const parallelMergeCutoff = 1000

// location tracks which of the two buffers a merge sort's sorted output
// currently lives in.
type location int

const (
	inPlace location = iota
	inShadow
)

// StableSort sorts data in place according to less, preserving the
// relative order of elements that compare equal.
//
// Below parallelCutoff elements it sorts serially. Otherwise it allocates
// a shadow buffer of the same length as data and runs a fork/join merge
// sort that ping-pongs its output between data and the shadow buffer, to
// avoid the cost of copying the sorted output back and forth at every
// level of the recursion; only the final result is copied back into data,
// and only if it ended up in the shadow buffer.
func StableSort[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n < parallelCutoff {
		sequential.StableSort(data, less)
		return
	}
	shadow := make([]T, n)
	if mergeSort(data, shadow, less) == inShadow {
		copyParallel(data, shadow)
	}
}
