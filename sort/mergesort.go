package sort

import (
	stdsort "sort"

	"github.com/shreyasbalaji/parstl/parallel"
	"github.com/shreyasbalaji/parstl/sequential"
)

// mergeSort sorts data according to less and reports which of data or
// shadow the sorted result was left in.
//
// At or below parallelCutoff elements per half, it sorts both halves serially in
// place and does a single parallel merge into shadow. Otherwise it forks
// into two recursive halves and, once both return, merges whichever
// buffers they left their results in, moving a half into the other
// buffer first when the two results landed in different buffers.
func mergeSort[T any](data, shadow []T, less func(a, b T) bool) location {
	n := len(data)
	mid := n / 2
	dataL, dataR := data[:mid], data[mid:]
	shadowL, shadowR := shadow[:mid], shadow[mid:]

	if mid <= parallelCutoff {
		sequential.StableSort(dataL, less)
		sequential.StableSort(dataR, less)
		parallelMerge(dataL, dataR, shadow, less)
		return inShadow
	}

	var locL, locR location
	parallel.Do(
		func() { locL = mergeSort(dataL, shadowL, less) },
		func() { locR = mergeSort(dataR, shadowR, less) },
	)

	switch {
	case locL == inShadow && locR == inShadow:
		parallelMerge(shadowL, shadowR, data, less)
		return inPlace
	case locL == inPlace && locR == inPlace:
		parallelMerge(dataL, dataR, shadow, less)
		return inShadow
	case locL == inShadow:
		copyParallel(shadowR, dataR)
		parallelMerge(shadowL, shadowR, data, less)
		return inPlace
	default:
		copyParallel(shadowL, dataL)
		parallelMerge(shadowL, shadowR, data, less)
		return inPlace
	}
}

// parallelMerge merges the sorted slices a and b into out, which must have
// length len(a)+len(b), preserving stability (an element of a is placed
// before an equal element of b).
//
// Below parallelMergeCutoff combined elements it merges serially.
// Otherwise it picks whichever of a, b is longer, splits that one exactly
// in half, and finds the corresponding split point in the other slice by
// binary search — a lower-bound search when splitting a (so that any
// b-elements equal to the split point land after it, preserving
// stability), an upper-bound search when splitting b (so equal a-elements
// land before it) — then recurses into the two halves in parallel.
func parallelMerge[T any](a, b, out []T, less func(a, b T) bool) {
	if len(a)+len(b) < parallelMergeCutoff {
		serialMerge(a, b, out, less)
		return
	}

	var aMid, bMid int
	if len(a) > len(b) {
		aMid = len(a) / 2
		bMid = stdsort.Search(len(b), func(i int) bool { return !less(b[i], a[aMid]) })
	} else {
		bMid = len(b) / 2
		aMid = stdsort.Search(len(a), func(i int) bool { return less(b[bMid], a[i]) })
	}

	parallel.Do(
		func() { parallelMerge(a[:aMid], b[:bMid], out[:aMid+bMid], less) },
		func() { parallelMerge(a[aMid:], b[bMid:], out[aMid+bMid:], less) },
	)
}

// serialMerge merges the sorted slices a and b into out, preserving
// stability by taking from a whenever the two heads compare equal.
func serialMerge[T any](a, b, out []T, less func(a, b T) bool) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	for ; i < len(a); i, k = i+1, k+1 {
		out[k] = a[i]
	}
	for ; j < len(b); j, k = j+1, k+1 {
		out[k] = b[j]
	}
}

// copyParallel copies src into dst, which must have the same length, in
// parallel.
func copyParallel[T any](dst, src []T) {
	parallel.Range(0, len(dst), 0, func(low, high int) {
		for i := low; i < high; i++ {
			dst[i] = src[i]
		}
	})
}
