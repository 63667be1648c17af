package algo

import (
	"github.com/shreyasbalaji/parstl/matomic"
	"github.com/shreyasbalaji/parstl/parallel"
	"github.com/shreyasbalaji/parstl/sequential"
)

// Find returns the index of the first element of data equal to value, or
// len(data) if value does not occur, searching in parallel: below
// binaryGrainSize elements it scans serially, otherwise it splits the
// range in half, searches both halves in parallel, and prefers the left
// half's result whenever it found a match.
func Find[T comparable](data []T, value T) int {
	return findRange(data, value, 0, len(data))
}

func findRange[T comparable](data []T, value T, low, high int) int {
	width := high - low
	if width < binaryGrainSize {
		for i := low; i < high; i++ {
			if data[i] == value {
				return i
			}
		}
		return high
	}
	mid := low + width/2
	var left, right int
	parallel.Do(
		func() { left = findRange(data, value, low, mid) },
		func() { right = findRange(data, value, mid, high) },
	)
	if left != mid {
		return left
	}
	return right
}

// Find2 returns the same result as Find, but instead of always waiting
// for both halves it prunes recursive calls once a lower index has
// already been found elsewhere, using an atomic monotonic bound
// (matomic.Index). This trades the guaranteed logarithmic join depth of
// Find for the ability to skip work in ranges that occur after an already
// -found match.
//
// At or below 2*find2GrainSize elements, Find2 falls back directly to a serial
// scan.
func Find2[T comparable](data []T, value T) int {
	width := len(data)
	if width <= 2*find2GrainSize {
		return sequential.Find(data, value)
	}
	idx := matomic.NewIndex(width)
	find2Range(data, value, 0, width, idx)
	return idx.Load()
}

func find2Range[T comparable](data []T, value T, start, end int, idx *matomic.Index) {
	if start >= idx.Load() {
		return
	}
	width := end - start
	if width < find2GrainSize {
		for i := start; i < end; i++ {
			if data[i] == value {
				idx.Lower(i)
				return
			}
		}
		return
	}
	mid := start + width/2
	parallel.Do(
		func() { find2Range(data, value, start, mid, idx) },
		func() { find2Range(data, value, mid, end, idx) },
	)
}
