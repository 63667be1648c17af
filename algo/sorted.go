package algo

import "github.com/shreyasbalaji/parstl/speculative"

// IsSorted reports whether data is sorted in non-decreasing order
// according to less, checked in parallel: below binaryGrainSize elements
// it scans serially, otherwise it splits the range in half, checks the
// element straddling the split directly, and recurses into both halves in
// parallel with speculative.And, which returns false without waiting for
// the right half once the left half is found unsorted.
func IsSorted[T any](data []T, less func(a, b T) bool) bool {
	return isSortedRange(data, less, 0, len(data))
}

func isSortedRange[T any](data []T, less func(a, b T) bool, low, high int) bool {
	width := high - low
	if width < 2 {
		return true
	}
	if width < binaryGrainSize {
		for i := low; i < high-1; i++ {
			if less(data[i+1], data[i]) {
				return false
			}
		}
		return true
	}
	mid := low + width/2
	if less(data[mid], data[mid-1]) {
		return false
	}
	return speculative.And(
		func() bool { return isSortedRange(data, less, low, mid) },
		func() bool { return isSortedRange(data, less, mid, high) },
	)
}
