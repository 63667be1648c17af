package algo

import "github.com/shreyasbalaji/parstl/parallel"

// Count returns the number of elements of data equal to value, computed in
// parallel with a scalar-sum reducer.
func Count[T comparable](data []T, value T) int {
	return parallel.ReduceSum(0, len(data), 0, func(i int) int {
		if data[i] == value {
			return 1
		}
		return 0
	})
}

// CountIf returns the number of elements of data for which pred returns
// true, computed in parallel with a scalar-sum reducer.
func CountIf[T any](data []T, pred func(T) bool) int {
	return parallel.ReduceSum(0, len(data), 0, func(i int) int {
		if pred(data[i]) {
			return 1
		}
		return 0
	})
}
