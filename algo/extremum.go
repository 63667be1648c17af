package algo

import "github.com/shreyasbalaji/parstl/parallel"

// MinElement returns the index of the smallest element of data according
// to less, computed in parallel. Ties resolve to the lowest index. ok is
// false if data is empty.
func MinElement[T any](data []T, less func(a, b T) bool) (index int, ok bool) {
	return parallel.ReduceExtremum(0, len(data), 0,
		func(i int) T { return data[i] },
		less,
	)
}

// MaxElement returns the index of the largest element of data according
// to less, computed in parallel. Ties resolve to the lowest index. ok is
// false if data is empty.
func MaxElement[T any](data []T, less func(a, b T) bool) (index int, ok bool) {
	return parallel.ReduceExtremum(0, len(data), 0,
		func(i int) T { return data[i] },
		func(candidate, current T) bool { return less(current, candidate) },
	)
}
