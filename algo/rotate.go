package algo

import "github.com/shreyasbalaji/parstl/parallel"

// Rotate rotates data left by mid positions, so that data[mid] becomes
// data[0], using a single auxiliary buffer sized to the larger of the
// two segments. The larger segment is round-tripped through the buffer and
// the smaller segment is shifted directly into place, with every copy
// done in parallel.
//
// The left segment (length mid) is buffered only when it is strictly the
// larger of the two: when mid <= len(data)-mid, the right segment is
// buffered instead.
func Rotate[T any](data []T, mid int) {
	n := len(data)
	if n == 0 {
		return
	}
	a, c := mid, n
	b := c - a
	if a <= c/2 {
		buffer := make([]T, b)
		parallel.Range(0, b, 0, func(low, high int) {
			for k := low; k < high; k++ {
				buffer[k] = data[mid+k]
			}
		})
		parallel.Range(0, a, 0, func(low, high int) {
			for k := low; k < high; k++ {
				data[b+k] = data[k]
			}
		})
		parallel.Range(0, b, 0, func(low, high int) {
			for k := low; k < high; k++ {
				data[k] = buffer[k]
			}
		})
	} else {
		buffer := make([]T, a)
		parallel.Range(0, a, 0, func(low, high int) {
			for k := low; k < high; k++ {
				buffer[k] = data[k]
			}
		})
		parallel.Range(0, b, 0, func(low, high int) {
			for k := low; k < high; k++ {
				data[k] = data[mid+k]
			}
		})
		parallel.Range(0, a, 0, func(low, high int) {
			for k := low; k < high; k++ {
				data[b+k] = buffer[k]
			}
		})
	}
}

// RotateInPlace rotates data left by mid positions, so that data[mid]
// becomes data[0], using no auxiliary storage: it reverses the two
// segments [0, mid) and [mid, len(data)) in parallel with each other, and
// then reverses the whole slice.
func RotateInPlace[T any](data []T, mid int) {
	if len(data) == 0 {
		return
	}
	parallel.Do(
		func() { reverseInPlace(data[:mid]) },
		func() { reverseInPlace(data[mid:]) },
	)
	reverseInPlace(data)
}

func reverseInPlace[T any](data []T) {
	parallel.Range(0, len(data)/2, 0, func(low, high int) {
		for k := low; k < high; k++ {
			j := len(data) - k - 1
			data[k], data[j] = data[j], data[k]
		}
	})
}
