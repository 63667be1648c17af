package algo

import "github.com/shreyasbalaji/parstl/parallel"

// Transform applies f to every element of in, storing the results in out,
// in parallel. in and out must have the same length; out may alias in.
func Transform[T, U any](in []T, out []U, f func(T) U) {
	parallel.Range(0, len(in), 0, func(low, high int) {
		for i := low; i < high; i++ {
			out[i] = f(in[i])
		}
	})
}
