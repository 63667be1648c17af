package algo

import (
	"gonum.org/v1/gonum/floats"

	"github.com/shreyasbalaji/parstl/parallel"
)

// Sum returns the sum of the elements of data, computed in parallel with a
// scalar-sum reducer. This is the "op_add" reduction that spec-derived
// analogues of cilkstl's other algorithms are built on, exposed here as a
// first-class operation.
//
// For []float64, the per-batch base case is gonum's floats.Sum rather than
// a hand-written loop.
func Sum[T parallel.Numeric](data []T) T {
	if fs, ok := any(data).([]float64); ok {
		return any(sumFloat64(fs)).(T)
	}
	return parallel.ReduceSum(0, len(data), 0, func(i int) T { return data[i] })
}

func sumFloat64(data []float64) float64 {
	return parallel.RangeReduce(0, len(data), 0,
		func(low, high int) float64 { return floats.Sum(data[low:high]) },
		func(x, y float64) float64 { return x + y },
	)
}
