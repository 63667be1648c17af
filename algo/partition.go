package algo

import (
	"github.com/shreyasbalaji/parstl/parallel"
	"github.com/shreyasbalaji/parstl/sequential"
)

// Partition reorders data so that every element for which pred returns
// true precedes every element for which it returns false, and returns the
// index of the first element in the "false" partition. Partition does not
// preserve the relative order of elements within each side.
//
// Below partitionGrainSize elements, Partition falls back to a single
// serial in-place partition pass. Above that, it runs partStride
// independent strided partition passes in parallel — pass i partitions
// only the elements at indices congruent to i modulo partStride — leaving an
// "uncertain" region between the smallest and largest cutoff any pass
// produced, which is then partitioned serially. This works best when the
// two output partitions are close to evenly sized and the predicate is
// roughly randomly distributed; skewed inputs can leave a large uncertain
// region and degrade to little better than the serial fallback.
func Partition[T any](data []T, pred func(T) bool) int {
	n := len(data)
	if n < partitionGrainSize {
		return sequential.Partition(data, pred)
	}
	numParts := n / partStride
	results := make([]int, partStride)
	parallel.Range(0, partStride, 0, func(low, high int) {
		for i := low; i < high; i++ {
			results[i] = stridedPartition(data, pred, numParts, i)
		}
	})
	left, _ := sequential.MinElement(results, func(a, b int) bool { return a < b })
	right, _ := sequential.MaxElement(results, func(a, b int) bool { return a < b })
	leftCutoff, rightCutoff := results[left], results[right]
	cutoff := sequential.Partition(data[leftCutoff:rightCutoff], pred)
	return leftCutoff + cutoff
}

// stridedPartition partitions the elements of data at indices congruent to
// offset modulo partSize, where partSize = len(data)/numParts, using the
// same swap-from-both-ends scan as a standard in-place partition.
func stridedPartition[T any](data []T, pred func(T) bool, numParts, offset int) int {
	n := len(data)
	partSize := n / numParts
	s := offset
	var e int
	if partSize*numParts+offset < n {
		e = partSize*numParts + offset
	} else {
		e = partSize*(numParts-1) + offset
	}
	for s < e {
		data[s], data[e] = data[e], data[s]
		for pred(data[s]) && s < e {
			s += partSize
		}
		for !pred(data[e]) && s < e {
			e -= partSize
		}
	}
	if pred(data[s]) {
		return s + 1
	}
	return s
}
