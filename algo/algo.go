// Package algo provides parallel data-parallel algorithms over
// random-access slices: transform, count, extremum search, summation,
// is-sorted checking, rotation, find, and partition.
//
// The recursive algorithms here (IsSorted, Find, Find2, Partition) fall
// back to a serial loop below a fixed grain-size threshold; the others
// (Transform, Count, CountIf, MinElement, MaxElement, Sum, Rotate,
// RotateInPlace) split their range into batches with the fork/join
// primitives in parstl/parallel that they are built out of.
package algo

// Grain-size thresholds below which the recursive algorithms in this
// package (IsSorted, Find, Find2, Partition) fall back to a serial
// implementation rather than forking further.
const (
	// binaryGrainSize is the cutoff for the binary-recursion algorithms
	// IsSorted and Find.
	binaryGrainSize = 2000

	// find2GrainSize is the cutoff for Find2's pruning search.
	find2GrainSize = 2400

	// partitionGrainSize is the cutoff below which Partition defers to a
	// single serial partition pass.
	partitionGrainSize = 4096

	// partStride is the number of independent strided partition passes
	// Partition runs in parallel before serially cleaning up the
	// uncertain middle region.
	partStride = 64
)
