// Package parstl holds the thunk and range-function types used by
// parstl's subpackages. See the parstl package doc (doc.go) for an
// overview of the library.
package parstl

type (
	// A Thunk is a function that neither receives nor returns any
	// parameters. Used as the element type of parallel.Do's fork/join
	// argument list.
	Thunk func()

	// A RangeFunc is a function that receives a range from low to high,
	// with 0 <= low <= high. Used by parallel.Range's parallel-for.
	RangeFunc func(low, high int)
)
