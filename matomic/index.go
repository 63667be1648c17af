// Package matomic provides a monotonic atomic index cell, used by the
// pruning search in parstl/algo's Find2.
package matomic

import "sync/atomic"

// Index is an atomic cell that only ever moves to smaller values. It
// starts out holding a sentinel (conventionally one past the highest
// valid index in the search range), and every successful call to Lower
// strictly decreases it.
//
// A plain compare-and-swap loop is sufficient here: since the value is
// monotonically non-increasing, a failed CAS just means another goroutine
// already lowered the bound, so the retry naturally re-checks against the
// improved value.
type Index struct {
	v atomic.Int64
}

// NewIndex returns an Index initialized to sentinel.
func NewIndex(sentinel int) *Index {
	idx := &Index{}
	idx.v.Store(int64(sentinel))
	return idx
}

// Load returns the current value.
func (idx *Index) Load() int {
	return int(idx.v.Load())
}

// Lower attempts to set the cell to candidate, and reports whether it
// succeeded. It fails without retrying once the current value is already
// less than or equal to candidate; otherwise it retries the compare-and-
// swap until it either installs candidate or discovers the current value
// has already dropped to candidate or below.
func (idx *Index) Lower(candidate int) bool {
	c := int64(candidate)
	for {
		current := idx.v.Load()
		if c >= current {
			return false
		}
		if idx.v.CompareAndSwap(current, c) {
			return true
		}
	}
}
