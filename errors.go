// Package dsu provides a disjoint-set forest (union-find) over a fixed set of
// elements labelled 0..n-1, with path compression and union by size.
package dsu

import (
	"errors"
	"fmt"
)

// Element errors
var (
	// ErrOutOfRange indicates that an element id is not in [0, n).
	ErrOutOfRange = errors.New("element out of range")
)

// Construction errors
var (
	// ErrNegativeSize indicates that a forest was requested with a negative element count.
	ErrNegativeSize = errors.New("negative forest size")
)

// Consistency errors
var (
	// ErrCorrupt indicates that the forest no longer satisfies its invariants (should not happen).
	ErrCorrupt = errors.New("forest invariant violated")
)

// RangeError describes an element id passed to an operation outside the
// forest's bounds. Operations panic with a *RangeError; it unwraps to
// ErrOutOfRange.
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dsu: %s: element %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
