// Package rangebounds provides generic one-dimensional ranges described by a
// pair of bounds, with membership and overlap predicates that need nothing
// from the element type beyond an ordering comparison.
package rangebounds

import "fmt"

// BoundKind tells whether a range side stops at an endpoint that belongs to
// the range, stops just short of an endpoint, or has no limit at all.
type BoundKind uint8

const (
	// BoundIncluded means the side's endpoint is itself part of the range.
	BoundIncluded BoundKind = iota
	// BoundExcluded means the range extends up to but not including the
	// side's endpoint.
	BoundExcluded
	// BoundUnbounded means the side has no limit; the bound carries no
	// endpoint value.
	BoundUnbounded
)

func (k BoundKind) String() string {
	switch k {
	case BoundIncluded:
		return "included"
	case BoundExcluded:
		return "excluded"
	case BoundUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("BoundKind(%d)", uint8(k))
	}
}

// Bound describes one side of a range. It is an immutable value type; the
// endpoint is held by value and only ever handed to comparisons.
type Bound[V any] struct {
	kind  BoundKind
	value V
}

// Included returns a bound whose endpoint v is part of the range.
func Included[V any](v V) Bound[V] {
	return Bound[V]{kind: BoundIncluded, value: v}
}

// Excluded returns a bound the range reaches but does not include.
func Excluded[V any](v V) Bound[V] {
	return Bound[V]{kind: BoundExcluded, value: v}
}

// Unbounded returns a bound with no limit.
func Unbounded[V any]() Bound[V] {
	return Bound[V]{kind: BoundUnbounded}
}

// Kind reports which of the three variants the bound is.
func (b Bound[V]) Kind() BoundKind {
	return b.kind
}

// Value returns the bound's endpoint. ok is false for an unbounded side,
// in which case the returned value is V's zero value and meaningless.
func (b Bound[V]) Value() (v V, ok bool) {
	if b.kind == BoundUnbounded {
		return v, false
	}
	return b.value, true
}

func (b Bound[V]) String() string {
	if b.kind == BoundUnbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%s(%v)", b.kind, b.value)
}
