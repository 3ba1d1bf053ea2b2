package rangebounds

import "golang.org/x/exp/constraints"

func ordLT[V constraints.Ordered](a, b V) bool { return a < b }
func ordLE[V constraints.Ordered](a, b V) bool { return a <= b }

// Contains reports whether item lies within r: at or above the start bound
// and at or below the end bound, each side checked independently.
//
// The decision delegates entirely to the element type's ordering operators.
// A comparison that evaluates to false excludes the point, so for a
// non-total order (float NaN) membership is false no matter which side the
// incomparable value sits on:
//
//	Contains[float64](Range[float64]{0, 1}, math.NaN()) == false
//	Contains[float64](Range[float64]{math.NaN(), 1}, 0.5) == false
func Contains[V constraints.Ordered](r RangeBounds[V], item V) bool {
	return startAdmits(r.StartBound(), item, ordLT[V], ordLE[V]) &&
		endAdmits(r.EndBound(), item, ordLT[V], ordLE[V])
}

// ContainsFunc is Contains for element types without ordering operators, or
// for a point of a different type than the range's elements. cmp compares a
// range endpoint against the point, returning a value that is negative,
// zero, or positive when the endpoint orders below, equal to, or above the
// point. The comparator must be total over the values it is handed.
func ContainsFunc[V, U any](r RangeBounds[V], item U, cmp func(endpoint V, item U) int) bool {
	ltVU := func(v V, u U) bool { return cmp(v, u) < 0 }
	leVU := func(v V, u U) bool { return cmp(v, u) <= 0 }
	ltUV := func(u U, v V) bool { return cmp(v, u) > 0 }
	leUV := func(u U, v V) bool { return cmp(v, u) >= 0 }
	return startAdmits(r.StartBound(), item, ltVU, leVU) &&
		endAdmits(r.EndBound(), item, ltUV, leUV)
}

// startAdmits reports whether the start side s allows item. lt and le relate
// an endpoint to the item; for a partial order both may be false for the
// same pair, which excludes the item.
func startAdmits[V, U any](s Bound[V], item U, lt, le func(V, U) bool) bool {
	switch s.kind {
	case BoundIncluded:
		return le(s.value, item)
	case BoundExcluded:
		return lt(s.value, item)
	default:
		return true
	}
}

// endAdmits reports whether the end side e allows item. lt and le relate the
// item to an endpoint.
func endAdmits[V, U any](e Bound[V], item U, lt, le func(U, V) bool) bool {
	switch e.kind {
	case BoundIncluded:
		return le(item, e.value)
	case BoundExcluded:
		return lt(item, e.value)
	default:
		return true
	}
}
