package rangebounds

import "golang.org/x/exp/constraints"

// Overlaps reports whether a and b share at least one point, deciding from
// the four bound descriptors alone.
//
// The result is symmetric in its arguments by construction: a and b overlap
// exactly when each range's start constraint can be satisfied together with
// the other range's end constraint. Like Contains, the decision is purely
// comparison-driven; inverted or otherwise empty ranges are not detected, so
// a fully unbounded range reports an overlap even against a range that
// contains nothing.
func Overlaps[V constraints.Ordered](a, b RangeBounds[V]) bool {
	return startReachesEnd(a.StartBound(), b.EndBound(), ordLT[V], ordLE[V]) &&
		startReachesEnd(b.StartBound(), a.EndBound(), ordLT[V], ordLE[V])
}

// OverlapsFunc is Overlaps for ranges whose element types lack ordering
// operators or differ from each other. cmp compares an endpoint of a
// against an endpoint of b, negative when a's endpoint orders below b's.
// The comparator must be total over the values it is handed.
func OverlapsFunc[V, U any](a RangeBounds[V], b RangeBounds[U], cmp func(aEndpoint V, bEndpoint U) int) bool {
	ltVU := func(v V, u U) bool { return cmp(v, u) < 0 }
	leVU := func(v V, u U) bool { return cmp(v, u) <= 0 }
	ltUV := func(u U, v V) bool { return cmp(v, u) > 0 }
	leUV := func(u U, v V) bool { return cmp(v, u) >= 0 }
	return startReachesEnd(a.StartBound(), b.EndBound(), ltVU, leVU) &&
		startReachesEnd(b.StartBound(), a.EndBound(), ltUV, leUV)
}

// startReachesEnd reports whether at least one point satisfies both the
// start constraint s and the end constraint e. With the two crossed side
// pairs of a pair of ranges this resolves every combination of bound kinds:
//
//   - an unbounded side constrains nothing;
//   - an included start is a concrete point that is either admitted by the
//     end side or not, so the decision is the end half of the membership
//     check;
//   - an excluded start against a bounded end has no point to test (the
//     endpoint itself is outside the range), and a point strictly between
//     the two endpoints exists exactly when the start endpoint orders
//     strictly below the end endpoint.
func startReachesEnd[V, U any](s Bound[V], e Bound[U], lt, le func(V, U) bool) bool {
	switch s.kind {
	case BoundUnbounded:
		return true
	case BoundIncluded:
		return endAdmits(e, s.value, lt, le)
	default:
		if e.kind == BoundUnbounded {
			return true
		}
		return lt(s.value, e.value)
	}
}
