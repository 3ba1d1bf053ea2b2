package rangebounds

// RangeBounds is implemented by anything that can describe both of its sides
// as bounds. Both methods must be pure and answer the same bounds on every
// call for the same range value.
//
// A range is never validated: nothing requires the start to order below the
// end. The predicates in this package are driven purely by the element
// type's comparisons, so an inverted range simply contains nothing under a
// well-behaved order.
type RangeBounds[V any] interface {
	StartBound() Bound[V]
	EndBound() Bound[V]
}

// Full is the range with no limit on either side. It contains every value
// of the element type that compares against itself.
type Full[V any] struct{}

func (Full[V]) StartBound() Bound[V] { return Unbounded[V]() }
func (Full[V]) EndBound() Bound[V]   { return Unbounded[V]() }

// From contains every value greater than or equal to Start.
type From[V any] struct {
	Start V
}

func (r From[V]) StartBound() Bound[V] { return Included(r.Start) }
func (From[V]) EndBound() Bound[V]     { return Unbounded[V]() }

// To contains every value strictly less than End.
type To[V any] struct {
	End V
}

func (To[V]) StartBound() Bound[V] { return Unbounded[V]() }
func (r To[V]) EndBound() Bound[V] { return Excluded(r.End) }

// Range is the half-open interval [Start, End): Start is contained, End is
// not.
type Range[V any] struct {
	Start V
	End   V
}

func (r Range[V]) StartBound() Bound[V] { return Included(r.Start) }
func (r Range[V]) EndBound() Bound[V]   { return Excluded(r.End) }

// Inclusive is the closed interval [Start, End]: both endpoints are
// contained.
type Inclusive[V any] struct {
	Start V
	End   V
}

func (r Inclusive[V]) StartBound() Bound[V] { return Included(r.Start) }
func (r Inclusive[V]) EndBound() Bound[V]   { return Included(r.End) }

// ToInclusive contains every value less than or equal to End.
type ToInclusive[V any] struct {
	End V
}

func (ToInclusive[V]) StartBound() Bound[V] { return Unbounded[V]() }
func (r ToInclusive[V]) EndBound() Bound[V] { return Included(r.End) }

// Bounds is a range assembled from two explicit bounds, for the shapes the
// named types above do not cover.
type Bounds[V any] struct {
	Start Bound[V]
	End   Bound[V]
}

func (r Bounds[V]) StartBound() Bound[V] { return r.Start }
func (r Bounds[V]) EndBound() Bound[V]   { return r.End }
