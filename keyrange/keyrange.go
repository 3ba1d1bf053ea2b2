// Package keyrange applies the rangebounds predicates to lexicographically
// ordered byte keys, the kind used as storage-engine scan bounds.
package keyrange

import (
	"bytes"

	"github.com/theli-ua/rangebounds"
)

// Range is a key range closed on each bounded side. A nil or empty slice
// means the side is unbounded, so the zero Range spans the whole keyspace.
type Range struct {
	Min []byte
	Max []byte
}

// StartBound maps Min onto a bound: unbounded when empty, otherwise the key
// itself is part of the range.
func (r Range) StartBound() rangebounds.Bound[[]byte] {
	if len(r.Min) == 0 {
		return rangebounds.Unbounded[[]byte]()
	}
	return rangebounds.Included(r.Min)
}

// EndBound maps Max onto a bound the same way.
func (r Range) EndBound() rangebounds.Bound[[]byte] {
	if len(r.Max) == 0 {
		return rangebounds.Unbounded[[]byte]()
	}
	return rangebounds.Included(r.Max)
}

// Contains reports whether key falls within the range.
func (r Range) Contains(key []byte) bool {
	return rangebounds.ContainsFunc[[]byte, []byte](r, key, bytes.Compare)
}

// Overlaps reports whether the two ranges share at least one key.
func (r Range) Overlaps(other Range) bool {
	return rangebounds.OverlapsFunc[[]byte, []byte](r, other, bytes.Compare)
}

// Next returns the next key in lexicographic order after the given key.
// Used to convert an inclusive upper bound into an exclusive one. The input
// is not modified.
func Next(key []byte) []byte {
	if len(key) == 0 {
		return nil
	}

	result := make([]byte, len(key))
	copy(result, key)

	for i := len(result) - 1; i >= 0; i-- {
		if result[i] < 0xFF {
			result[i]++
			return result
		}
		result[i] = 0
	}

	// every byte was 0xFF; the next key is the original with a 0x00 appended
	next := make([]byte, len(key)+1)
	copy(next, key)
	return next
}
