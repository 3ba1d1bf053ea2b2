package keyrange

import (
	"bytes"
	"testing"

	"github.com/theli-ua/rangebounds"
)

func TestRange_Overlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Range
		b    Range
		want bool
	}{
		{
			name: "unbounded query overlaps",
			a:    Range{Min: []byte("a"), Max: []byte("z")},
			b:    Range{},
			want: true,
		},
		{
			name: "only upper bound overlaps",
			a:    Range{Min: []byte("a"), Max: []byte("m")},
			b:    Range{Max: []byte("b")},
			want: true,
		},
		{
			name: "only upper bound does not overlap",
			a:    Range{Min: []byte("c"), Max: []byte("m")},
			b:    Range{Max: []byte("b")},
			want: false,
		},
		{
			name: "only lower bound overlaps",
			a:    Range{Min: []byte("d"), Max: []byte("m")},
			b:    Range{Min: []byte("m")},
			want: true,
		},
		{
			name: "only lower bound does not overlap",
			a:    Range{Min: []byte("a"), Max: []byte("l")},
			b:    Range{Min: []byte("m")},
			want: false,
		},
		{
			name: "bounded overlap",
			a:    Range{Min: []byte("d"), Max: []byte("k")},
			b:    Range{Min: []byte("h"), Max: []byte("z")},
			want: true,
		},
		{
			name: "bounded disjoint",
			a:    Range{Min: []byte("a"), Max: []byte("f")},
			b:    Range{Min: []byte("g"), Max: []byte("z")},
			want: false,
		},
		{
			name: "touching closed bounds overlap",
			a:    Range{Min: []byte("a"), Max: []byte("f")},
			b:    Range{Min: []byte("f"), Max: []byte("z")},
			want: true,
		},
		{
			name: "both unbounded",
			a:    Range{},
			b:    Range{},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("Overlaps() = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("Overlaps() flipped = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	t.Parallel()

	r := Range{Min: []byte("b"), Max: []byte("f")}

	tests := []struct {
		key  string
		want bool
	}{
		{"b", true},
		{"c", true},
		{"f", true},
		{"a", false},
		{"g", false},
	}
	for _, tc := range tests {
		if got := r.Contains([]byte(tc.key)); got != tc.want {
			t.Fatalf("Contains(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}

	whole := Range{}
	if !whole.Contains([]byte("anything")) {
		t.Fatal("zero Range must contain every key")
	}
}

func TestRange_BoundMapping(t *testing.T) {
	t.Parallel()

	r := Range{Min: []byte("b"), Max: []byte("f")}
	if got := r.StartBound().Kind(); got != rangebounds.BoundIncluded {
		t.Fatalf("StartBound().Kind() = %v, want included", got)
	}
	if got := r.EndBound().Kind(); got != rangebounds.BoundIncluded {
		t.Fatalf("EndBound().Kind() = %v, want included", got)
	}

	whole := Range{}
	if got := whole.StartBound().Kind(); got != rangebounds.BoundUnbounded {
		t.Fatalf("StartBound().Kind() = %v, want unbounded", got)
	}
	if got := whole.EndBound().Kind(); got != rangebounds.BoundUnbounded {
		t.Fatalf("EndBound().Kind() = %v, want unbounded", got)
	}
}

func TestNext_Simple(t *testing.T) {
	in := []byte("abc")
	got := Next(in)
	want := []byte("abd")

	if !bytes.Equal(got, want) {
		t.Fatalf("Next(abc): got %q want %q", got, want)
	}
}

func TestNext_AllFF(t *testing.T) {
	in := []byte{0xFF, 0xFF}
	got := Next(in)
	want := []byte{0xFF, 0xFF, 0x00}

	if !bytes.Equal(got, want) {
		t.Fatalf("Next(all-ff): got %v want %v", got, want)
	}

	if !bytes.Equal(in, []byte{0xFF, 0xFF}) {
		t.Fatalf("Next should not modify input, got %v", in)
	}
}

func TestNext_TrailingFF(t *testing.T) {
	in := []byte{'a', 0xFF}
	got := Next(in)
	want := []byte{'b', 0x00}

	if !bytes.Equal(got, want) {
		t.Fatalf("Next: got %v want %v", got, want)
	}
}

// Converting an inclusive Max into an exclusive bound with Next must keep
// every key the closed range contained and nothing above it.
func TestNext_ExclusiveBoundConversion(t *testing.T) {
	t.Parallel()

	closed := Range{Min: []byte("b"), Max: []byte("f")}
	halfOpen := rangebounds.Bounds[[]byte]{
		Start: rangebounds.Included([]byte("b")),
		End:   rangebounds.Excluded(Next([]byte("f"))),
	}

	for _, key := range []string{"a", "b", "c", "f", "g"} {
		want := closed.Contains([]byte(key))
		got := rangebounds.ContainsFunc[[]byte, []byte](halfOpen, []byte(key), bytes.Compare)
		if got != want {
			t.Fatalf("half-open Contains(%q) = %v, closed = %v", key, got, want)
		}
	}
}
