package interval

import (
	"iter"
	"slices"

	"github.com/goto/chronoset/internal/lib/endpoint"
)

type Data[E endpoint.Ordered[E], V any] struct {
	In   Interval[E]
	Data V
}

// Range is a list of intervals each carrying a value.
type Range[E endpoint.Ordered[E], V any] []Data[E, V]

func (r Range[E, V]) Values() []V {
	var vs []V
	for _, v := range r {
		vs = append(vs, v.Data)
	}
	return vs
}

func (r Range[E, V]) Intervals() iter.Seq[Interval[E]] {
	return func(yield func(Interval[E]) bool) {
		for _, d := range r {
			if !yield(d.In) {
				return
			}
		}
	}
}

// Covering returns the entries whose interval contains e.
func (r Range[E, V]) Covering(e E) Range[E, V] {
	r2 := Range[E, V]{}
	for _, d := range r {
		if d.In.Contains(e) {
			r2 = append(r2, d)
		}
	}
	return r2
}

func (r Range[E, V]) Sorted() Range[E, V] {
	r2 := slices.Clone(r)
	slices.SortStableFunc(r2, func(a, b Data[E, V]) int {
		return compareIntervals(a.In, b.In)
	})
	return r2
}

func compareIntervals[E endpoint.Ordered[E]](a, b Interval[E]) int {
	if c := endpoint.Compare(a.start, b.start); c != 0 {
		return c
	}
	return endpoint.Compare(a.end, b.end)
}
