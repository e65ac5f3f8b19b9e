package interval

import (
	"iter"
	"slices"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/endpoint"
)

// Combiner merges intervals of any type I with endpoints of type E.
// Compare is optional and defaults to ordering by start, then end.
type Combiner[I any, E endpoint.Ordered[E]] struct {
	Start   func(I) E
	End     func(I) E
	New     func(start, end E) I
	Compare func(a, b I) int
}

// CombineIntervals merges overlapping and meeting intervals.
func (c Combiner[I, E]) CombineIntervals(items iter.Seq[I]) (iter.Seq[I], error) {
	return c.combine(items, func(nextStart, runningEnd E) bool {
		return !runningEnd.Before(nextStart)
	})
}

// CombineOverlappingIntervals merges overlapping intervals only, meeting intervals stay apart.
func (c Combiner[I, E]) CombineOverlappingIntervals(items iter.Seq[I]) (iter.Seq[I], error) {
	return c.combine(items, func(nextStart, runningEnd E) bool {
		return nextStart.Before(runningEnd)
	})
}

func (c Combiner[I, E]) combine(items iter.Seq[I], mergeable func(nextStart, runningEnd E) bool) (iter.Seq[I], error) {
	if items == nil {
		return nil, errors.InvalidArgument(EntityInterval, "intervals to combine are nil")
	}
	if c.Start == nil || c.End == nil || c.New == nil {
		return nil, errors.InvalidArgument(EntityInterval, "combiner requires start, end and constructor functions")
	}

	sorted := slices.SortedFunc(items, c.compare)
	return func(yield func(I) bool) {
		if len(sorted) == 0 {
			return
		}

		start, end := c.Start(sorted[0]), c.End(sorted[0])
		for _, next := range sorted[1:] {
			if mergeable(c.Start(next), end) {
				end = endpoint.Max(end, c.End(next))
				continue
			}

			if !yield(c.New(start, end)) {
				return
			}
			start, end = c.Start(next), c.End(next)
		}
		yield(c.New(start, end))
	}, nil
}

func (c Combiner[I, E]) compare(a, b I) int {
	if c.Compare != nil {
		return c.Compare(a, b)
	}
	if r := endpoint.Compare(c.Start(a), c.Start(b)); r != 0 {
		return r
	}
	return endpoint.Compare(c.End(a), c.End(b))
}

func combinerOf[E endpoint.Ordered[E]]() Combiner[Interval[E], E] {
	return Combiner[Interval[E], E]{
		Start:   Interval[E].Start,
		End:     Interval[E].End,
		New:     NewInterval[E],
		Compare: compareIntervals[E],
	}
}

func CombineIntervals[E endpoint.Ordered[E]](items iter.Seq[Interval[E]]) (iter.Seq[Interval[E]], error) {
	return combinerOf[E]().CombineIntervals(items)
}

func CombineOverlappingIntervals[E endpoint.Ordered[E]](items iter.Seq[Interval[E]]) (iter.Seq[Interval[E]], error) {
	return combinerOf[E]().CombineOverlappingIntervals(items)
}

// normalize collects items into a strictly increasing, non-overlapping slice.
func normalize[E endpoint.Ordered[E]](items iter.Seq[Interval[E]]) ([]Interval[E], error) {
	combined, err := CombineOverlappingIntervals(items)
	if err != nil {
		return nil, err
	}
	return slices.Collect(combined), nil
}
