package interval

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/endpoint"
)

// GetOverlapsWith returns the stretches covered by both a and b, in order.
func GetOverlapsWith[E endpoint.Ordered[E]](a, b iter.Seq[Interval[E]]) (iter.Seq[Interval[E]], error) {
	if a == nil || b == nil {
		return nil, errors.InvalidArgument(EntityInterval, "intervals to overlap are nil")
	}

	xs, err := normalize(a)
	if err != nil {
		return nil, err
	}
	ys, err := normalize(b)
	if err != nil {
		return nil, err
	}
	return overlaps(xs, ys), nil
}

// overlaps sweeps two normalized slices.
func overlaps[E endpoint.Ordered[E]](xs, ys []Interval[E]) iter.Seq[Interval[E]] {
	return func(yield func(Interval[E]) bool) {
		i, j := 0, 0
		for i < len(xs) && j < len(ys) {
			x, y := xs[i], ys[j]

			start := endpoint.Max(x.start, y.start)
			end := endpoint.Min(x.end, y.end)
			if start.Before(end) {
				if !yield(NewInterval(start, end)) {
					return
				}
			}

			if !y.end.Before(x.end) {
				i++
			}
			if !x.end.Before(y.end) {
				j++
			}
		}
	}
}

// GetOverlapsBetweenSets intersects all sets, left to right.
func GetOverlapsBetweenSets[E endpoint.Ordered[E]](sets []iter.Seq[Interval[E]]) (iter.Seq[Interval[E]], error) {
	if err := validateSets(sets); err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return emptySeq[E](), nil
	}

	normalized := make([][]Interval[E], 0, len(sets))
	for _, s := range sets {
		n, err := normalize(s)
		if err != nil {
			return nil, err
		}
		if len(n) == 0 {
			return emptySeq[E](), nil
		}
		normalized = append(normalized, n)
	}

	acc := normalized[0]
	if len(normalized) == 1 {
		return slices.Values(acc), nil
	}
	for _, next := range normalized[1 : len(normalized)-1] {
		acc = slices.Collect(overlaps(acc, next))
		if len(acc) == 0 {
			return emptySeq[E](), nil
		}
	}
	return overlaps(acc, normalized[len(normalized)-1]), nil
}

// GetOverlapsBetweenSetsWithMinimum returns the maximal stretches covered by at least
// minimumNumberOverlapping of the sets. Each candidate stretch between consecutive
// boundaries is checked against every set.
func GetOverlapsBetweenSetsWithMinimum[E endpoint.Ordered[E]](sets []iter.Seq[Interval[E]], minimumNumberOverlapping int) (iter.Seq[Interval[E]], error) {
	if minimumNumberOverlapping <= 0 {
		msg := fmt.Sprintf("minimum number of overlapping sets must be positive, got %d", minimumNumberOverlapping)
		return nil, errors.OutOfRange(EntityInterval, msg)
	}
	if err := validateSets(sets); err != nil {
		return nil, err
	}

	normalized := make([][]Interval[E], 0, len(sets))
	var boundaries []E
	for _, s := range sets {
		n, err := normalize(s)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
		for _, in := range n {
			boundaries = append(boundaries, in.start, in.end)
		}
	}
	if minimumNumberOverlapping > len(sets) {
		return emptySeq[E](), nil
	}

	slices.SortFunc(boundaries, endpoint.Compare[E])
	boundaries = slices.CompactFunc(boundaries, endpoint.Equal[E])

	return func(yield func(Interval[E]) bool) {
		var running *Interval[E]
		for k := 1; k < len(boundaries); k++ {
			candidate := NewInterval(boundaries[k-1], boundaries[k])
			if countCovering(normalized, candidate) < minimumNumberOverlapping {
				if running != nil {
					if !yield(*running) {
						return
					}
					running = nil
				}
				continue
			}

			if running == nil {
				running = &candidate
				continue
			}
			running.end = candidate.end
		}
		if running != nil {
			yield(*running)
		}
	}, nil
}

func countCovering[E endpoint.Ordered[E]](sets [][]Interval[E], candidate Interval[E]) int {
	count := 0
	for _, set := range sets {
		k := sort.Search(len(set), func(i int) bool {
			return candidate.start.Before(set[i].end)
		})
		if k < len(set) && !candidate.start.Before(set[k].start) && !set[k].end.Before(candidate.end) {
			count++
		}
	}
	return count
}

func validateSets[E endpoint.Ordered[E]](sets []iter.Seq[Interval[E]]) error {
	if sets == nil {
		return errors.InvalidArgument(EntityInterval, "sets to overlap are nil")
	}
	for i, s := range sets {
		if s == nil {
			return errors.InvalidArgument(EntityInterval, fmt.Sprintf("set at index %d is nil", i))
		}
	}
	return nil
}

func emptySeq[E endpoint.Ordered[E]]() iter.Seq[Interval[E]] {
	return func(func(Interval[E]) bool) {}
}
