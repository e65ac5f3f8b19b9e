package interval

import (
	"iter"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/endpoint"
)

// Subtract returns the stretches of base not covered by subtrahend, in order.
func Subtract[E endpoint.Ordered[E]](base, subtrahend iter.Seq[Interval[E]]) (iter.Seq[Interval[E]], error) {
	if base == nil || subtrahend == nil {
		return nil, errors.InvalidArgument(EntityInterval, "intervals to subtract are nil")
	}

	xs, err := normalize(base)
	if err != nil {
		return nil, err
	}
	ys, err := normalize(subtrahend)
	if err != nil {
		return nil, err
	}
	return difference(xs, ys), nil
}

func difference[E endpoint.Ordered[E]](xs, ys []Interval[E]) iter.Seq[Interval[E]] {
	return func(yield func(Interval[E]) bool) {
		if len(xs) == 0 {
			return
		}

		i, j := 0, 0
		fragment := xs[0]
		for {
			if j >= len(ys) {
				if !yield(fragment) {
					return
				}
				for _, x := range xs[i+1:] {
					if !yield(x) {
						return
					}
				}
				return
			}

			y := ys[j]
			advanceBase, advanceSub := false, false
			switch {
			case !y.start.Before(fragment.end):
				if !yield(fragment) {
					return
				}
				advanceBase = true
			case fragment.start.Before(y.end):
				if fragment.start.Before(y.start) {
					if !yield(NewInterval(fragment.start, y.start)) {
						return
					}
				}
				advanceBase = !y.end.Before(fragment.end)
				advanceSub = !fragment.end.Before(y.end)
				fragment.start = endpoint.Max(fragment.start, y.end)
			default:
				advanceSub = true
			}

			if advanceSub {
				j++
			}
			if advanceBase {
				i++
				if i >= len(xs) {
					return
				}
				fragment = xs[i]
			}
		}
	}
}
