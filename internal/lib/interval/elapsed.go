package interval

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
	"time"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/endpoint"
)

// DetermineWhenDurationHasElapsed returns the earliest endpoint at which the duration
// covered by intervals, counting overlapping coverage once per interval, reaches d.
// The boolean is false when the intervals never accumulate d.
func DetermineWhenDurationHasElapsed[E endpoint.Ordered[E]](intervals iter.Seq[Interval[E]], d time.Duration, m endpoint.Metric[E]) (E, bool, error) {
	var zero E
	if intervals == nil {
		return zero, false, errors.InvalidArgument(EntityInterval, "intervals to accumulate are nil")
	}
	if m == nil {
		return zero, false, errors.InvalidArgument(EntityInterval, "duration metric is nil")
	}
	if d < 0 {
		return zero, false, errors.OutOfRange(EntityInterval, fmt.Sprintf("duration must not be negative, got %s", d))
	}

	items := slices.SortedFunc(intervals, compareIntervals[E])
	if len(items) == 0 {
		return zero, false, nil
	}
	if d == 0 {
		return items[0].start, true, nil
	}

	events := make([]E, 0, 2*len(items))
	for _, in := range items {
		events = append(events, in.start, in.end)
	}
	slices.SortFunc(events, endpoint.Compare[E])
	events = slices.CompactFunc(events, endpoint.Equal[E])

	prev, prevCovered := events[0], time.Duration(0)
	for _, curr := range events[1:] {
		covered := coveredUntil(items, curr, m)
		if covered >= d {
			return interpolate(prev, curr, prevCovered, covered, d, m), true, nil
		}
		prev, prevCovered = curr, covered
	}
	return zero, false, nil
}

// coveredUntil sums every interval clipped to at. items are sorted by start.
func coveredUntil[E endpoint.Ordered[E]](items []Interval[E], at E, m endpoint.Metric[E]) time.Duration {
	var total time.Duration
	for _, in := range items {
		if !in.start.Before(at) {
			break
		}
		total += m.Sub(endpoint.Min(in.end, at), in.start)
	}
	return total
}

// interpolate computes prev + (target-prevCovered)/(covered-prevCovered) * (curr-prev)
// in integer nanoseconds.
func interpolate[E endpoint.Ordered[E]](prev, curr E, prevCovered, covered, target time.Duration, m endpoint.Metric[E]) E {
	if covered == target {
		return curr
	}

	offset := big.NewInt(int64(target - prevCovered))
	offset.Mul(offset, big.NewInt(int64(m.Sub(curr, prev))))
	offset.Quo(offset, big.NewInt(int64(covered-prevCovered)))
	return m.Add(prev, time.Duration(offset.Int64()))
}
