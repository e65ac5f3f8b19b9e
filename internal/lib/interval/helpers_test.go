package interval_test

import (
	"iter"
	"slices"
	"time"

	"github.com/goto/chronoset/internal/lib/interval"
)

var reference = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return reference.Add(time.Duration(hour) * time.Hour)
}

func iv(start, end int) interval.Interval[time.Time] {
	return interval.NewInterval(at(start), at(end))
}

func seq(pairs ...[2]int) iter.Seq[interval.Interval[time.Time]] {
	return slices.Values(list(pairs...))
}

func list(pairs ...[2]int) []interval.Interval[time.Time] {
	ivs := make([]interval.Interval[time.Time], 0, len(pairs))
	for _, p := range pairs {
		ivs = append(ivs, iv(p[0], p[1]))
	}
	return ivs
}

// coveredAt reports whether any of ivs covers t under half-open semantics.
func coveredAt(ivs []interval.Interval[time.Time], t time.Time) bool {
	for _, in := range ivs {
		if in.Contains(t) {
			return true
		}
	}
	return false
}

// samples returns every quarter hour within [from, to] hours.
func samples(from, to int) []time.Time {
	var ts []time.Time
	for t := at(from); !t.After(at(to)); t = t.Add(15 * time.Minute) {
		ts = append(ts, t)
	}
	return ts
}
