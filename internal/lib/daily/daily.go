package daily

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/endpoint"
	"github.com/goto/chronoset/internal/lib/interval"
)

const (
	EntityDaily = "daily_interval"

	day = 24 * time.Hour
)

type Shape int

const (
	Normal Shape = iota
	Wraparound
	FullDay
)

func (s Shape) String() string {
	switch s {
	case Normal:
		return "normal"
	case Wraparound:
		return "wraparound"
	case FullDay:
		return "full-day"
	default:
		return "unknown"
	}
}

// Interval is a recurring daily stretch of wall clock time. When Start is after End the
// interval crosses midnight, and when they are equal it spans the whole day.
type Interval struct {
	Start civil.Time
	End   civil.Time
}

func New(start, end civil.Time) (Interval, error) {
	if !start.IsValid() {
		return Interval{}, errors.InvalidArgument(EntityDaily, fmt.Sprintf("invalid start time %s", start))
	}
	if !end.IsValid() {
		return Interval{}, errors.InvalidArgument(EntityDaily, fmt.Sprintf("invalid end time %s", end))
	}
	return Interval{Start: start, End: end}, nil
}

// Parse reads an interval written as "20:00-08:00", seconds optional.
func Parse(s string) (Interval, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return Interval{}, errors.InvalidArgument(EntityDaily, fmt.Sprintf("expected start-end, got %q", s))
	}
	start, err := ParseTime(parts[0])
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseTime(parts[1])
	if err != nil {
		return Interval{}, err
	}
	return New(start, end)
}

// ParseTime reads a time of day in the form 15:04 or 15:04:05.
func ParseTime(s string) (civil.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.TimeOf(t), nil
		}
	}
	return civil.Time{}, errors.InvalidArgument(EntityDaily, fmt.Sprintf("unable to parse time of day %q", s))
}

func (i Interval) Shape() Shape {
	switch {
	case i.Start.Before(i.End):
		return Normal
	case i.End.Before(i.Start):
		return Wraparound
	default:
		return FullDay
	}
}

func (i Interval) wraps() bool {
	return i.Shape() != Normal
}

// Duration is the length of one occurrence, 24h for a full day.
func (i Interval) Duration() time.Duration {
	if i.Shape() == FullDay {
		return day
	}
	return forward(i.Start, i.End)
}

func (i Interval) Contains(t civil.Time) bool {
	if i.wraps() {
		return !t.Before(i.Start) || t.Before(i.End)
	}
	return !t.Before(i.Start) && t.Before(i.End)
}

func (i Interval) Overlaps(o Interval) bool {
	switch {
	case !i.wraps() && !o.wraps():
		return i.Start.Before(o.End) && o.Start.Before(i.End)
	case i.wraps() && o.wraps():
		return true
	case i.wraps():
		return overlapsWrapping(o, i)
	default:
		return overlapsWrapping(i, o)
	}
}

// overlapsWrapping checks n against the segments of w before and after midnight.
func overlapsWrapping(n, w Interval) bool {
	return w.Start.Before(n.End) || n.Start.Before(w.End)
}

// GetOverlapsWith returns the stretches covered by both intervals, at most two, ordered by start.
func (i Interval) GetOverlapsWith(o Interval) []Interval {
	if i.Shape() == FullDay {
		return []Interval{o}
	}
	if o.Shape() == FullDay {
		return []Interval{i}
	}

	candidates := []Interval{
		{Start: i.Start, End: o.End},
		{Start: o.Start, End: i.End},
		i,
		o,
	}

	var overlaps []Interval
	for _, c := range candidates {
		if i.covers(c) && o.covers(c) && !slices.Contains(overlaps, c) {
			overlaps = append(overlaps, c)
		}
	}
	slices.SortFunc(overlaps, func(a, b Interval) int {
		return endpoint.Compare(a.Start, b.Start)
	})
	return overlaps
}

func (i Interval) covers(c Interval) bool {
	if !i.Contains(c.Start) {
		return false
	}
	return forward(i.Start, c.Start)+c.Duration() <= i.Duration()
}

// Materialize yields the absolute occurrences of the interval in loc that start within rng.
// Each occurrence is clipped to the end of rng. A nil resolver uses endpoint.Lenient.
func (i Interval) Materialize(rng interval.Interval[time.Time], loc *time.Location, resolve endpoint.Resolver) (iter.Seq[interval.Interval[time.Time]], error) {
	if loc == nil {
		return nil, errors.InvalidArgument(EntityDaily, "location is nil")
	}
	if rng.End().Before(rng.Start()) {
		return nil, errors.InvalidArgument(EntityDaily, fmt.Sprintf("invalid range %s", rng))
	}
	if resolve == nil {
		resolve = endpoint.Lenient
	}

	first := civil.DateOf(rng.Start().In(loc))
	if resolve(civil.DateTime{Date: first, Time: i.Start}, loc).Before(rng.Start()) {
		first = first.AddDays(1)
	}
	endOffset := 0
	if i.wraps() {
		endOffset = 1
	}

	return func(yield func(interval.Interval[time.Time]) bool) {
		for d := first; ; d = d.AddDays(1) {
			start := resolve(civil.DateTime{Date: d, Time: i.Start}, loc)
			if !start.Before(rng.End()) {
				return
			}
			end := resolve(civil.DateTime{Date: d.AddDays(endOffset), Time: i.End}, loc)
			end = endpoint.Max(start, endpoint.Min(end, rng.End()))
			if !yield(interval.NewInterval(start, end)) {
				return
			}
		}
	}, nil
}

// MaterializeLocal yields the wall clock occurrences for the given number of days starting at from.
func (i Interval) MaterializeLocal(from civil.Date, days int) iter.Seq[interval.Interval[civil.DateTime]] {
	endOffset := 0
	if i.wraps() {
		endOffset = 1
	}
	return func(yield func(interval.Interval[civil.DateTime]) bool) {
		for n := 0; n < days; n++ {
			d := from.AddDays(n)
			occurrence := interval.NewInterval(
				civil.DateTime{Date: d, Time: i.Start},
				civil.DateTime{Date: d.AddDays(endOffset), Time: i.End},
			)
			if !yield(occurrence) {
				return
			}
		}
	}
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", clock(i.Start), clock(i.End))
}

func clock(t civil.Time) string {
	if t.Second == 0 && t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// forward is the wall clock distance from a to b going past midnight when needed.
func forward(a, b civil.Time) time.Duration {
	return (endpoint.SinceMidnight(b) - endpoint.SinceMidnight(a) + day) % day
}
