package endpoint

import (
	"time"

	"cloud.google.com/go/civil"
)

// Resolver maps a local date-time to an instant in loc.
type Resolver func(dt civil.DateTime, loc *time.Location) time.Time

// Lenient resolves an ambiguous local time to its earlier alternative and
// shifts a skipped local time forward by the length of the gap.
// It assumes at most one offset transition within a day either side of dt.
func Lenient(dt civil.DateTime, loc *time.Location) time.Time {
	wall := dt.In(time.UTC)
	offEarly := offsetAt(wall.Add(-day), loc)
	offLate := offsetAt(wall.Add(day), loc)

	early := wall.Add(-offEarly)
	late := wall.Add(-offLate)
	earlyValid := offsetAt(early, loc) == offEarly
	lateValid := offsetAt(late, loc) == offLate

	switch {
	case earlyValid && lateValid:
		return Min(early, late).In(loc)
	case earlyValid:
		return early.In(loc)
	case lateValid:
		return late.In(loc)
	case offEarly != offLate:
		return early.In(loc)
	default:
		return dt.In(loc)
	}
}

func offsetAt(t time.Time, loc *time.Location) time.Duration {
	_, offset := t.In(loc).Zone()
	return time.Duration(offset) * time.Second
}
