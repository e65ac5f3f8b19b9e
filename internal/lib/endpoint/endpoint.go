package endpoint

import (
	"time"

	"cloud.google.com/go/civil"
)

const day = 24 * time.Hour

// Ordered is satisfied by time.Time, civil.Date, civil.DateTime and civil.Time.
type Ordered[E any] interface {
	Before(E) bool
}

// Metric measures the distance between two endpoints and moves an endpoint by a duration.
type Metric[E any] interface {
	Sub(a, b E) time.Duration
	Add(e E, d time.Duration) E
}

func Compare[E Ordered[E]](a, b E) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}

func Equal[E Ordered[E]](a, b E) bool {
	return Compare(a, b) == 0
}

func Min[E Ordered[E]](a, b E) E {
	if b.Before(a) {
		return b
	}
	return a
}

func Max[E Ordered[E]](a, b E) E {
	if a.Before(b) {
		return b
	}
	return a
}

type Instant struct{}

func (Instant) Sub(a, b time.Time) time.Duration {
	return a.Sub(b)
}

func (Instant) Add(e time.Time, d time.Duration) time.Time {
	return e.Add(d)
}

// Date measures whole days; Add truncates partial days toward zero.
type Date struct{}

func (Date) Sub(a, b civil.Date) time.Duration {
	return time.Duration(a.DaysSince(b)) * day
}

func (Date) Add(e civil.Date, d time.Duration) civil.Date {
	return e.AddDays(int(d / day))
}

// DateTime does naive wall clock arithmetic, ignoring any time zone.
type DateTime struct{}

func (DateTime) Sub(a, b civil.DateTime) time.Duration {
	return a.In(time.UTC).Sub(b.In(time.UTC))
}

func (DateTime) Add(e civil.DateTime, d time.Duration) civil.DateTime {
	return civil.DateTimeOf(e.In(time.UTC).Add(d))
}

// TimeOfDay wraps around midnight when adding.
type TimeOfDay struct{}

func (TimeOfDay) Sub(a, b civil.Time) time.Duration {
	return SinceMidnight(a) - SinceMidnight(b)
}

func (TimeOfDay) Add(e civil.Time, d time.Duration) civil.Time {
	offset := (SinceMidnight(e) + d%day + day) % day
	return FromMidnight(offset)
}

func SinceMidnight(t civil.Time) time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second +
		time.Duration(t.Nanosecond)
}

func FromMidnight(d time.Duration) civil.Time {
	d %= day
	return civil.Time{
		Hour:       int(d / time.Hour),
		Minute:     int(d % time.Hour / time.Minute),
		Second:     int(d % time.Minute / time.Second),
		Nanosecond: int(d % time.Second),
	}
}
