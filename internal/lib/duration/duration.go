package duration

import (
	"strconv"
	"time"
)

// Unit is a calendar unit. Day and longer units follow the wall clock of the time they are applied to.
type Unit string

const (
	None  Unit = "None"
	Hour  Unit = "h"
	Day   Unit = "d"
	Week  Unit = "w"
	Month Unit = "M"
	Year  Unit = "y"
)

const EntityDuration = "duration"

// Duration is a count of calendar units, e.g. 3 months. Unlike time.Duration its length depends
// on where it is applied.
type Duration struct {
	count int
	unit  Unit
}

func NewDuration(count int, unit Unit) Duration {
	return Duration{count: count, unit: unit}
}

func (d Duration) AddFrom(t time.Time) time.Time {
	return d.shift(t, d.count)
}

func (d Duration) SubtractFrom(t time.Time) time.Time {
	return d.shift(t, -d.count)
}

// Span returns the stretch covered by applying the duration forward from t,
// or backward when the count is negative.
func (d Duration) Span(t time.Time) (time.Time, time.Time) {
	end := d.AddFrom(t)
	if end.Before(t) {
		return end, t
	}
	return t, end
}

func (d Duration) shift(t time.Time, n int) time.Time {
	switch d.unit {
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return t.AddDate(0, n, 0)
	case Year:
		return t.AddDate(n, 0, 0)
	default:
		return t
	}
}

func (d Duration) IsZero() bool {
	return d.unit == None || d.unit == "" || d.count == 0
}

func (d Duration) GetUnit() Unit {
	return d.unit
}

func (d Duration) GetCount() int {
	return d.count
}

func (d Duration) String() string {
	if d.unit == None || d.unit == "" {
		return string(None)
	}
	return strconv.Itoa(d.count) + string(d.unit)
}
