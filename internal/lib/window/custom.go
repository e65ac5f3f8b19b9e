package window

import (
	"time"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/duration"
	"github.com/goto/chronoset/internal/lib/interval"
)

var errNegativeSize = errors.OutOfRange(EntityWindow, "size can not be negative")

// CustomWindow is a window of fixed size ending at the reference time rounded down to a calendar
// boundary. The boundary defaults to the unit of size. A positive delay moves the window earlier.
type CustomWindow struct {
	size  duration.Duration
	delay duration.Duration
	align duration.Unit
	loc   *time.Location
}

// NewCustomWindow builds a window aligned to truncateTo, an empty value aligns to the unit of size
// and None keeps the reference time as is.
func NewCustomWindow(size, delay duration.Duration, loc *time.Location, truncateTo string) (CustomWindow, error) {
	if size.GetCount() < 0 {
		return CustomWindow{}, errNegativeSize
	}
	if loc == nil {
		loc = time.UTC
	}

	align := size.GetUnit()
	if truncateTo != "" {
		u, err := duration.UnitFrom(truncateTo)
		if err != nil {
			return CustomWindow{}, err
		}
		align = u
	}

	return CustomWindow{size: size, delay: delay, align: align, loc: loc}, nil
}

func FromCustomConfig(c SimpleConfig) (CustomWindow, error) {
	size, err := duration.From(c.Size)
	if err != nil {
		return CustomWindow{}, err
	}
	delay, err := duration.From(c.Delay)
	if err != nil {
		return CustomWindow{}, err
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return CustomWindow{}, errors.InvalidArgument(EntityWindow, "unknown location "+c.Location)
	}
	return NewCustomWindow(size, delay, loc, c.TruncateTo)
}

func (w CustomWindow) GetInterval(ref time.Time) (interval.Interval[time.Time], error) {
	end := w.GetEnd(ref)
	return interval.NewInterval(w.size.SubtractFrom(end), end), nil
}

// GetEnd returns the exclusive end of the window containing ref.
func (w CustomWindow) GetEnd(ref time.Time) time.Time {
	return w.delay.SubtractFrom(w.floor(ref.In(w.loc)))
}

func (w CustomWindow) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	switch w.align {
	case duration.Hour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, w.loc)
	case duration.Day:
		return time.Date(y, m, d, 0, 0, 0, 0, w.loc)
	case duration.Week:
		// weeks start on monday
		sinceMonday := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-sinceMonday, 0, 0, 0, 0, w.loc)
	case duration.Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, w.loc)
	case duration.Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, w.loc)
	default:
		return t
	}
}
