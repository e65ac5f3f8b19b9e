package daily

import (
	"fmt"
	"iter"
	"time"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/endpoint"
	"github.com/goto/chronoset/internal/lib/interval"
)

// Window binds a daily interval to the location its wall clock is read in.
type Window struct {
	Interval
	Location *time.Location
}

func NewWindow(in Interval, loc *time.Location) (Window, error) {
	if loc == nil {
		return Window{}, errors.InvalidArgument(EntityDaily, "location is nil")
	}
	return Window{Interval: in, Location: loc}, nil
}

func (w Window) Overlaps(o Window) (bool, error) {
	if err := w.sameLocation(o); err != nil {
		return false, err
	}
	return w.Interval.Overlaps(o.Interval), nil
}

func (w Window) GetOverlapsWith(o Window) ([]Window, error) {
	if err := w.sameLocation(o); err != nil {
		return nil, err
	}

	var windows []Window
	for _, in := range w.Interval.GetOverlapsWith(o.Interval) {
		windows = append(windows, Window{Interval: in, Location: w.Location})
	}
	return windows, nil
}

func (w Window) Materialize(rng interval.Interval[time.Time]) (iter.Seq[interval.Interval[time.Time]], error) {
	return w.Interval.Materialize(rng, w.Location, endpoint.Lenient)
}

func (w Window) String() string {
	return fmt.Sprintf("%s %s", w.Interval, w.Location)
}

func (w Window) sameLocation(o Window) error {
	if w.Location == nil || o.Location == nil {
		return errors.InvalidArgument(EntityDaily, "window location is nil")
	}
	if w.Location.String() != o.Location.String() {
		msg := fmt.Sprintf("windows are read in different locations: %s and %s", w.Location, o.Location)
		return errors.FailedPrecondition(EntityDaily, msg)
	}
	return nil
}
