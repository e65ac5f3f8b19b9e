package window

import (
	"time"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/cron"
	"github.com/goto/chronoset/internal/lib/interval"
)

// IncrementalWindow spans from the latest tick at or before the reference time to the tick after it,
// so consecutive runs cover the timeline without gaps.
type IncrementalWindow struct {
	schedule *cron.ScheduleSpec
}

func FromSchedule(expr string) (IncrementalWindow, error) {
	schedule, err := cron.ParseCronSchedule(expr)
	if err != nil {
		return IncrementalWindow{}, errors.AddErrContext(err, EntityWindow, "invalid schedule for incremental window")
	}
	return IncrementalWindow{schedule: schedule}, nil
}

func (w IncrementalWindow) GetInterval(ref time.Time) (interval.Interval[time.Time], error) {
	// Prev is strictly before ref, step forward once when ref is itself a tick
	from := w.schedule.Prev(ref)
	if tick := w.schedule.Next(from); tick.Equal(ref) || tick.Before(ref) {
		from = tick
	}
	return interval.NewInterval(from, w.schedule.Next(from)), nil
}
