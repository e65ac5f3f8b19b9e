package cron

import (
	"iter"
	"math/bits"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/interval"
)

const (
	EntitySchedule = "schedule"

	starBit = 1 << 63
	week    = 7 * 24 * time.Hour
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ScheduleSpec wraps a parsed cron expression.
type ScheduleSpec struct {
	expr     string
	Schedule cron.Schedule
}

func ParseCronSchedule(expr string) (*ScheduleSpec, error) {
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, errors.InvalidArgument(EntitySchedule, "unable to parse cron expression "+expr+": "+err.Error())
	}
	return &ScheduleSpec{expr: expr, Schedule: schedule}, nil
}

func (s *ScheduleSpec) String() string {
	return s.expr
}

// Next returns the first tick strictly after t.
func (s *ScheduleSpec) Next(t time.Time) time.Time {
	return s.Schedule.Next(t)
}

// Prev returns the last tick strictly before t.
func (s *ScheduleSpec) Prev(t time.Time) time.Time {
	start := s.earliestStart(t)

	prev := s.Next(start)
	for {
		next := s.Next(prev)
		if !next.Before(t) {
			return prev
		}
		prev = next
	}
}

// earliestStart steps back a week at a time until a tick exists before t.
func (s *ScheduleSpec) earliestStart(t time.Time) time.Time {
	start := t
	for {
		start = start.Add(-week)
		if s.Next(start).Before(t) {
			return start
		}
	}
}

// Between yields every tick within rng, including one falling on its start.
func (s *ScheduleSpec) Between(rng interval.Interval[time.Time]) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for tick := s.Next(rng.Start().Add(-time.Second)); tick.Before(rng.End()); tick = s.Next(tick) {
			if !yield(tick) {
				return
			}
		}
	}
}

// IsSubDaily reports whether the schedule can fire more than once within a day.
func (s *ScheduleSpec) IsSubDaily() bool {
	switch schedule := s.Schedule.(type) {
	case *cron.SpecSchedule:
		minutes := bits.OnesCount64(schedule.Minute &^ starBit)
		hours := bits.OnesCount64(schedule.Hour &^ starBit)
		return minutes*hours > 1
	case cron.ConstantDelaySchedule:
		return schedule.Delay < 24*time.Hour
	default:
		return false
	}
}
