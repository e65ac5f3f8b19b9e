package service

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/goto/salt/log"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/daily"
	"github.com/goto/chronoset/internal/lib/endpoint"
	"github.com/goto/chronoset/internal/lib/interval"
)

const EntityAvailability = "availability"

type SetRepository interface {
	GetSet(name string) ([]interval.Interval[time.Time], error)
	GetWindow(name string) (daily.Interval, error)
}

// AvailabilityService answers questions about named interval sets, such as when people are all free.
type AvailabilityService struct {
	l    log.Logger
	sets SetRepository
}

func NewAvailabilityService(l log.Logger, sets SetRepository) *AvailabilityService {
	return &AvailabilityService{
		l:    l,
		sets: sets,
	}
}

// Common returns the stretches covered by at least minimum of the named sets.
// A minimum of zero requires every set.
func (s AvailabilityService) Common(names []string, minimum int) ([]interval.Interval[time.Time], error) {
	if len(names) == 0 {
		return nil, errors.InvalidArgument(EntityAvailability, "at least one set name is required")
	}

	sets := make([]iter.Seq[interval.Interval[time.Time]], 0, len(names))
	for _, name := range names {
		ivs, err := s.sets.GetSet(name)
		if err != nil {
			return nil, err
		}
		sets = append(sets, slices.Values(ivs))
	}

	var common iter.Seq[interval.Interval[time.Time]]
	var err error
	if minimum == 0 {
		common, err = interval.GetOverlapsBetweenSets(sets)
	} else {
		common, err = interval.GetOverlapsBetweenSetsWithMinimum(sets, minimum)
	}
	if err != nil {
		return nil, err
	}

	result := slices.Collect(common)
	s.l.Debug("computed common stretches", "sets", len(names), "minimum", minimum, "stretches", len(result))
	return result, nil
}

// Free returns what remains of base once busy is removed.
func (s AvailabilityService) Free(base, busy string) ([]interval.Interval[time.Time], error) {
	baseSet, err := s.sets.GetSet(base)
	if err != nil {
		return nil, err
	}
	busySet, err := s.sets.GetSet(busy)
	if err != nil {
		return nil, err
	}

	free, err := interval.Subtract(slices.Values(baseSet), slices.Values(busySet))
	if err != nil {
		return nil, err
	}
	return slices.Collect(free), nil
}

// Merge combines the intervals of a set. With meeting set, intervals that only touch stay apart.
func (s AvailabilityService) Merge(name string, meeting bool) ([]interval.Interval[time.Time], error) {
	set, err := s.sets.GetSet(name)
	if err != nil {
		return nil, err
	}

	combine := interval.CombineIntervals[time.Time]
	if meeting {
		combine = interval.CombineOverlappingIntervals[time.Time]
	}
	merged, err := combine(slices.Values(set))
	if err != nil {
		return nil, err
	}

	result := slices.Collect(merged)
	s.l.Debug("merged set", "set", name, "before", len(set), "after", len(result))
	return result, nil
}

// ElapsedAt returns when the intervals of a set have accumulated d. The boolean is false when they never do.
func (s AvailabilityService) ElapsedAt(name string, d time.Duration) (time.Time, bool, error) {
	set, err := s.sets.GetSet(name)
	if err != nil {
		return time.Time{}, false, err
	}
	return interval.DetermineWhenDurationHasElapsed(slices.Values(set), d, endpoint.Instant{})
}

// DailyOccurrences materializes a named daily window in loc within rng.
func (s AvailabilityService) DailyOccurrences(name string, loc *time.Location, rng interval.Interval[time.Time]) ([]interval.Interval[time.Time], error) {
	in, err := s.sets.GetWindow(name)
	if err != nil {
		return nil, err
	}
	w, err := daily.NewWindow(in, loc)
	if err != nil {
		return nil, err
	}

	occurrences, err := w.Materialize(rng)
	if err != nil {
		return nil, err
	}
	result := slices.Collect(occurrences)
	s.l.Debug("materialized daily window", "window", name, "location", loc.String(), "occurrences", len(result))
	return result, nil
}

// DailyOverlap returns the stretches of the day shared by two named daily windows.
func (s AvailabilityService) DailyOverlap(first, second string) ([]daily.Interval, error) {
	a, err := s.sets.GetWindow(first)
	if err != nil {
		return nil, err
	}
	b, err := s.sets.GetWindow(second)
	if err != nil {
		return nil, err
	}

	if !a.Overlaps(b) {
		s.l.Info(fmt.Sprintf("windows %s and %s do not overlap", first, second))
		return nil, nil
	}
	return a.GetOverlapsWith(b), nil
}
