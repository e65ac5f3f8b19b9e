package service

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/goto/salt/log"

	"github.com/goto/chronoset/core/coverage"
	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/interval"
	"github.com/goto/chronoset/internal/lib/window"
)

const redundantMinimum = 2

type CoverageService struct {
	l     log.Logger
	newID func() uuid.UUID
}

func NewCoverageService(l log.Logger) *CoverageService {
	return &CoverageService{
		l:     l,
		newID: uuid.New,
	}
}

// Report lists the runs a job is scheduled for within period and how their windows cover it.
func (s CoverageService) Report(job *coverage.Job, period interval.Interval[time.Time]) (*coverage.Report, error) {
	if job == nil {
		return nil, errors.InvalidArgument(coverage.EntityJob, "job is nil")
	}
	if !period.Start().Before(period.End()) {
		return nil, errors.InvalidArgument(coverage.EntityJob, fmt.Sprintf("invalid period %s", period))
	}

	w, err := window.From(job.WindowConfig(), job.Schedule().String())
	if err != nil {
		return nil, errors.AddErrContext(err, coverage.EntityJob, "unable to create window for job "+job.Name().String())
	}

	var runs []coverage.Run
	for tick := range job.Schedule().Between(period) {
		runWindow, err := w.GetInterval(tick)
		if err != nil {
			return nil, err
		}
		runs = append(runs, coverage.Run{
			ID:          s.newID(),
			ScheduledAt: tick,
			Window:      runWindow,
		})
	}
	s.l.Debug("materialized runs", "job", job.Name().String(), "runs", len(runs), "period", period.String())

	report := &coverage.Report{
		Job:    job.Name(),
		Period: period,
		Runs:   runs,
	}
	if err := s.fillCoverage(report); err != nil {
		return nil, err
	}

	if len(report.Gaps) > 0 {
		s.l.Warn("period is not fully covered", "job", job.Name().String(), "gaps", len(report.Gaps))
	}
	return report, nil
}

func (CoverageService) fillCoverage(report *coverage.Report) error {
	windows := make([]interval.Interval[time.Time], 0, len(report.Runs))
	sets := make([]iter.Seq[interval.Interval[time.Time]], 0, len(report.Runs))
	for _, run := range report.Runs {
		windows = append(windows, run.Window)
		sets = append(sets, slices.Values([]interval.Interval[time.Time]{run.Window}))
	}
	period := []interval.Interval[time.Time]{report.Period}

	merged, err := interval.CombineIntervals(slices.Values(windows))
	if err != nil {
		return err
	}
	covered, err := interval.GetOverlapsWith(merged, slices.Values(period))
	if err != nil {
		return err
	}
	report.Covered = slices.Collect(covered)

	gaps, err := interval.Subtract(slices.Values(period), slices.Values(report.Covered))
	if err != nil {
		return err
	}
	report.Gaps = slices.Collect(gaps)

	redundant, err := interval.GetOverlapsBetweenSetsWithMinimum(sets, redundantMinimum)
	if err != nil {
		return err
	}
	clipped, err := interval.GetOverlapsWith(redundant, slices.Values(period))
	if err != nil {
		return err
	}
	report.Redundant = slices.Collect(clipped)
	return nil
}
