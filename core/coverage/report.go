package coverage

import (
	"time"

	"github.com/google/uuid"

	"github.com/goto/chronoset/internal/lib/endpoint"
	"github.com/goto/chronoset/internal/lib/interval"
)

// Run is one scheduled execution of a job and the data window it processes.
type Run struct {
	ID          uuid.UUID
	ScheduledAt time.Time
	Window      interval.Interval[time.Time]
}

// Report describes how the windows of a job's runs cover a period.
type Report struct {
	Job    JobName
	Period interval.Interval[time.Time]
	Runs   []Run

	Covered   []interval.Interval[time.Time]
	Gaps      []interval.Interval[time.Time]
	Redundant []interval.Interval[time.Time]
}

func (r Report) CoveredDuration() time.Duration {
	return total(r.Covered)
}

func (r Report) GapDuration() time.Duration {
	return total(r.Gaps)
}

// IsComplete reports whether every moment of the period is processed by some run.
func (r Report) IsComplete() bool {
	return len(r.Gaps) == 0
}

func total(ivs []interval.Interval[time.Time]) time.Duration {
	var d time.Duration
	for _, in := range ivs {
		d += in.Duration(endpoint.Instant{})
	}
	return d
}
