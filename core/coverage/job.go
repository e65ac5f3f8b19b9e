package coverage

import (
	"strings"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/cron"
	"github.com/goto/chronoset/internal/lib/window"
)

const EntityJob = "coverage_job"

type JobName string

func JobNameFrom(name string) (JobName, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return "", errors.InvalidArgument(EntityJob, "job name is empty")
	}
	return JobName(cleaned), nil
}

func (n JobName) String() string {
	return string(n)
}

// Job is a scheduled unit of work whose runs each process one data window.
type Job struct {
	name     JobName
	schedule *cron.ScheduleSpec
	window   window.Config
}

func (j *Job) Name() JobName {
	return j.name
}

func (j *Job) Schedule() *cron.ScheduleSpec {
	return j.schedule
}

func (j *Job) WindowConfig() window.Config {
	return j.window
}

func NewJob(name, schedule string, w window.Config) (*Job, error) {
	jobName, err := JobNameFrom(name)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(schedule) == "" {
		return nil, errors.InvalidArgument(EntityJob, "schedule is empty for job "+jobName.String())
	}
	spec, err := cron.ParseCronSchedule(schedule)
	if err != nil {
		return nil, errors.AddErrContext(err, EntityJob, "invalid schedule for job "+jobName.String())
	}

	if w.Type() == "" {
		return nil, errors.InvalidArgument(EntityJob, "window config is missing for job "+jobName.String())
	}

	return &Job{
		name:     jobName,
		schedule: spec,
		window:   w,
	}, nil
}
