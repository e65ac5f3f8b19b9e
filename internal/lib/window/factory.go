package window

import (
	"time"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/interval"
)

type Window interface {
	GetInterval(referenceTime time.Time) (interval.Interval[time.Time], error)
}

func From(config Config, schedule string) (Window, error) {
	switch config.Type() {
	case Incremental:
		return FromSchedule(schedule)
	case Custom:
		return FromCustomConfig(config.simple)
	default:
		return nil, errors.InvalidArgument(EntityWindow, "unknown window type "+string(config.Type()))
	}
}
