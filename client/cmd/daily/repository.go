package daily

import (
	"time"

	"github.com/goto/chronoset/client/local/model"
	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/daily"
	"github.com/goto/chronoset/internal/lib/interval"
)

// windowRepository resolves windows by document name first, then as literal HH:MM-HH:MM.
type windowRepository struct {
	document *model.Document
}

func (r windowRepository) GetSet(name string) ([]interval.Interval[time.Time], error) {
	if r.document == nil {
		return nil, errors.NotFound(model.EntityDocument, "no interval document is given to look up set "+name)
	}
	return r.document.GetSet(name)
}

func (r windowRepository) GetWindow(name string) (daily.Interval, error) {
	if r.document != nil {
		if in, err := r.document.GetWindow(name); err == nil {
			return in, nil
		}
	}
	return daily.Parse(name)
}
