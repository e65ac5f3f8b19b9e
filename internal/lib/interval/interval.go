package interval

import (
	"fmt"
	"time"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/endpoint"
)

const EntityInterval = "interval"

// Interval is a half-open range [start, end). start == end is a single point.
type Interval[E endpoint.Ordered[E]] struct {
	start E
	end   E
}

func (i Interval[E]) Start() E {
	return i.start
}

func (i Interval[E]) End() E {
	return i.end
}

// IsEmpty reports whether the interval is a single point.
func (i Interval[E]) IsEmpty() bool {
	return !i.start.Before(i.end)
}

func (i Interval[E]) Equal(o Interval[E]) bool {
	return endpoint.Equal(i.start, o.start) && endpoint.Equal(i.end, o.end)
}

func (i Interval[E]) Contains(e E) bool {
	return !e.Before(i.start) && e.Before(i.end)
}

func (i Interval[E]) Overlaps(o Interval[E]) bool {
	return i.start.Before(o.end) && o.start.Before(i.end)
}

func (i Interval[E]) Meets(o Interval[E]) bool {
	return endpoint.Equal(i.end, o.start) || endpoint.Equal(o.end, i.start)
}

func (i Interval[E]) Duration(m endpoint.Metric[E]) time.Duration {
	return m.Sub(i.end, i.start)
}

func (i Interval[E]) String() string {
	return fmt.Sprintf("[%v, %v)", i.start, i.end)
}

// NewInterval does not validate the order of start and end.
func NewInterval[E endpoint.Ordered[E]](start, end E) Interval[E] {
	return Interval[E]{
		start: start,
		end:   end,
	}
}

func New[E endpoint.Ordered[E]](start, end E) (Interval[E], error) {
	if end.Before(start) {
		return Interval[E]{}, errors.InvalidArgument(EntityInterval, fmt.Sprintf("end %v is before start %v", end, start))
	}
	return NewInterval(start, end), nil
}
