package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/daily"
	"github.com/goto/chronoset/internal/lib/interval"
)

const EntityDocument = "interval_document"

// Document is the on-disk collection of named interval sets and daily windows.
type Document struct {
	Version  int          `yaml:"version"            json:"version"`
	Location string       `yaml:"location,omitempty" json:"location,omitempty"`
	Sets     []SetSpec    `yaml:"sets"               json:"sets"`
	Windows  []WindowSpec `yaml:"windows,omitempty"  json:"windows,omitempty"`

	Path string `yaml:"-" json:"-"`
}

type SetSpec struct {
	Name      string         `yaml:"name"      json:"name"`
	Intervals []IntervalSpec `yaml:"intervals" json:"intervals"`
}

type IntervalSpec struct {
	Start time.Time `yaml:"start" json:"start"`
	End   time.Time `yaml:"end"   json:"end"`
}

type WindowSpec struct {
	Name  string `yaml:"name"  json:"name"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end"   json:"end"`
}

func (d *Document) Set(name string) (SetSpec, error) {
	for _, s := range d.Sets {
		if s.Name == name {
			return s, nil
		}
	}
	return SetSpec{}, errors.NotFound(EntityDocument, fmt.Sprintf("set %s is not found in %s", name, d.Path))
}

func (d *Document) Window(name string) (WindowSpec, error) {
	for _, w := range d.Windows {
		if w.Name == name {
			return w, nil
		}
	}
	return WindowSpec{}, errors.NotFound(EntityDocument, fmt.Sprintf("window %s is not found in %s", name, d.Path))
}

// GetSet returns the intervals of the named set.
func (d *Document) GetSet(name string) ([]interval.Interval[time.Time], error) {
	set, err := d.Set(name)
	if err != nil {
		return nil, err
	}
	return set.Collection(), nil
}

// GetWindow returns the named daily window.
func (d *Document) GetWindow(name string) (daily.Interval, error) {
	w, err := d.Window(name)
	if err != nil {
		return daily.Interval{}, err
	}
	return w.Interval()
}

func (d *Document) SetNames() []string {
	names := make([]string, 0, len(d.Sets))
	for _, s := range d.Sets {
		names = append(names, s.Name)
	}
	return names
}

// PutSet adds the set, replacing any existing set with the same name.
func (d *Document) PutSet(set SetSpec) {
	for i, s := range d.Sets {
		if s.Name == set.Name {
			d.Sets[i] = set
			return
		}
	}
	d.Sets = append(d.Sets, set)
}

// LoadLocation returns the document location, or fallback when the document names none.
func (d *Document) LoadLocation(fallback *time.Location) (*time.Location, error) {
	if d.Location == "" {
		return fallback, nil
	}
	loc, err := time.LoadLocation(d.Location)
	if err != nil {
		return nil, errors.InvalidArgument(EntityDocument, "unknown location "+d.Location)
	}
	return loc, nil
}

// Validate reports every invalid set, interval and window at once.
func (d *Document) Validate() error {
	me := errors.NewMultiError(fmt.Sprintf("invalid interval document %s", d.Path))

	if d.Location != "" {
		if _, err := time.LoadLocation(d.Location); err != nil {
			me.Append(errors.InvalidArgument(EntityDocument, "unknown location "+d.Location))
		}
	}

	seen := map[string]bool{}
	for i, s := range d.Sets {
		if err := s.Validate(); err != nil {
			me.Append(errors.InvalidArgument(EntityDocument, fmt.Sprintf("set at index %d: %s", i, err)))
		}
		if s.Name != "" && seen[s.Name] {
			me.Append(errors.InvalidArgument(EntityDocument, "duplicate set name "+s.Name))
		}
		seen[s.Name] = true
	}

	seen = map[string]bool{}
	for i, w := range d.Windows {
		if err := w.Validate(); err != nil {
			me.Append(errors.InvalidArgument(EntityDocument, fmt.Sprintf("window at index %d: %s", i, err)))
		}
		if w.Name != "" && seen[w.Name] {
			me.Append(errors.InvalidArgument(EntityDocument, "duplicate window name "+w.Name))
		}
		seen[w.Name] = true
	}

	return me.ToErr()
}

func (s SetSpec) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Intervals, validation.Each(validation.By(func(value interface{}) error {
			in, _ := value.(IntervalSpec)
			return in.Validate()
		}))),
	)
}

// Collection returns the set's intervals in document order.
func (s SetSpec) Collection() []interval.Interval[time.Time] {
	ivs := make([]interval.Interval[time.Time], 0, len(s.Intervals))
	for _, in := range s.Intervals {
		ivs = append(ivs, interval.NewInterval(in.Start, in.End))
	}
	return ivs
}

func NewSetSpec(name string, ivs []interval.Interval[time.Time]) SetSpec {
	specs := make([]IntervalSpec, 0, len(ivs))
	for _, in := range ivs {
		specs = append(specs, IntervalSpec{Start: in.Start(), End: in.End()})
	}
	return SetSpec{Name: name, Intervals: specs}
}

func (i IntervalSpec) Validate() error {
	if i.Start.IsZero() || i.End.IsZero() {
		return errors.InvalidArgument(EntityDocument, "interval start and end are required")
	}
	if i.End.Before(i.Start) {
		return errors.InvalidArgument(EntityDocument, fmt.Sprintf("interval end %s is before start %s",
			i.End.Format(time.RFC3339), i.Start.Format(time.RFC3339)))
	}
	return nil
}

func (w WindowSpec) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Name, validation.Required),
		validation.Field(&w.Start, validation.Required, validation.By(validTimeOfDay)),
		validation.Field(&w.End, validation.Required, validation.By(validTimeOfDay)),
	)
}

func validTimeOfDay(value interface{}) error {
	s, _ := value.(string)
	_, err := daily.ParseTime(s)
	return err
}

func (w WindowSpec) Interval() (daily.Interval, error) {
	start, err := daily.ParseTime(w.Start)
	if err != nil {
		return daily.Interval{}, err
	}
	end, err := daily.ParseTime(w.End)
	if err != nil {
		return daily.Interval{}, err
	}
	return daily.New(start, end)
}
