package daily

import (
	"bytes"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/olekukonko/tablewriter"

	"github.com/goto/chronoset/internal/lib/daily"
	"github.com/goto/chronoset/internal/lib/interval"
)

type view struct {
	currentCursor cursorPointer

	firstStart  civil.Time
	firstEnd    civil.Time
	secondStart civil.Time
	secondEnd   civil.Time

	locationInput string

	referenceDate civil.Date
}

// Render renders the view into a string format.
// This is the only method which should be called for `view` type
// from the caller outside `view`, emphasized with the first capitalized letter.
func (v *view) Render() string {
	var s strings.Builder
	s.WriteString(v.getInputSection())
	s.WriteString(v.getResultSection())
	return s.String()
}

func (v *view) getInputSection() string {
	buff := new(bytes.Buffer)

	table := newPlainTable(buff)
	table.Append([]string{"INPUT", "HINT"})
	table.Append([]string{v.getInputTable(), v.getInputHint()})
	table.Render()

	return buff.String()
}

func (v *view) getResultSection() string {
	buff := new(bytes.Buffer)

	table := newPlainTable(buff)
	table.Append([]string{"RESULT"})
	table.Append([]string{v.getResultTable()})
	table.Render()

	return buff.String()
}

func newPlainTable(buff *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buff)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetRowLine(false)
	table.SetColumnSeparator("")
	return table
}

func (v *view) getResultTable() string {
	buff := new(bytes.Buffer)
	table := tablewriter.NewWriter(buff)
	table.SetAutoWrapText(false)

	rows, err := v.calculateRows()
	if err != nil {
		table.SetHeader([]string{"ERROR"})
		table.Append([]string{err.Error()})
	} else {
		table.SetHeader([]string{"", "First", "Second", "Shared"})
		table.AppendBulk(rows)
	}

	table.Render()
	return buff.String()
}

func (v *view) calculateRows() ([][]string, error) {
	first, err := daily.New(v.firstStart, v.firstEnd)
	if err != nil {
		return nil, err
	}
	second, err := daily.New(v.secondStart, v.secondEnd)
	if err != nil {
		return nil, err
	}
	location, err := time.LoadLocation(v.locationInput)
	if err != nil {
		return nil, errors.New("location is not recognized")
	}

	pieces := make([]string, 0)
	for _, p := range first.GetOverlapsWith(second) {
		pieces = append(pieces, p.String())
	}

	rows := [][]string{
		{"window", first.String(), second.String(), strings.Join(pieces, "\n")},
		{"shape", first.Shape().String(), second.Shape().String(), ""},
		{"per day", first.Duration().String(), second.Duration().String(), ""},
	}

	occurrencesRow, err := v.occurrences(first, second, location)
	if err != nil {
		return nil, err
	}
	return append(rows, occurrencesRow), nil
}

// occurrences lists both windows for daysToShow days from the reference date, and where they meet.
func (v *view) occurrences(first, second daily.Interval, location *time.Location) ([]string, error) {
	rng := interval.NewInterval(v.referenceDate.In(location), v.referenceDate.AddDays(daysToShow).In(location))

	firstWindow, err := daily.NewWindow(first, location)
	if err != nil {
		return nil, err
	}
	secondWindow, err := daily.NewWindow(second, location)
	if err != nil {
		return nil, err
	}

	firstSeq, err := firstWindow.Materialize(rng)
	if err != nil {
		return nil, err
	}
	secondSeq, err := secondWindow.Materialize(rng)
	if err != nil {
		return nil, err
	}
	shared, err := interval.GetOverlapsWith(firstSeq, secondSeq)
	if err != nil {
		return nil, err
	}

	return []string{
		"occurrences",
		formatIntervals(slices.Collect(firstSeq), location),
		formatIntervals(slices.Collect(secondSeq), location),
		formatIntervals(slices.Collect(shared), location),
	}, nil
}

func formatIntervals(ivs []interval.Interval[time.Time], location *time.Location) string {
	const layout = "Jan 2 15:04"
	lines := make([]string, 0, len(ivs))
	for _, in := range ivs {
		lines = append(lines, in.Start().In(location).Format(layout)+" - "+in.End().In(location).Format(layout))
	}
	return strings.Join(lines, "\n")
}

func (v *view) getInputHint() string {
	var hint string
	switch v.currentCursor {
	case pointToFirstStart, pointToSecondStart:
		hint = `time of day the window starts

an end before the start wraps past midnight
an end equal to the start covers the whole day

(shift+up) or (shift+w) to move 15 minutes later
(shift+down) or (shift+s) to move 15 minutes earlier
`
	case pointToFirstEnd, pointToSecondEnd:
		hint = `time of day the window ends, exclusive

(shift+up) or (shift+w) to move 15 minutes later
(shift+down) or (shift+s) to move 15 minutes earlier
`
	case pointToLocationInput:
		hint = `valid value is from IANA Time Zone database
occurrences follow daylight saving changes of the location`
	case pointToYear, pointToMonth, pointToDay:
		hint = `first day occurrences are listed for

(shift+up) or (shift+w) to increment
(shift+down) or (shift+s) to decrement
`
	}

	return hint
}

func (v *view) getInputTable() string {
	buff := new(bytes.Buffer)

	table := tablewriter.NewWriter(buff)
	table.SetRowLine(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	table.Append([]string{
		"first window",
		v.getWindowInput(pointToFirstStart, v.firstStart, pointToFirstEnd, v.firstEnd),
	})
	table.Append([]string{
		"second window",
		v.getWindowInput(pointToSecondStart, v.secondStart, pointToSecondEnd, v.secondEnd),
	})
	table.Append([]string{
		"location",
		v.getValueWithCursor(pointToLocationInput, v.locationInput),
	})
	table.Append([]string{
		"from date",
		v.getReferenceDateInput(),
	})

	table.Render()
	return buff.String() + "\n"
}

func (v *view) getWindowInput(startCursor cursorPointer, start civil.Time, endCursor cursorPointer, end civil.Time) string {
	return v.getValueWithCursor(startCursor, clock(start)) + " - " + v.getValueWithCursor(endCursor, clock(end))
}

func (v *view) getReferenceDateInput() string {
	year := v.getValueWithCursor(pointToYear, strconv.Itoa(v.referenceDate.Year))
	month := v.getValueWithCursor(pointToMonth, v.referenceDate.Month.String())
	day := v.getValueWithCursor(pointToDay, strconv.Itoa(v.referenceDate.Day))
	return year + " " + month + " " + day
}

func (v *view) getValueWithCursor(targetCursor cursorPointer, value string) string {
	if v.currentCursor == targetCursor {
		return "[" + value + "]"
	}

	return value
}

func clock(t civil.Time) string {
	return t.String()[:len("15:04")]
}
