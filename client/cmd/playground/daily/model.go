package daily

import (
	"fmt"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	currentCursor cursorPointer

	firstStart  civil.Time
	firstEnd    civil.Time
	secondStart civil.Time
	secondEnd   civil.Time

	locationInput textinput.Model

	referenceDate civil.Date
}

func newModel() *model {
	locationInput := textinput.New()
	locationInput.CharLimit = maxLocationLen
	locationInput.SetValue("UTC")

	return &model{
		currentCursor: pointToFirstStart,
		firstStart:    civil.Time{Hour: 20},
		firstEnd:      civil.Time{Hour: 8},
		secondStart:   civil.Time{Hour: 6},
		secondEnd:     civil.Time{Hour: 14},
		locationInput: locationInput,
		referenceDate: civil.DateOf(time.Now().UTC()),
	}
}

func (*model) Init() tea.Cmd {
	// this method is to adhere to library contract
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	currMsg := reflect.TypeOf(msg)
	if currMsg.String() != "tea.KeyMsg" {
		return m, nil
	}

	msgStr := fmt.Sprintf("%s", msg)
	switch msgStr {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up":
		m.handleUp()
	case "down":
		m.handleDown()
	case "left":
		m.handleLeft()
	case "right":
		m.handleRight()
	case "shift+up", "W":
		m.shift(1)
	case "shift+down", "S":
		m.shift(-1)
	default:
		m.handleInput(msg)
	}
	return m, nil
}

func (m *model) View() string {
	view := view{
		currentCursor: m.currentCursor,
		firstStart:    m.firstStart,
		firstEnd:      m.firstEnd,
		secondStart:   m.secondStart,
		secondEnd:     m.secondEnd,
		locationInput: m.locationInput.Value(),
		referenceDate: m.referenceDate,
	}

	return view.Render()
}

func (m *model) handleInput(msg tea.Msg) {
	if m.currentCursor == pointToLocationInput {
		m.locationInput, _ = m.locationInput.Update(msg)
	}
}

func (m *model) shift(direction int) {
	switch m.currentCursor {
	case pointToFirstStart:
		m.firstStart = shiftTime(m.firstStart, direction)
	case pointToFirstEnd:
		m.firstEnd = shiftTime(m.firstEnd, direction)
	case pointToSecondStart:
		m.secondStart = shiftTime(m.secondStart, direction)
	case pointToSecondEnd:
		m.secondEnd = shiftTime(m.secondEnd, direction)
	case pointToDay:
		m.referenceDate = m.referenceDate.AddDays(direction)
	case pointToMonth:
		m.referenceDate = m.shiftDate(0, direction)
	case pointToYear:
		m.referenceDate = m.shiftDate(direction, 0)
	}
}

func (m *model) shiftDate(years, months int) civil.Date {
	t := m.referenceDate.In(time.UTC).AddDate(years, months, 0)
	return civil.DateOf(t)
}

// shiftTime moves t by minuteStep minutes, wrapping around midnight.
func shiftTime(t civil.Time, direction int) civil.Time {
	const minutesInDay = 24 * 60
	minutes := t.Hour*60 + t.Minute + direction*minuteStep
	minutes = ((minutes % minutesInDay) + minutesInDay) % minutesInDay
	return civil.Time{Hour: minutes / 60, Minute: minutes % 60}
}

func (m *model) handleRight() {
	switch m.currentCursor {
	case pointToFirstStart:
		m.currentCursor = pointToFirstEnd
	case pointToSecondStart:
		m.currentCursor = pointToSecondEnd
	case pointToYear:
		m.currentCursor = pointToMonth
	case pointToMonth:
		m.currentCursor = pointToDay
	case pointToDay:
		m.currentCursor = pointToYear
	}
}

func (m *model) handleLeft() {
	switch m.currentCursor {
	case pointToFirstEnd:
		m.currentCursor = pointToFirstStart
	case pointToSecondEnd:
		m.currentCursor = pointToSecondStart
	case pointToDay:
		m.currentCursor = pointToMonth
	case pointToMonth:
		m.currentCursor = pointToYear
	case pointToYear:
		m.currentCursor = pointToDay
	}
}

func (m *model) handleDown() {
	switch m.currentCursor {
	case pointToFirstStart:
		m.currentCursor = pointToSecondStart
	case pointToFirstEnd:
		m.currentCursor = pointToSecondEnd
	case pointToSecondStart, pointToSecondEnd:
		m.locationInput.Focus()
		m.currentCursor = pointToLocationInput
	case pointToLocationInput:
		m.locationInput.Blur()
		m.currentCursor = pointToYear
	default:
		m.currentCursor = pointToFirstStart
	}
}

func (m *model) handleUp() {
	switch m.currentCursor {
	case pointToFirstStart, pointToFirstEnd:
		m.currentCursor = pointToYear
	case pointToSecondStart:
		m.currentCursor = pointToFirstStart
	case pointToSecondEnd:
		m.currentCursor = pointToFirstEnd
	case pointToLocationInput:
		m.locationInput.Blur()
		m.currentCursor = pointToSecondStart
	default:
		m.locationInput.Focus()
		m.currentCursor = pointToLocationInput
	}
}
