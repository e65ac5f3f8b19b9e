package daily

type cursorPointer string

const (
	pointToFirstStart  cursorPointer = "first_start"
	pointToFirstEnd    cursorPointer = "first_end"
	pointToSecondStart cursorPointer = "second_start"
	pointToSecondEnd   cursorPointer = "second_end"

	pointToLocationInput cursorPointer = "location_input"

	pointToYear  cursorPointer = "year"
	pointToMonth cursorPointer = "month"
	pointToDay   cursorPointer = "day"
)

const (
	minuteStep     = 15
	daysToShow     = 3
	maxLocationLen = 64
)
