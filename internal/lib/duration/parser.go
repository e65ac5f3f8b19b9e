package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goto/chronoset/internal/errors"
)

// a signed count followed by a single unit letter, e.g. 3d or -2h
var durationPattern = regexp.MustCompile(`^(-?\d+)([a-zA-Z])$`)

var units = map[string]Unit{
	string(None):  None,
	string(Hour):  Hour,
	string(Day):   Day,
	string(Week):  Week,
	string(Month): Month,
	string(Year):  Year,
}

// From parses a calendar duration such as 6h or 1M. Empty and None give the zero duration.
func From(str string) (Duration, error) {
	if str == "" || strings.EqualFold(str, string(None)) {
		return NewDuration(0, None), nil
	}

	match := durationPattern.FindStringSubmatch(str)
	if match == nil {
		return Duration{}, errors.InvalidArgument(EntityDuration, fmt.Sprintf("invalid string for duration %s, expected <count><unit>", str))
	}

	unit, err := UnitFrom(match[2])
	if err != nil {
		return Duration{}, err
	}
	count, err := strconv.Atoi(match[1])
	if err != nil {
		return Duration{}, errors.InvalidArgument(EntityDuration, fmt.Sprintf("count in %s is out of range", str))
	}
	return NewDuration(count, unit), nil
}

// Validate reports whether str would parse, keeping the parse error.
func Validate(str string) error {
	_, err := From(str)
	return err
}

func UnitFrom(u string) (Unit, error) {
	unit, ok := units[u]
	if !ok {
		return "", errors.InvalidArgument(EntityDuration, "invalid value for unit "+u+", accepted values are [h,d,w,M,y]")
	}
	return unit, nil
}
