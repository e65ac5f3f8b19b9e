package utils

import (
	"fmt"
	"time"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseTime accepts RFC3339 or a zone-less date, with optional minutes, read in loc.
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time [%s], use RFC3339 or 2006-01-02 15:04", value)
}

// GetDistinctStrings keeps the first occurrence of every value, in order.
func GetDistinctStrings(input []string) []string {
	seen := make(map[string]struct{})
	var res []string
	for _, v := range input {
		if _, found := seen[v]; found {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

func RemoveFromStringArray(input, toRemove []string) []string {
	toRemoveMap := make(map[string]struct{})
	for _, v := range toRemove {
		toRemoveMap[v] = struct{}{}
	}

	var res []string
	for _, v := range input {
		if _, found := toRemoveMap[v]; !found {
			res = append(res, v)
		}
	}
	return res
}

// GetFirstNonEmpty returns the first option that is not the zero value, or the first option.
func GetFirstNonEmpty[T comparable](opts ...T) T {
	var zero T
	for _, opt := range opts {
		if opt != zero {
			return opt
		}
	}
	return opts[0]
}
