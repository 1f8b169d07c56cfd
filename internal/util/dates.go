package util

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format (use YYYY-MM-DD)")

// ParseDate parses a YYYY-MM-DD visit date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a stored visit date back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateRange parses optional YYYY-MM-DD range bounds. The end bound is
// returned as an exclusive boundary one day past the given date so the whole
// end day is included. A reversed range is swapped rather than rejected.
func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	var rawStart, rawEnd time.Time

	if startStr != nil && strings.TrimSpace(*startStr) != "" {
		rawStart, err = ParseDate(*startStr)
		if err != nil {
			return time.Time{}, false, time.Time{}, false, err
		}
		hasStart = true
	}

	if endStr != nil && strings.TrimSpace(*endStr) != "" {
		rawEnd, err = ParseDate(*endStr)
		if err != nil {
			return time.Time{}, false, time.Time{}, false, err
		}
		hasEnd = true
	}

	if hasStart && hasEnd && rawEnd.Before(rawStart) {
		rawStart, rawEnd = rawEnd, rawStart
	}

	if hasStart {
		start = rawStart
	}
	if hasEnd {
		endExclusive = rawEnd.AddDate(0, 0, 1)
	}

	return start, hasStart, endExclusive, hasEnd, nil
}
