package domain

import "time"

// DateLayout is the wire format for calendar dates (no time-of-day).
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Day returns the calendar date of t as midnight UTC.
// The year, month and day are taken in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from `from` to `to`.
// The result is negative when `to` is before `from`. Spans beyond time.Duration's ~292 years
// stay exact.
func DaysBetween(from, to time.Time) int {
	return int((Day(to).Unix() - Day(from).Unix()) / secondsPerDay)
}

// ParseDate parses a YYYY-MM-DD string into a Day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD, got " + s}
	}
	return t, nil
}

// isoWeekday maps time.Weekday (Sunday = 0) to ISO numbering (Monday = 1 … Sunday = 7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// floorMod is the non-negative remainder of a / n for n > 0.
func floorMod(a, n int) int {
	return ((a % n) + n) % n
}
