package domain

import (
	"time"
)

// ParseDate parses a YYYY-MM-DD value into a UTC-midnight calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

// DateOf truncates t to its calendar day at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return DateOf(time.Now())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
