package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the ISO calendar-date layout used for entry keys.
	DateLayout = "2006-01-02"
	// MonthLayout is the year-month layout used for heatmap and chart keys.
	MonthLayout = "2006-01"
)

// IsISODate reports whether s is a valid zero-padded YYYY-MM-DD date.
func IsISODate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// IsYearMonth reports whether s is a valid zero-padded YYYY-MM month.
func IsYearMonth(s string) bool {
	t, err := time.Parse(MonthLayout, s)
	return err == nil && t.Format(MonthLayout) == s
}

// ParseDate parses an ISO date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as an ISO date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthBounds returns the first and last ISO dates of month ("YYYY-MM").
func MonthBounds(month string) (first, last string, err error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return "", "", fmt.Errorf("parse month %q: %w", month, err)
	}
	return FormatDate(t), FormatDate(t.AddDate(0, 1, -1)), nil
}
