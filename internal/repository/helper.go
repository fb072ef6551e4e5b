package repository

import (
	"fmt"
	"time"
)

// Dates are stored as RFC3339 UTC strings. The driver returns TEXT for
// DATETIME columns, so every repository formats on write and parses on read.

// ParseTime parses a stored date string in RFC3339 or "2006-01-02" format.
func ParseTime(str string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse stored date: %w", err)
		}
	}
	return parsed.UTC(), nil
}

// FormatTime formats a time for storage.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// formatNullableTime formats an optional time for storage, keeping NULL.
func formatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatTime(*t)
}
