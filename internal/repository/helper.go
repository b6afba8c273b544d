package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored timestamp in "2006-01-02", RFC3339 or
// "2006-01-02 15:04:05" format. Always returns UTC.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q", str)
}

// FormatDate renders a time as the date-only storage format used for
// rate lookups.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
