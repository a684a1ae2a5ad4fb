package driver

import (
	"fmt"
	"time"
)

const naiveDateTimeLayout = "2006-01-02T15:04:05"

// parseDateTime accepts both RFC 3339 (with explicit offset) and naive
// YYYY-MM-DDTHH:MM:SS datetime strings (spec §6 "Wire formats"), the
// latter interpreted as UTC.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(naiveDateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("driver: invalid datetime %q", s)
	}
	return t, nil
}

func formatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
