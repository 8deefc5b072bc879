package util

import (
	"fmt"
	"strings"
	"time"
)

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseCivilDate reads a calendar date as written, either "2006-01-02" or a
// full RFC 3339 timestamp. The wall-clock date is kept and the result sits at
// midnight UTC, so no zone shift can move it to a neighbouring day.
func ParseCivilDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
