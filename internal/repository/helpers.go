package repository

import (
	"fmt"
	"time"
)

// timeLayout keeps sub-second precision and the zone offset so entries
// round-trip with the wall clock they were recorded at.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}
