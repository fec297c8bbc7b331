package domain

import (
	"fmt"
	"time"
)

// ReminderMode selects the granularity of the due-marker a deployment
// indexes tasks under.
type ReminderMode string

const (
	// ReminderModeDaily selects tasks due on the next calendar date.
	ReminderModeDaily ReminderMode = "daily"

	// ReminderModeHourly selects tasks due in the current clock hour.
	ReminderModeHourly ReminderMode = "hourly"
)

// Due-marker layouts. The same layouts must be used by whichever system
// writes the due_marker column; a formatting mismatch between the write
// and read paths silently drops every match.
const (
	dailyMarkerLayout  = "2006-01-02"
	hourlyMarkerLayout = "2006-01-02T15:04Z"
)

// ParseReminderMode converts a config string into a ReminderMode.
func ParseReminderMode(s string) (ReminderMode, error) {
	switch ReminderMode(s) {
	case ReminderModeDaily, ReminderModeHourly:
		return ReminderMode(s), nil
	}
	return "", fmt.Errorf("unknown reminder mode %q", s)
}

// DueMarker computes the selection key for an invocation at the given
// instant. All computation happens in UTC and sub-bucket components are
// zeroed before formatting, so the key is stable for any instant within
// the same bucket:
//
//   - daily: the calendar date one day after now, e.g. "2024-03-11"
//   - hourly: the start of the current clock hour, e.g. "2024-03-10T14:00Z"
//
// This is the single shared key routine; nothing else in the pipeline
// formats due markers.
func DueMarker(now time.Time, mode ReminderMode) string {
	utc := now.UTC()
	if mode == ReminderModeHourly {
		return utc.Truncate(time.Hour).Format(hourlyMarkerLayout)
	}
	return utc.AddDate(0, 0, 1).Format(dailyMarkerLayout)
}
