package domain

import (
	"testing"
	"time"
)

func TestDueMarkerDaily(t *testing.T) {
	// Midnight exactly
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if got := DueMarker(now, ReminderModeDaily); got != "2024-03-11" {
		t.Errorf("Expected 2024-03-11, got %s", got)
	}

	// Time-of-day must not change the key
	later := time.Date(2024, 3, 10, 23, 59, 58, 999, time.UTC)
	if got := DueMarker(later, ReminderModeDaily); got != "2024-03-11" {
		t.Errorf("Expected 2024-03-11 regardless of clock time, got %s", got)
	}

	// Non-UTC instants normalize to UTC before the date is taken
	est := time.FixedZone("EST", -5*60*60)
	evening := time.Date(2024, 3, 10, 20, 0, 0, 0, est) // 2024-03-11T01:00Z
	if got := DueMarker(evening, ReminderModeDaily); got != "2024-03-12" {
		t.Errorf("Expected 2024-03-12 after UTC normalization, got %s", got)
	}

	// Month rollover
	endOfMonth := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	if got := DueMarker(endOfMonth, ReminderModeDaily); got != "2024-03-01" {
		t.Errorf("Expected 2024-03-01, got %s", got)
	}
}

func TestDueMarkerHourly(t *testing.T) {
	// Minutes, seconds, and nanoseconds are zeroed
	now := time.Date(2024, 3, 10, 14, 37, 12, 456, time.UTC)
	if got := DueMarker(now, ReminderModeHourly); got != "2024-03-10T14:00Z" {
		t.Errorf("Expected 2024-03-10T14:00Z, got %s", got)
	}

	// Top of the hour maps to itself
	top := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	if got := DueMarker(top, ReminderModeHourly); got != "2024-03-10T14:00Z" {
		t.Errorf("Expected 2024-03-10T14:00Z, got %s", got)
	}
}

func TestParseReminderMode(t *testing.T) {
	mode, err := ParseReminderMode("daily")
	if err != nil || mode != ReminderModeDaily {
		t.Errorf("Expected ReminderModeDaily, got %v (err %v)", mode, err)
	}

	mode, err = ParseReminderMode("hourly")
	if err != nil || mode != ReminderModeHourly {
		t.Errorf("Expected ReminderModeHourly, got %v (err %v)", mode, err)
	}

	if _, err := ParseReminderMode("weekly"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
