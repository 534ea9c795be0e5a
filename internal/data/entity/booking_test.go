package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	start := date(2024, time.August, 10)

	// Inclusive count: four elapsed days read as a five-day booking.
	assert.Equal(t, 5, DurationDays(start, start.AddDate(0, 0, 4)))

	// Same instant is one day.
	assert.Equal(t, 1, DurationDays(start, start))

	// Partial days round up before the +1.
	assert.Equal(t, 3, DurationDays(start, start.Add(36*time.Hour)))

	// Two midnights n days apart yield n+1. The over-count is intentional
	// legacy behavior; see DESIGN.md before touching this.
	assert.Equal(t, 3, DurationDays(start, date(2024, time.August, 12)))
}

func TestRescheduled(t *testing.T) {
	b := Booking{
		ID:           "1",
		StationID:    "2",
		StartDate:    date(2024, time.August, 10),
		EndDate:      date(2024, time.August, 12),
		CustomerName: "John Smith",
		VehicleType:  VehicleCampervan,
		Duration:     3,
	}

	updated := b.Rescheduled(date(2024, time.September, 1), date(2024, time.September, 5))

	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "2", updated.StationID)
	assert.Equal(t, "John Smith", updated.CustomerName)
	assert.Equal(t, date(2024, time.September, 1), updated.StartDate)
	assert.Equal(t, date(2024, time.September, 5), updated.EndDate)
	assert.Equal(t, 5, updated.Duration)

	// Original snapshot untouched.
	assert.Equal(t, date(2024, time.August, 10), b.StartDate)
	assert.Equal(t, 3, b.Duration)
}
