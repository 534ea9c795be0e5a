package seed

import (
	"math/rand"
	"testing"
	"time"

	"campervan-calendar/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStations(t *testing.T) {
	stations := Stations()
	require.Len(t, stations, 12)

	seen := make(map[string]bool)
	for _, st := range stations {
		assert.NotEmpty(t, st.ID)
		assert.NotEmpty(t, st.Name)
		assert.False(t, seen[st.ID], "duplicate station id %s", st.ID)
		seen[st.ID] = true
	}
}

func TestBookings(t *testing.T) {
	now := time.Date(2024, time.August, 5, 12, 0, 0, 0, time.UTC)
	bookings := Bookings(now)
	require.Len(t, bookings, 20)

	stationIDs := make(map[string]bool)
	for _, st := range Stations() {
		stationIDs[st.ID] = true
	}

	for _, b := range bookings {
		assert.True(t, stationIDs[b.StationID], "booking %s references unknown station %s", b.ID, b.StationID)
		assert.False(t, b.EndDate.Before(b.StartDate), "booking %s has end before start", b.ID)
		assert.Positive(t, b.Duration, "booking %s", b.ID)
	}

	// Anchored to now: first booking sits mid current month, last in the next.
	assert.Equal(t, time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC), bookings[0].StartDate)
	assert.Equal(t, time.Date(2024, time.September, 24, 0, 0, 0, 0, time.UTC), bookings[19].StartDate)
}

func TestBookings_YearRollover(t *testing.T) {
	now := time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC)
	bookings := Bookings(now)

	// Next-month bookings land in January of the following year.
	last := bookings[19]
	assert.Equal(t, 2025, last.StartDate.Year())
	assert.Equal(t, time.January, last.StartDate.Month())
}

func TestRandomBookings(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	stations := Stations()
	from := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)

	bookings := RandomBookings(r, stations, 50, from, to)
	require.Len(t, bookings, 50)

	ids := make(map[string]bool)
	for _, b := range bookings {
		assert.False(t, ids[b.ID], "duplicate id %s", b.ID)
		ids[b.ID] = true
		assert.True(t, b.StartDate.Before(b.EndDate))
		assert.False(t, b.StartDate.Before(from.Add(-time.Hour)))
		assert.True(t, b.StartDate.Before(to))
		assert.Equal(t, entity.DurationDays(b.StartDate, b.EndDate), b.Duration)
		assert.Zero(t, b.StartDate.Minute(), "starts snap to the hour")
	}
}

func TestRandomBookings_DegenerateInputs(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	from := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, RandomBookings(r, Stations(), 0, from, from.AddDate(0, 1, 0)))
	assert.Nil(t, RandomBookings(r, nil, 5, from, from.AddDate(0, 1, 0)))
	assert.Nil(t, RandomBookings(r, Stations(), 5, from, from))
}
