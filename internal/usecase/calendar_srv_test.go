package usecase

import (
	"context"
	"testing"
	"time"

	"campervan-calendar/internal/calendar"
	"campervan-calendar/internal/data/entity"
	"campervan-calendar/internal/data/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCalendarTestStore() *store.Store {
	bookings := []entity.Booking{
		{
			ID:        "1",
			StationID: "1",
			StartDate: time.Date(2024, time.August, 14, 9, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.August, 14, 11, 0, 0, 0, time.UTC),
			Duration:  1, VehicleType: entity.VehicleCampervan, CustomerName: "John Smith",
		},
	}
	return store.NewStore(testStations(), bookings, store.Latencies{}, zap.NewNop())
}

func TestCalendarService_WeekView(t *testing.T) {
	svc := NewCalendarService(newCalendarTestStore(), zap.NewNop())

	anchor := time.Date(2024, time.August, 14, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetStationCalendar(context.Background(), "1", anchor, calendar.ModeWeek)
	require.NoError(t, err)

	assert.Equal(t, "1", resp.StationID)
	assert.Equal(t, "week", resp.Mode)
	require.Len(t, resp.Days, 7)
	// The week snaps to the Sunday before the anchor.
	assert.Equal(t, "2024-08-11", resp.Days[0].Date)

	// Wednesday carries the booking in hours 9 and 10; hour 11 (end minute
	// zero) is excluded.
	wednesday := resp.Days[3]
	assert.Equal(t, "2024-08-14", wednesday.Date)
	require.Len(t, wednesday.Hours, 2)
	assert.Equal(t, 9, wednesday.Hours[0].Hour)
	assert.Equal(t, 10, wednesday.Hours[1].Hour)

	require.Len(t, wednesday.Hours[0].Entries, 1)
	entry := wednesday.Hours[0].Entries[0]
	assert.Equal(t, "1", entry.Booking.ID)
	assert.Equal(t, 0.0, entry.Geometry.TopPercent)
	assert.Equal(t, 100.0, entry.Geometry.HeightPercent)
	assert.Equal(t, 10, entry.Geometry.ZIndex)
}

func TestCalendarService_ThreeDayView(t *testing.T) {
	svc := NewCalendarService(newCalendarTestStore(), zap.NewNop())

	anchor := time.Date(2024, time.August, 14, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetStationCalendar(context.Background(), "1", anchor, calendar.ModeThreeDay)
	require.NoError(t, err)

	assert.Equal(t, "3day", resp.Mode)
	require.Len(t, resp.Days, 3)
	// Mobile windows start at the anchor itself.
	assert.Equal(t, "2024-08-14", resp.Days[0].Date)
}

func TestCalendarService_ZeroAnchorUsesEarliestBooking(t *testing.T) {
	svc := NewCalendarService(newCalendarTestStore(), zap.NewNop())

	resp, err := svc.GetStationCalendar(context.Background(), "1", time.Time{}, calendar.ModeWeek)
	require.NoError(t, err)

	// Anchor lands on the earliest booking's week, not on today.
	assert.Equal(t, "2024-08-14", resp.Anchor)
	assert.Equal(t, "2024-08-11", resp.Days[0].Date)
}

func TestCalendarService_UnknownStation(t *testing.T) {
	svc := NewCalendarService(newCalendarTestStore(), zap.NewNop())

	_, err := svc.GetStationCalendar(context.Background(), "99", time.Time{}, calendar.ModeWeek)
	assert.ErrorIs(t, err, entity.ErrStationNotFound)
}

func TestCalendarService_InvalidModeFallsBackToWeek(t *testing.T) {
	svc := NewCalendarService(newCalendarTestStore(), zap.NewNop())

	anchor := time.Date(2024, time.August, 14, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetStationCalendar(context.Background(), "1", anchor, calendar.Mode("bogus"))
	require.NoError(t, err)
	assert.Equal(t, "week", resp.Mode)
	assert.Len(t, resp.Days, 7)
}
