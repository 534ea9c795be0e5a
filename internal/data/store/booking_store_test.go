package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"campervan-calendar/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixtureBookings() []entity.Booking {
	return []entity.Booking{
		{ID: "1", StationID: "1", StartDate: date(2024, time.August, 10), EndDate: date(2024, time.August, 12), CustomerName: "John Smith", VehicleType: entity.VehicleCampervan, Duration: 3},
		{ID: "2", StationID: "2", StartDate: date(2024, time.August, 11), EndDate: date(2024, time.August, 13), CustomerName: "Sarah Johnson", VehicleType: entity.VehicleRV, Duration: 3},
		{ID: "3", StationID: "1", StartDate: date(2024, time.August, 14), EndDate: date(2024, time.August, 15), CustomerName: "Mike Wilson", VehicleType: entity.VehicleCampervan, Duration: 2},
	}
}

func newTestBookingStore() *bookingStore {
	return newBookingStore(fixtureBookings(), Latencies{}, zap.NewNop())
}

func TestBookingStore_All(t *testing.T) {
	s := newTestBookingStore()

	got, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Seed order preserved for deterministic stacking downstream.
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestBookingStore_ByStation(t *testing.T) {
	s := newTestBookingStore()

	got, err := s.ByStation(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	empty, err := s.ByStation(context.Background(), "99")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBookingStore_DetailsUnknownIsNil(t *testing.T) {
	s := newTestBookingStore()

	got, err := s.Details(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookingStore_Reschedule(t *testing.T) {
	s := newTestBookingStore()

	updated, err := s.Reschedule(context.Background(), "1", date(2024, time.September, 1), date(2024, time.September, 5))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.September, 1), updated.StartDate)
	assert.Equal(t, date(2024, time.September, 5), updated.EndDate)
	assert.Equal(t, 5, updated.Duration)
	assert.Equal(t, "John Smith", updated.CustomerName)

	// The replacement lands in the same slot; order is unchanged.
	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, updated, all[0])
	assert.Equal(t, "2", all[1].ID)
}

func TestBookingStore_RescheduleUnknownLeavesStoreUntouched(t *testing.T) {
	s := newTestBookingStore()
	before, err := s.All(context.Background())
	require.NoError(t, err)

	_, err = s.Reschedule(context.Background(), "999", date(2024, time.September, 1), date(2024, time.September, 5))
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)

	after, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBookingStore_SubscribeNotifiedOnReschedule(t *testing.T) {
	s := newTestBookingStore()

	var got []entity.Booking
	s.Subscribe(func(b entity.Booking) {
		got = append(got, b)
	})

	updated, err := s.Reschedule(context.Background(), "2", date(2024, time.September, 1), date(2024, time.September, 3))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, updated, got[0])

	// Failed reschedules notify nobody.
	_, err = s.Reschedule(context.Background(), "999", date(2024, time.September, 1), date(2024, time.September, 3))
	require.Error(t, err)
	assert.Len(t, got, 1)
}

func TestBookingStore_ConcurrentReschedulesSerialized(t *testing.T) {
	s := newTestBookingStore()

	first := [2]time.Time{date(2024, time.September, 1), date(2024, time.September, 3)}
	second := [2]time.Time{date(2024, time.October, 1), date(2024, time.October, 2)}

	var wg sync.WaitGroup
	for _, rng := range [][2]time.Time{first, second} {
		wg.Add(1)
		go func(start, end time.Time) {
			defer wg.Done()
			_, err := s.Reschedule(context.Background(), "1", start, end)
			assert.NoError(t, err)
		}(rng[0], rng[1])
	}
	wg.Wait()

	// Whichever update lands last wins wholesale; no field-level mixing.
	final, err := s.Details(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, final)

	matchesFirst := final.StartDate.Equal(first[0]) && final.EndDate.Equal(first[1]) && final.Duration == 3
	matchesSecond := final.StartDate.Equal(second[0]) && final.EndDate.Equal(second[1]) && final.Duration == 2
	assert.True(t, matchesFirst || matchesSecond, "final state must match exactly one complete update")
}

func TestBookingStore_LatencyHonorsContext(t *testing.T) {
	s := newBookingStore(fixtureBookings(), Latencies{Reschedule: 100 * time.Millisecond}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := s.Reschedule(ctx, "1", date(2024, time.September, 1), date(2024, time.September, 5))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The aborted call must not have mutated the booking.
	got, err := s.Details(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.August, 10), got.StartDate)
}

func TestLatencies_Scale(t *testing.T) {
	scaled := DefaultLatencies().Scale(0.1)
	assert.Equal(t, 30*time.Millisecond, scaled.SearchStations)
	assert.Equal(t, 50*time.Millisecond, scaled.Reschedule)

	off := DefaultLatencies().Scale(0)
	assert.Zero(t, off.Reschedule)
}
