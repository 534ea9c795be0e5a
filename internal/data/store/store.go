// Package store is the in-process data source for the dashboard. It stands
// in for a real backend: every operation sleeps a configurable artificial
// latency before touching the in-memory state, so callers exercise the same
// context plumbing they would against a network service.
package store

import (
	"context"
	"time"

	"campervan-calendar/internal/data/entity"

	"go.uber.org/zap"
)

type StationStore interface {
	All(ctx context.Context) ([]entity.Station, error)
	Search(ctx context.Context, query string) ([]entity.Station, error)
	ByID(ctx context.Context, id string) (*entity.Station, error)
}

type BookingStore interface {
	All(ctx context.Context) ([]entity.Booking, error)
	ByStation(ctx context.Context, stationID string) ([]entity.Booking, error)
	// Details returns (nil, nil) for an unknown id; only transport-level
	// failures produce an error.
	Details(ctx context.Context, id string) (*entity.Booking, error)
	Reschedule(ctx context.Context, id string, start, end time.Time) (entity.Booking, error)
	// Subscribe registers a handler invoked synchronously after every
	// successful reschedule, with the updated snapshot.
	Subscribe(handler func(entity.Booking))
}

// Latencies carries the per-operation artificial delays. The defaults mirror
// the historical mock API timings.
type Latencies struct {
	SearchStations time.Duration
	AllStations    time.Duration
	AllBookings    time.Duration
	ByStation      time.Duration
	Details        time.Duration
	Reschedule     time.Duration
}

// DefaultLatencies returns the historical per-operation delays.
func DefaultLatencies() Latencies {
	return Latencies{
		SearchStations: 300 * time.Millisecond,
		AllStations:    100 * time.Millisecond,
		AllBookings:    150 * time.Millisecond,
		ByStation:      250 * time.Millisecond,
		Details:        200 * time.Millisecond,
		Reschedule:     500 * time.Millisecond,
	}
}

// Scale multiplies every delay by factor. A factor of zero disables latency
// simulation entirely.
func (l Latencies) Scale(factor float64) Latencies {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * factor)
	}
	return Latencies{
		SearchStations: scale(l.SearchStations),
		AllStations:    scale(l.AllStations),
		AllBookings:    scale(l.AllBookings),
		ByStation:      scale(l.ByStation),
		Details:        scale(l.Details),
		Reschedule:     scale(l.Reschedule),
	}
}

// Store groups the per-entity stores, mirroring how the repository hub used
// to group database repositories.
type Store struct {
	Station StationStore
	Booking BookingStore
}

// NewStore seeds a fresh in-memory store.
func NewStore(stations []entity.Station, bookings []entity.Booking, lat Latencies, log *zap.Logger) *Store {
	return &Store{
		Station: newStationStore(stations, lat, log),
		Booking: newBookingStore(bookings, lat, log),
	}
}

// wait blocks for the artificial latency, or returns early with the context
// error if the caller gives up first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
