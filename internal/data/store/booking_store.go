package store

import (
	"context"
	"sync"
	"time"

	"campervan-calendar/internal/data/entity"

	"go.uber.org/zap"
)

type bookingStore struct {
	mu       sync.RWMutex
	bookings []entity.Booking // seed order, kept stable for deterministic stacking
	index    map[string]int   // id -> position in bookings

	guardMu sync.Mutex
	guards  map[string]*sync.Mutex // per-booking reschedule serialization

	subMu    sync.RWMutex
	handlers []func(entity.Booking)

	lat Latencies
	log *zap.Logger
}

func newBookingStore(bookings []entity.Booking, lat Latencies, log *zap.Logger) *bookingStore {
	index := make(map[string]int, len(bookings))
	for i, b := range bookings {
		index[b.ID] = i
	}
	return &bookingStore{
		bookings: bookings,
		index:    index,
		guards:   make(map[string]*sync.Mutex),
		lat:      lat,
		log:      log.With(zap.String("store", "booking")),
	}
}

func (s *bookingStore) All(ctx context.Context) ([]entity.Booking, error) {
	if err := wait(ctx, s.lat.AllBookings); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *bookingStore) ByStation(ctx context.Context, stationID string) ([]entity.Booking, error) {
	if err := wait(ctx, s.lat.ByStation); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Booking
	for _, b := range s.bookings {
		if b.StationID == stationID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *bookingStore) Details(ctx context.Context, id string) (*entity.Booking, error) {
	if err := wait(ctx, s.lat.Details); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[id]; ok {
		found := s.bookings[i]
		return &found, nil
	}
	return nil, nil
}

// Reschedule replaces the booking's date range and recomputed duration as a
// single assignment. Updates to the same booking are serialized by a
// per-booking guard, so two interleaved reschedules resolve one after the
// other instead of racing; cross-booking consistency is still nobody's
// business — two overlapping bookings are a valid post-state.
func (s *bookingStore) Reschedule(ctx context.Context, id string, start, end time.Time) (entity.Booking, error) {
	guard := s.guardFor(id)
	guard.Lock()
	defer guard.Unlock()

	if err := wait(ctx, s.lat.Reschedule); err != nil {
		return entity.Booking{}, err
	}

	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return entity.Booking{}, entity.ErrBookingNotFound
	}
	updated := s.bookings[i].Rescheduled(start, end)
	s.bookings[i] = updated
	s.mu.Unlock()

	s.log.Info("Booking rescheduled",
		zap.String("booking_id", id),
		zap.Time("start_date", updated.StartDate),
		zap.Time("end_date", updated.EndDate),
		zap.Int("duration", updated.Duration),
	)

	s.notify(updated)
	return updated, nil
}

func (s *bookingStore) Subscribe(handler func(entity.Booking)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// notify runs handlers synchronously; subscribers decide their own
// concurrency model.
func (s *bookingStore) notify(b entity.Booking) {
	s.subMu.RLock()
	handlers := append(([]func(entity.Booking))(nil), s.handlers...)
	s.subMu.RUnlock()

	for _, handler := range handlers {
		handler(b)
	}
}

func (s *bookingStore) guardFor(id string) *sync.Mutex {
	s.guardMu.Lock()
	defer s.guardMu.Unlock()
	guard, ok := s.guards[id]
	if !ok {
		guard = &sync.Mutex{}
		s.guards[id] = guard
	}
	return guard
}
