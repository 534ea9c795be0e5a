package usecase

import (
	"context"
	"fmt"
	"time"

	"campervan-calendar/internal/calendar"
	"campervan-calendar/internal/data/entity"
	"campervan-calendar/internal/data/store"
	"campervan-calendar/internal/dto/response"
	"campervan-calendar/internal/metrics"

	"go.uber.org/zap"
)

type CalendarService interface {
	// GetStationCalendar computes the render model for a station over the
	// visible range. A zero anchor defaults to the station's earliest
	// booking, falling back to today; this is what drops the user into the
	// week where something is actually happening.
	GetStationCalendar(ctx context.Context, stationID string, anchor time.Time, mode calendar.Mode) (*response.CalendarResponse, error)
}

type calendarService struct {
	store *store.Store
	log   *zap.Logger
}

func NewCalendarService(st *store.Store, log *zap.Logger) CalendarService {
	return &calendarService{
		store: st,
		log:   log.With(zap.String("service", "calendar")),
	}
}

func (s *calendarService) GetStationCalendar(ctx context.Context, stationID string, anchor time.Time, mode calendar.Mode) (*response.CalendarResponse, error) {
	if !mode.Valid() {
		mode = calendar.ModeWeek
	}

	station, err := s.store.Station.ByID(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("find station %s: %w", stationID, err)
	}
	if station == nil {
		return nil, entity.ErrStationNotFound
	}

	bookings, err := s.store.Booking.ByStation(ctx, stationID)
	if err != nil {
		s.log.Error("Failed to load bookings for calendar",
			zap.Error(err),
			zap.String("station_id", stationID),
		)
		return nil, fmt.Errorf("load station bookings: %w", err)
	}

	if anchor.IsZero() {
		anchor = defaultAnchor(bookings)
	}

	rng := calendar.VisibleRange{Anchor: anchor, Mode: mode}
	model := calendar.AssembleRange(rng.Days(), bookings)
	metrics.IncCalendarRender(string(mode))

	s.log.Info("Calendar rendered",
		zap.String("station_id", stationID),
		zap.String("mode", string(mode)),
		zap.Time("anchor", anchor),
		zap.Int("bookings", len(bookings)),
	)

	return response.RenderModelToResponse(stationID, rng, model), nil
}

func defaultAnchor(bookings []entity.Booking) time.Time {
	if len(bookings) == 0 {
		return time.Now()
	}
	earliest := bookings[0].StartDate
	for _, b := range bookings[1:] {
		if b.StartDate.Before(earliest) {
			earliest = b.StartDate
		}
	}
	return earliest
}
