package usecase

import (
	"context"
	"errors"
	"fmt"

	"campervan-calendar/internal/data/entity"
	"campervan-calendar/internal/data/store"
	"campervan-calendar/internal/dto/request"
	"campervan-calendar/internal/dto/response"
	"campervan-calendar/internal/metrics"
	"campervan-calendar/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	GetAllBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingsByStation(ctx context.Context, stationID string) ([]response.BookingResponse, error)
	GetBookingDetails(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	RescheduleBooking(ctx context.Context, bookingID string, req *request.RescheduleBookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	store *store.Store
	log   *zap.Logger
}

func NewBookingService(st *store.Store, log *zap.Logger) BookingService {
	return &bookingService{
		store: st,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.store.Booking.All(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingsByStation(ctx context.Context, stationID string) ([]response.BookingResponse, error) {
	st, err := s.store.Station.ByID(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("find station %s: %w", stationID, err)
	}
	if st == nil {
		return nil, entity.ErrStationNotFound
	}

	bookings, err := s.store.Booking.ByStation(ctx, stationID)
	if err != nil {
		s.log.Error("Failed to list station bookings",
			zap.Error(err),
			zap.String("station_id", stationID),
		)
		return nil, fmt.Errorf("list station bookings: %w", err)
	}

	s.log.Info("Station bookings retrieved",
		zap.String("station_id", stationID),
		zap.Int("count", len(bookings)),
	)
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingDetails(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.store.Booking.Details(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking details %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}

	resp := response.BookingToResponse(*booking)
	return &resp, nil
}

func (s *bookingService) RescheduleBooking(ctx context.Context, bookingID string, req *request.RescheduleBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reschedule validation failed", zap.Any("errors", errs))
		metrics.IncReschedule("invalid")
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// The date-range control only allows end >= start; enforce the same at
	// the service boundary.
	if req.EndDate.Before(req.StartDate) {
		metrics.IncReschedule("invalid")
		return nil, entity.ErrInvalidDateRange
	}

	updated, err := s.store.Booking.Reschedule(ctx, bookingID, req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, entity.ErrBookingNotFound) {
			metrics.IncReschedule("not_found")
			return nil, err
		}
		s.log.Error("Failed to reschedule booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		metrics.IncReschedule("error")
		return nil, fmt.Errorf("reschedule booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking rescheduled",
		zap.String("booking_id", bookingID),
		zap.Time("start_date", updated.StartDate),
		zap.Time("end_date", updated.EndDate),
		zap.Int("duration", updated.Duration),
	)
	metrics.IncReschedule("ok")

	resp := response.BookingToResponse(updated)
	return &resp, nil
}
