package usecase

import (
	"campervan-calendar/internal/data/store"
	"campervan-calendar/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Station  StationService
	Booking  BookingService
	Calendar CalendarService
}

func NewService(st *store.Store, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Station:  NewStationService(st, log),
		Booking:  NewBookingService(st, log),
		Calendar: NewCalendarService(st, log),
	}
}
