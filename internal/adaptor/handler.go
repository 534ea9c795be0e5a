package adaptor

import (
	"campervan-calendar/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Station  *StationHandler
	Booking  *BookingHandler
	Calendar *CalendarHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Station:  NewStationHandler(service.Station, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Calendar: NewCalendarHandler(service.Calendar, log),
	}
}
