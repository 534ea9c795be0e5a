package wire

import (
	"campervan-calendar/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCalendar(r chi.Router, calendarHandler *adaptor.CalendarHandler) {
	// GET /api/stations/{id}/calendar - positioned render model for the
	// week or 3-day view
	r.Get("/api/stations/{id}/calendar", calendarHandler.GetStationCalendar)
}
