package wire

import (
	"campervan-calendar/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// GET /api/stations/{id}/bookings - all bookings at one station
	r.Get("/api/stations/{id}/bookings", bookingHandler.GetStationBookings)

	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - every booking in the store
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/bookings/{id} - booking details for the modal
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{id} - reschedule to a new date range
		r.Put("/{id}", bookingHandler.RescheduleBooking)
	})
}
