package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"campervan-calendar/internal/data/entity"
	"campervan-calendar/internal/dto/request"
	"campervan-calendar/internal/usecase"
	"campervan-calendar/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBookings handles GET /api/bookings
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetAllBookings(r.Context())
	if err != nil {
		h.log.Error("Get bookings failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to load bookings")
		return
	}
	utils.ResponseSuccess(w, "success", bookings)
}

// GetStationBookings handles GET /api/stations/{id}/bookings
func (h *BookingHandler) GetStationBookings(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "id")

	bookings, err := h.service.GetBookingsByStation(r.Context(), stationID)
	if err != nil {
		h.handleServiceError(w, err, "get station bookings")
		return
	}
	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetBookingDetails(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking details")
		return
	}
	utils.ResponseSuccess(w, "success", booking)
}

// RescheduleBooking handles PUT /api/bookings/{id}
func (h *BookingHandler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.RescheduleBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.RescheduleBooking(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "reschedule booking")
		return
	}
	utils.ResponseSuccess(w, "Booking rescheduled successfully", booking)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, entity.ErrBookingNotFound):
		utils.ResponseNotFound(w, "Booking not found")
	case errors.Is(err, entity.ErrStationNotFound):
		utils.ResponseNotFound(w, "Station not found")
	case errors.Is(err, entity.ErrInvalidDateRange):
		utils.ResponseBadRequest(w, "End date must not be before start date", nil)
	case strings.Contains(err.Error(), "validation failed"):
		utils.ResponseBadRequest(w, err.Error(), nil)
	default:
		h.log.Error("Service error", zap.Error(err), zap.String("op", op))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
