package adaptor

import (
	"errors"
	"net/http"
	"time"

	"campervan-calendar/internal/calendar"
	"campervan-calendar/internal/data/entity"
	"campervan-calendar/internal/dto/request"
	"campervan-calendar/internal/usecase"
	"campervan-calendar/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	service usecase.CalendarService
	log     *zap.Logger
}

func NewCalendarHandler(service usecase.CalendarService, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log.With(zap.String("handler", "calendar")),
	}
}

// GetStationCalendar handles GET /api/stations/{id}/calendar?anchor=YYYY-MM-DD&mode=week|3day
func (h *CalendarHandler) GetStationCalendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.CalendarViewRequest{
		StationID: chi.URLParam(r, "id"),
		Anchor:    query.Get("anchor"),
		Mode:      query.Get("mode"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	// A missing anchor stays zero so the service can pick the station's
	// earliest booking.
	anchor := utils.ParseDate(req.Anchor, time.Local, time.Time{})
	mode := calendar.Mode(req.Mode)

	resp, err := h.service.GetStationCalendar(r.Context(), req.StationID, anchor, mode)
	if err != nil {
		if errors.Is(err, entity.ErrStationNotFound) {
			utils.ResponseNotFound(w, "Station not found")
			return
		}
		h.log.Error("Get station calendar failed",
			zap.Error(err),
			zap.String("station_id", req.StationID),
		)
		utils.ResponseInternalError(w, "Failed to render calendar")
		return
	}
	utils.ResponseSuccess(w, "success", resp)
}
