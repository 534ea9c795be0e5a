package adaptor

import (
	"net/http"
	"strings"

	"campervan-calendar/internal/usecase"
	"campervan-calendar/pkg/utils"

	"go.uber.org/zap"
)

type StationHandler struct {
	service usecase.StationService
	log     *zap.Logger
}

func NewStationHandler(service usecase.StationService, log *zap.Logger) *StationHandler {
	return &StationHandler{
		service: service,
		log:     log.With(zap.String("handler", "station")),
	}
}

// GetStations handles GET /api/stations
func (h *StationHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.service.GetAllStations(r.Context())
	if err != nil {
		h.log.Error("Get stations failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to load stations")
		return
	}
	utils.ResponseSuccess(w, "success", stations)
}

// SearchStations handles GET /api/stations/search?q=
func (h *StationHandler) SearchStations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	stations, err := h.service.SearchStations(r.Context(), query)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Search stations failed", zap.Error(err), zap.String("query", query))
		utils.ResponseInternalError(w, "Failed to search stations")
		return
	}
	utils.ResponseSuccess(w, "success", stations)
}
