package wire

import (
	"campervan-calendar/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStation(r chi.Router, stationHandler *adaptor.StationHandler) {
	// GET /api/stations - list the full station roster
	r.Get("/api/stations", stationHandler.GetStations)

	// GET /api/stations/search?q= - autocomplete source, 2-char minimum
	r.Get("/api/stations/search", stationHandler.SearchStations)
}
