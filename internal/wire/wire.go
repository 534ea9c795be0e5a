package wire

import (
	"net/http"

	"campervan-calendar/internal/adaptor"
	"campervan-calendar/internal/data/store"
	"campervan-calendar/internal/usecase"
	"campervan-calendar/pkg/middleware"
	"campervan-calendar/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(st *store.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(st, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireStation(r, handler.Station)
	wireBooking(r, handler.Booking)
	wireCalendar(r, handler.Calendar)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
