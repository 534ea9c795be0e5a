// main.go
package main

import (
	"log"
	"math/rand"
	"time"

	"campervan-calendar/cmd"
	"campervan-calendar/internal/data/seed"
	"campervan-calendar/internal/data/store"
	"campervan-calendar/internal/metrics"
	"campervan-calendar/internal/wire"
	"campervan-calendar/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	metrics.Register()

	// Seed the in-memory store
	now := time.Now()
	stations := seed.Stations()
	bookings := seed.Bookings(now)
	if config.Seed.RandomBookings > 0 {
		r := rand.New(rand.NewSource(config.Seed.RandomSeed))
		bookings = append(bookings, seed.RandomBookings(
			r, stations, config.Seed.RandomBookings,
			now.AddDate(0, 0, -14), now.AddDate(0, 2, 0),
		)...)
	}

	latencies := store.Latencies{}
	if config.Latency.Enabled {
		latencies = store.DefaultLatencies().Scale(config.Latency.Scale)
	}
	st := store.NewStore(stations, bookings, latencies, logger)

	logger.Info("Store seeded",
		zap.Int("stations", len(stations)),
		zap.Int("bookings", len(bookings)),
		zap.Bool("latency", config.Latency.Enabled),
	)

	// Wire all dependencies
	app := wire.Wiring(st, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
