package usecase

import (
	"context"
	"fmt"

	"campervan-calendar/internal/data/store"
	"campervan-calendar/internal/dto/request"
	"campervan-calendar/internal/dto/response"
	"campervan-calendar/internal/metrics"
	"campervan-calendar/pkg/utils"

	"go.uber.org/zap"
)

type StationService interface {
	GetAllStations(ctx context.Context) ([]response.StationResponse, error)
	SearchStations(ctx context.Context, query string) ([]response.StationResponse, error)
}

type stationService struct {
	store *store.Store
	log   *zap.Logger
}

func NewStationService(st *store.Store, log *zap.Logger) StationService {
	return &stationService{
		store: st,
		log:   log.With(zap.String("service", "station")),
	}
}

func (s *stationService) GetAllStations(ctx context.Context) ([]response.StationResponse, error) {
	stations, err := s.store.Station.All(ctx)
	if err != nil {
		s.log.Error("Failed to list stations", zap.Error(err))
		return nil, fmt.Errorf("list stations: %w", err)
	}
	return response.StationsToResponse(stations), nil
}

func (s *stationService) SearchStations(ctx context.Context, query string) ([]response.StationResponse, error) {
	req := request.SearchStationsRequest{Query: query}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Station search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	metrics.IncStationSearch()

	stations, err := s.store.Station.Search(ctx, query)
	if err != nil {
		s.log.Error("Failed to search stations", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("search stations: %w", err)
	}

	s.log.Info("Stations searched",
		zap.String("query", query),
		zap.Int("matches", len(stations)),
	)
	return response.StationsToResponse(stations), nil
}
