package store

import (
	"context"
	"strings"

	"campervan-calendar/internal/data/entity"

	"go.uber.org/zap"
)

type stationStore struct {
	stations []entity.Station
	lat      Latencies
	log      *zap.Logger
}

func newStationStore(stations []entity.Station, lat Latencies, log *zap.Logger) *stationStore {
	return &stationStore{
		stations: stations,
		lat:      lat,
		log:      log.With(zap.String("store", "station")),
	}
}

func (s *stationStore) All(ctx context.Context) ([]entity.Station, error) {
	if err := wait(ctx, s.lat.AllStations); err != nil {
		return nil, err
	}
	out := make([]entity.Station, len(s.stations))
	copy(out, s.stations)
	return out, nil
}

// Search matches the query as a case-insensitive substring of the station
// name or its location.
func (s *stationStore) Search(ctx context.Context, query string) ([]entity.Station, error) {
	if err := wait(ctx, s.lat.SearchStations); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var out []entity.Station
	for _, st := range s.stations {
		if strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.Location), q) {
			out = append(out, st)
		}
	}

	s.log.Debug("Station search", zap.String("query", query), zap.Int("matches", len(out)))
	return out, nil
}

func (s *stationStore) ByID(ctx context.Context, id string) (*entity.Station, error) {
	if err := wait(ctx, s.lat.AllStations); err != nil {
		return nil, err
	}
	for _, st := range s.stations {
		if st.ID == id {
			found := st
			return &found, nil
		}
	}
	return nil, nil
}
