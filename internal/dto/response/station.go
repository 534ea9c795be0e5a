package response

import "campervan-calendar/internal/data/entity"

type StationResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Location          string `json:"location"`
	AvailableVehicles int    `json:"available_vehicles"`
}

func StationToResponse(st entity.Station) StationResponse {
	return StationResponse{
		ID:                st.ID,
		Name:              st.Name,
		Location:          st.Location,
		AvailableVehicles: st.AvailableVehicles,
	}
}

func StationsToResponse(stations []entity.Station) []StationResponse {
	out := make([]StationResponse, len(stations))
	for i, st := range stations {
		out[i] = StationToResponse(st)
	}
	return out
}
