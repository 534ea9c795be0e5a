package request

type SearchStationsRequest struct {
	Query string `json:"query" validate:"required,min=2"`
}

type CalendarViewRequest struct {
	StationID string `json:"station_id" validate:"required"`
	Anchor    string `json:"anchor" validate:"omitempty,datetime=2006-01-02"`
	Mode      string `json:"mode" validate:"omitempty,oneof=week 3day"`
}
