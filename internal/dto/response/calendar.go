package response

import "campervan-calendar/internal/calendar"

type GeometryResponse struct {
	TopPercent    float64 `json:"top_percent"`
	HeightPercent float64 `json:"height_percent"`
	LeftPercent   float64 `json:"left_percent"`
	WidthPercent  float64 `json:"width_percent"`
	ZIndex        int     `json:"z_index"`
}

type CalendarEntryResponse struct {
	Booking  BookingResponse  `json:"booking"`
	Geometry GeometryResponse `json:"geometry"`
}

type CalendarHourResponse struct {
	Hour    int                     `json:"hour"`
	Entries []CalendarEntryResponse `json:"entries"`
}

type CalendarDayResponse struct {
	Date  string                 `json:"date"`
	Hours []CalendarHourResponse `json:"hours"`
}

type CalendarResponse struct {
	StationID string                `json:"station_id"`
	Mode      string                `json:"mode"`
	Anchor    string                `json:"anchor"`
	Days      []CalendarDayResponse `json:"days"`
}

// RenderModelToResponse flattens the engine's render model for the wire.
// Hours with no active bookings are omitted; the client reconstructs the
// empty cells from the 24-row grid it draws anyway.
func RenderModelToResponse(stationID string, rng calendar.VisibleRange, model calendar.RenderModel) *CalendarResponse {
	resp := &CalendarResponse{
		StationID: stationID,
		Mode:      string(rng.Mode),
		Anchor:    calendar.StartOfDay(rng.Anchor).Format("2006-01-02"),
		Days:      make([]CalendarDayResponse, len(model.Days)),
	}

	for i, col := range model.Days {
		day := CalendarDayResponse{Date: col.Day.Format("2006-01-02")}
		for hour, cell := range col.Hours {
			if len(cell) == 0 {
				continue
			}
			entries := make([]CalendarEntryResponse, len(cell))
			for j, p := range cell {
				entries[j] = CalendarEntryResponse{
					Booking: BookingToResponse(p.Booking),
					Geometry: GeometryResponse{
						TopPercent:    p.Geometry.Top,
						HeightPercent: p.Geometry.Height,
						LeftPercent:   p.Geometry.Left,
						WidthPercent:  p.Geometry.Width,
						ZIndex:        p.Geometry.Z,
					},
				}
			}
			day.Hours = append(day.Hours, CalendarHourResponse{Hour: hour, Entries: entries})
		}
		resp.Days[i] = day
	}
	return resp
}
