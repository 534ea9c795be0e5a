package response

import (
	"time"

	"campervan-calendar/internal/data/entity"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	StationID    string    `json:"station_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CustomerName string    `json:"customer_name"`
	VehicleType  string    `json:"vehicle_type"`
	Duration     int       `json:"duration"`
}

func BookingToResponse(b entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		StationID:    b.StationID,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		CustomerName: b.CustomerName,
		VehicleType:  string(b.VehicleType),
		Duration:     b.Duration,
	}
}

func BookingsToResponse(bookings []entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
