// Package seed provides the deterministic mock fleet the store is populated
// with at startup, plus random generators for bulking the dataset out.
package seed

import (
	"time"

	"campervan-calendar/internal/data/entity"
)

// Stations returns the fixed roster of twelve rental stations.
func Stations() []entity.Station {
	return []entity.Station{
		{ID: "1", Name: "Central Station", Location: "Downtown", AvailableVehicles: 15},
		{ID: "2", Name: "Airport Station", Location: "Airport Terminal", AvailableVehicles: 8},
		{ID: "3", Name: "Beach Station", Location: "Coastal Area", AvailableVehicles: 12},
		{ID: "4", Name: "Mountain Station", Location: "Ski Resort", AvailableVehicles: 6},
		{ID: "5", Name: "City Center Station", Location: "Shopping District", AvailableVehicles: 10},
		{ID: "6", Name: "University Station", Location: "Campus Area", AvailableVehicles: 7},
		{ID: "7", Name: "Harbor Station", Location: "Port Area", AvailableVehicles: 9},
		{ID: "8", Name: "Park Station", Location: "National Park", AvailableVehicles: 5},
		{ID: "9", Name: "Business District Station", Location: "Financial Center", AvailableVehicles: 11},
		{ID: "10", Name: "Resort Station", Location: "Luxury Resort", AvailableVehicles: 4},
		{ID: "11", Name: "Suburban Station", Location: "Residential Area", AvailableVehicles: 8},
		{ID: "12", Name: "Industrial Station", Location: "Manufacturing Zone", AvailableVehicles: 3},
	}
}

// seedBooking pins a booking to day-of-month offsets so the dataset always
// lands around "now" instead of going stale. monthOffset selects the current
// (0) or next (1) month for each endpoint.
type seedBooking struct {
	id         string
	stationID  string
	startMonth int
	startDay   int
	endMonth   int
	endDay     int
	customer   string
	vehicle    entity.VehicleType
	duration   int
}

var seedBookings = []seedBooking{
	{"1", "1", 0, 15, 0, 20, "John Smith", entity.VehicleCampervan, 5},
	{"2", "2", 0, 16, 0, 18, "Sarah Johnson", entity.VehicleRV, 2},
	{"3", "1", 0, 17, 0, 22, "Mike Wilson", entity.VehicleCampervan, 5},
	{"4", "3", 0, 18, 0, 21, "Emily Davis", entity.VehicleRV, 3},
	{"5", "2", 0, 19, 0, 25, "David Brown", entity.VehicleCampervan, 6},
	{"6", "4", 0, 21, 0, 27, "Lisa Anderson", entity.VehicleCampervan, 6},
	{"7", "5", 0, 23, 0, 25, "Robert Chen", entity.VehicleRV, 2},
	{"8", "6", 0, 26, 0, 30, "Maria Garcia", entity.VehicleCampervan, 4},
	{"9", "7", 0, 28, 1, 3, "James Wilson", entity.VehicleRV, 5},
	{"10", "8", 0, 30, 1, 6, "Jennifer Lee", entity.VehicleCampervan, 6},
	{"11", "1", 1, 1, 1, 7, "Thomas Martinez", entity.VehicleCampervan, 6},
	{"12", "9", 1, 3, 1, 5, "Amanda Taylor", entity.VehicleRV, 2},
	{"13", "10", 1, 6, 1, 12, "Christopher Rodriguez", entity.VehicleCampervan, 6},
	{"14", "11", 1, 8, 1, 10, "Jessica White", entity.VehicleRV, 2},
	{"15", "12", 1, 11, 1, 16, "Daniel Thompson", entity.VehicleCampervan, 5},
	{"16", "3", 1, 13, 1, 19, "Nicole Adams", entity.VehicleRV, 6},
	{"17", "4", 1, 15, 1, 17, "Kevin Lewis", entity.VehicleCampervan, 2},
	{"18", "5", 1, 18, 1, 23, "Rachel Green", entity.VehicleRV, 5},
	{"19", "6", 1, 21, 1, 26, "Steven Hall", entity.VehicleCampervan, 5},
	{"20", "7", 1, 24, 1, 27, "Michelle Scott", entity.VehicleRV, 3},
}

// Bookings returns the twenty seed bookings anchored around now's month.
func Bookings(now time.Time) []entity.Booking {
	out := make([]entity.Booking, len(seedBookings))
	for i, sb := range seedBookings {
		out[i] = entity.Booking{
			ID:           sb.id,
			StationID:    sb.stationID,
			StartDate:    dayOfMonth(now, sb.startMonth, sb.startDay),
			EndDate:      dayOfMonth(now, sb.endMonth, sb.endDay),
			CustomerName: sb.customer,
			VehicleType:  sb.vehicle,
			Duration:     sb.duration,
		}
	}
	return out
}

func dayOfMonth(now time.Time, monthOffset, day int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(monthOffset), day, 0, 0, 0, 0, now.Location())
}
