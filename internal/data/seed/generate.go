package seed

import (
	"math/rand"
	"time"

	"campervan-calendar/internal/data/entity"

	"github.com/google/uuid"
)

var customerNames = []string{
	"John Smith", "Sarah Johnson", "Mike Wilson", "Emily Davis",
	"David Brown", "Lisa Anderson", "Robert Chen", "Maria Garcia",
	"James Wilson", "Jennifer Lee", "Thomas Martinez", "Amanda Taylor",
	"Christopher Rodriguez", "Jessica White", "Daniel Thompson", "Nicole Adams",
	"Kevin Lewis", "Rachel Green", "Steven Hall", "Michelle Scott",
	"Alex Turner", "Sophie Williams", "Michael Johnson", "Emma Davis",
	"Ryan Miller", "Olivia Taylor", "William Brown", "Ava Wilson",
	"Ethan Anderson", "Isabella Martinez", "Noah Garcia", "Mia Rodriguez",
	"Lucas Lee", "Charlotte White", "Mason Thompson", "Amelia Adams",
	"Logan Lewis", "Harper Green", "Jacob Hall", "Evelyn Scott",
	"Sebastian Turner",
}

var vehicleTypes = []entity.VehicleType{
	entity.VehicleCampervan,
	entity.VehicleRV,
	entity.VehicleMotorhome,
	entity.VehicleTravelTrailer,
}

// RandomBookings generates n bookings spread over the stations, each 1-7
// days long and starting within the [from, to) window. IDs are UUIDs so
// generated bookings never collide with the fixed seed set.
func RandomBookings(r *rand.Rand, stations []entity.Station, n int, from, to time.Time) []entity.Booking {
	if n <= 0 || len(stations) == 0 || !to.After(from) {
		return nil
	}

	window := to.Sub(from)
	out := make([]entity.Booking, n)
	for i := range out {
		start := from.Add(time.Duration(r.Int63n(int64(window))))
		// Snap to the top of an hour so generated bars line up with cells.
		start = start.Truncate(time.Hour)
		end := start.AddDate(0, 0, 1+r.Intn(7))

		out[i] = entity.Booking{
			ID:           uuid.NewString(),
			StationID:    stations[r.Intn(len(stations))].ID,
			StartDate:    start,
			EndDate:      end,
			CustomerName: customerNames[r.Intn(len(customerNames))],
			VehicleType:  vehicleTypes[r.Intn(len(vehicleTypes))],
			Duration:     entity.DurationDays(start, end),
		}
	}
	return out
}
