package calendar

import (
	"time"

	"campervan-calendar/internal/data/entity"
)

// HoursPerDay is the number of hour rows in a day column.
const HoursPerDay = 24

// Placement is one booking bar positioned inside a cell.
type Placement struct {
	Booking  entity.Booking
	Geometry Geometry
}

// DayColumn holds the 24 hour cells of a single calendar day. An hour with
// no active bookings has a nil slice.
type DayColumn struct {
	Day   time.Time
	Hours [HoursPerDay][]Placement
}

// RenderModel is the complete, ephemeral render instruction set for one
// visible range. It carries no state of its own and is recomputed from
// (days, bookings) on every pass.
type RenderModel struct {
	Days []DayColumn
}

// AssembleRange composes the layout pipeline over every (day, hour) cell:
// per-day overlap filter, per-hour occupancy, then per-booking geometry with
// stacking indices taken from the occupancy order. Pure and deterministic;
// identical inputs produce an identical model. Input sizes are small (a few
// hundred bookings against at most 7x24 cells), so nothing is cached.
func AssembleRange(days []time.Time, bookings []entity.Booking) RenderModel {
	model := RenderModel{Days: make([]DayColumn, len(days))}

	for i, day := range days {
		col := DayColumn{Day: StartOfDay(day)}
		dayBookings := BookingsForDay(day, bookings)

		for hour := 0; hour < HoursPerDay; hour++ {
			active := BookingsForHour(day, hour, dayBookings)
			if len(active) == 0 {
				continue
			}
			cell := make([]Placement, len(active))
			for idx, b := range active {
				cell[idx] = Placement{
					Booking:  b,
					Geometry: geometryFor(b, day, hour, idx),
				}
			}
			col.Hours[hour] = cell
		}
		model.Days[i] = col
	}
	return model
}
