package calendar

import (
	"time"

	"campervan-calendar/internal/data/entity"
)

// baseZ is the z-order assigned to the first booking stacked in a cell.
const baseZ = 10

// stackStep and minWidth control the fixed-step horizontal cascade for
// overlapping bookings. This is deliberately not an interval-graph packing:
// horizontal space freed by an earlier booking ending is never reclaimed.
// Concurrent bookings per cell are bounded in practice, so the cascade stays
// readable.
const (
	stackStep = 10.0
	minWidth  = 10.0
)

// Geometry positions one booking bar inside an hour cell. Top, Height, Left
// and Width are percentages of the cell box; Z orders overlapping bars so a
// later stack index renders above an earlier one.
type Geometry struct {
	Top    float64
	Height float64
	Left   float64
	Width  float64
	Z      int
}

// BookingsForDay filters bookings down to those visible on the given
// calendar day: the start falls on the day, the end falls on the day, or the
// day's midnight lies inside the inclusive [start, end] interval. Source
// order is preserved so downstream stacking is deterministic. Malformed
// ranges (end before start) render as nothing.
//
// Note the boundary asymmetry with BookingsForHour: the day filter is
// inclusive while the hour filter is strict. A booking ending exactly at
// midnight still appears on its last calendar day, but not in any hour cell
// of the following day. Both behaviors are load-bearing; do not unify them.
func BookingsForDay(day time.Time, bookings []entity.Booking) []entity.Booking {
	var out []entity.Booking
	dayStart := StartOfDay(day)
	for _, b := range bookings {
		if b.EndDate.Before(b.StartDate) {
			continue
		}
		if SameDay(b.StartDate, day) || SameDay(b.EndDate, day) ||
			(!dayStart.Before(b.StartDate) && !dayStart.After(b.EndDate)) {
			out = append(out, b)
		}
	}
	return out
}

// BookingsForHour returns the bookings active during hour h of the given
// day. The hour window is [day@h:00:00, day@h:59:59] and the activity test
// is strict on both ends: start < windowEnd AND end > windowStart. A booking
// ending exactly on the hour is therefore excluded from that hour's cell,
// and one starting exactly at h:59:59 likewise. This test is the single
// source of truth for cell visibility.
func BookingsForHour(day time.Time, hour int, dayBookings []entity.Booking) []entity.Booking {
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	windowEnd := windowStart.Add(59*time.Minute + 59*time.Second)

	var out []entity.Booking
	for _, b := range dayBookings {
		if b.EndDate.Before(b.StartDate) {
			continue
		}
		if b.StartDate.Before(windowEnd) && b.EndDate.After(windowStart) {
			out = append(out, b)
		}
	}
	return out
}

// verticalExtent computes the top offset and height of a booking bar within
// the (day, hour) cell, as percentages of the cell height. Four mutually
// exclusive cases, keyed on whether the booking starts and/or ends in this
// exact cell:
//
//   - starts and ends here: bar covers the booked minutes only
//   - starts here: bar runs from the start minute to the cell bottom
//   - ends here: bar runs from the cell top to the end minute
//   - passes through: bar fills the cell
//
// Across consecutive cells this yields one visually continuous block,
// tapered only at its true start and end minute offsets.
func verticalExtent(b entity.Booking, day time.Time, hour int) (top, height float64) {
	startHere := SameDay(b.StartDate, day) && b.StartDate.Hour() == hour
	endHere := SameDay(b.EndDate, day) && b.EndDate.Hour() == hour

	if startHere {
		top = float64(b.StartDate.Minute()) / 60 * 100
	}

	switch {
	case startHere && endHere:
		height = b.EndDate.Sub(b.StartDate).Hours() * 100
	case startHere:
		height = float64(60-b.StartDate.Minute()) / 60 * 100
	case endHere:
		height = float64(b.EndDate.Minute()) / 60 * 100
	default:
		height = 100
	}
	return top, height
}

// stackOffset assigns the horizontal cascade for the booking at the given
// stack index within a cell: each step shifts the bar right and narrows it,
// with the width floored so deep stacks stay clickable.
func stackOffset(index int) (left, width float64, z int) {
	left = float64(index) * stackStep
	width = 100 - left
	if width < minWidth {
		width = minWidth
	}
	return left, width, baseZ + index
}

// geometryFor combines the vertical extent and the stacking cascade for one
// booking in one cell.
func geometryFor(b entity.Booking, day time.Time, hour, index int) Geometry {
	top, height := verticalExtent(b, day, hour)
	left, width, z := stackOffset(index)
	return Geometry{Top: top, Height: height, Left: left, Width: width, Z: z}
}
