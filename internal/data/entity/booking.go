package entity

import (
	"math"
	"time"
)

type VehicleType string

const (
	VehicleCampervan     VehicleType = "Campervan"
	VehicleRV            VehicleType = "RV"
	VehicleMotorhome     VehicleType = "Motorhome"
	VehicleTravelTrailer VehicleType = "Travel Trailer"
)

// Booking is an immutable snapshot of a reservation. Rescheduling never
// mutates a booking in place; it produces a replacement snapshot with the
// same ID via Rescheduled.
type Booking struct {
	ID           string
	StationID    string
	StartDate    time.Time
	EndDate      time.Time
	CustomerName string
	VehicleType  VehicleType
	Duration     int
}

// DurationDays is the inclusive day count ceil((end-start)/24h)+1. Two
// midnights n days apart yield n+1, not n. That off-by-one is part of the
// historical contract and is kept as is.
func DurationDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// Rescheduled returns a copy of b with the new date range and a recomputed
// duration. The caller is expected to have validated end >= start.
func (b Booking) Rescheduled(start, end time.Time) Booking {
	b.StartDate = start
	b.EndDate = end
	b.Duration = DurationDays(start, end)
	return b
}
