package entity

// Station is a rental location with a fixed vehicle inventory. Stations are
// read-only reference data for the lifetime of the process.
type Station struct {
	ID                string
	Name              string
	Location          string
	AvailableVehicles int
}
