package entity

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrStationNotFound  = errors.New("station not found")
	ErrInvalidDateRange = errors.New("end date before start date")
)
