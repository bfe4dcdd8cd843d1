package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flight is a scheduled flight that can be attached to a booking.
type Flight struct {
	ID            int64
	FlightNumber  string
	DepartureCity string
	ArrivalCity   string
	DepartureTime time.Time
	Price         decimal.Decimal
}
