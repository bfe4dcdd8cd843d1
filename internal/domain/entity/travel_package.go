package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelPackage is a sellable trip with a fixed price and date range.
type TravelPackage struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	Bookings    []*Booking // Populated only by queries that eager-load bookings.
}
