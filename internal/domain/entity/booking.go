package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// BookingStatusConfirmed is the only status the system produces.
const BookingStatusConfirmed BookingStatus = "Confirmed"

// String returns the textual form used in responses.
func (s BookingStatus) String() string {
	return string(s)
}

// Booking links a customer to a package, a flight and a hotel room.
// The references are optional at the storage level; BookPackage always sets all three.
type Booking struct {
	ID              int64
	CustomerID      int64
	TravelPackageID *int64
	FlightID        *int64
	HotelRoomID     *int64
	BookingDate     time.Time
	TotalAmount     decimal.Decimal // Computed once at creation and never recomputed.
	Status          BookingStatus

	TravelPackage *TravelPackage
	Flight        *Flight
	HotelRoom     *HotelRoom // HotelRoom.Hotel is loaded alongside when present.
}
