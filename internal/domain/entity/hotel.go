package entity

import "github.com/shopspring/decimal"

// Hotel groups bookable rooms at one location.
type Hotel struct {
	ID       int64
	Name     string
	Location string
	Rooms    []*HotelRoom
}

// HotelRoom is a room type offered by a hotel.
type HotelRoom struct {
	ID             int64
	HotelID        int64
	RoomType       string
	AvailableUnits int
	PricePerNight  decimal.Decimal
	Hotel          *Hotel // Set when the owning hotel was loaded with the room.
}
