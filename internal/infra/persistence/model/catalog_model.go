package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelPackageModel mirrors the 'travel_packages' table.
type TravelPackageModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StartDate   time.Time       `gorm:"not null"`
	EndDate     time.Time       `gorm:"not null"`

	Bookings []BookingModel `gorm:"foreignKey:TravelPackageID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (TravelPackageModel) TableName() string {
	return "travel_packages"
}

// FlightModel mirrors the 'flights' table.
type FlightModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	FlightNumber  string          `gorm:"type:varchar(20);not null"`
	DepartureCity string          `gorm:"type:varchar(100);not null"`
	ArrivalCity   string          `gorm:"type:varchar(100);not null"`
	DepartureTime time.Time       `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Bookings []BookingModel `gorm:"foreignKey:FlightID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (FlightModel) TableName() string {
	return "flights"
}

// HotelModel mirrors the 'hotels' table. Deleting a hotel removes its rooms.
type HotelModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(200);not null"`
	Location string `gorm:"type:varchar(200);not null"`

	Rooms []HotelRoomModel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (HotelModel) TableName() string {
	return "hotels"
}

// HotelRoomModel mirrors the 'hotel_rooms' table. HotelID references hotels.id.
type HotelRoomModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	HotelID        int64           `gorm:"not null;index"`
	RoomType       string          `gorm:"type:varchar(50);not null"`
	AvailableUnits int             `gorm:"not null"`
	PricePerNight  decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Hotel    *HotelModel    `gorm:"foreignKey:HotelID"`
	Bookings []BookingModel `gorm:"foreignKey:HotelRoomID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (HotelRoomModel) TableName() string {
	return "hotel_rooms"
}
