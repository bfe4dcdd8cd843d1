package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingModel mirrors the 'bookings' table. The catalog references are nullable.
type BookingModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64           `gorm:"not null;index"`
	TravelPackageID *int64          `gorm:"index"`
	FlightID        *int64          `gorm:"index"`
	HotelRoomID     *int64          `gorm:"index"`
	BookingDate     time.Time       `gorm:"not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Confirmed'"`

	TravelPackage *TravelPackageModel `gorm:"foreignKey:TravelPackageID"`
	Flight        *FlightModel        `gorm:"foreignKey:FlightID"`
	HotelRoom     *HotelRoomModel     `gorm:"foreignKey:HotelRoomID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
