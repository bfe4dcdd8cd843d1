package postgres

import (
	"travelhub/internal/domain/entity"
	"travelhub/internal/domain/repository"
	"travelhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

var bookingColumns = map[string]string{
	"id":              "id",
	"customerId":      "customer_id",
	"travelPackageId": "travel_package_id",
	"flightId":        "flight_id",
	"hotelRoomId":     "hotel_room_id",
	"status":          "status",
}

// NewBookingRepository returns the generic repository bound to the bookings table.
func NewBookingRepository(db *gorm.DB) repository.Repository[entity.Booking] {
	return newGormRepository[entity.Booking, model.BookingModel](
		db,
		"booking",
		bookingColumns,
		fromBookingDomain,
		toBookingDomain,
		syncBooking,
	)
}
