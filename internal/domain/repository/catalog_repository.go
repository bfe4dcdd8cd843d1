package repository

import (
	"context"
	"errors"

	"travelhub/internal/domain/entity"
)

var (
	// ErrPackageNotFound is returned when a travel package lookup finds nothing.
	ErrPackageNotFound = errors.New("travel package not found")

	// ErrFlightNotFound is returned when a flight lookup finds nothing.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrRoomNotFound is returned when a hotel room lookup finds nothing.
	ErrRoomNotFound = errors.New("hotel room not found")
)

// CatalogRepository serves the read shapes the catalog and booking use cases need.
// Each method loads exactly the associations its result exposes.
type CatalogRepository interface {
	// ListPackagesWithBookings returns all packages, each with its bookings and
	// every booking's flight and room (with hotel).
	ListPackagesWithBookings(ctx context.Context) ([]*entity.TravelPackage, error)

	// FindPackageWithBookings returns one package loaded like ListPackagesWithBookings.
	FindPackageWithBookings(ctx context.Context, id int64) (*entity.TravelPackage, error)

	// ListPackagesBookedByCustomer returns the distinct packages having at least one booking
	// by the customer. Bookings are loaded for all customers; callers filter them.
	ListPackagesBookedByCustomer(ctx context.Context, customerID int64) ([]*entity.TravelPackage, error)

	// ListHotelsWithRooms returns all hotels with their rooms.
	ListHotelsWithRooms(ctx context.Context) ([]*entity.Hotel, error)

	// FindPackage retrieves a package without associations.
	FindPackage(ctx context.Context, id int64) (*entity.TravelPackage, error)

	// FindFlight retrieves a flight.
	FindFlight(ctx context.Context, id int64) (*entity.Flight, error)

	// FindRoomWithHotel retrieves a room together with its hotel.
	FindRoomWithHotel(ctx context.Context, id int64) (*entity.HotelRoom, error)
}
