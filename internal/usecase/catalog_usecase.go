package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BookPackageInput identifies the customer and the three catalog items to book.
type BookPackageInput struct {
	CustomerID int64
	PackageID  int64
	FlightID   int64
	RoomID     int64
}

// PackageSummary is the outward projection of a travel package.
type PackageSummary struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	StartDate   time.Time         `json:"startDate"`
	EndDate     time.Time         `json:"endDate"`
	Bookings    []*BookingSummary `json:"bookings"`
}

// BookingSummary is the outward projection of a booking. The catalog
// fields are nil when the reference is absent.
type BookingSummary struct {
	ID           int64           `json:"id"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	BookingDate  time.Time       `json:"bookingDate"`
	Status       string          `json:"status"`
	FlightNumber *string         `json:"flightNumber"`
	HotelName    *string         `json:"hotelName"`
	RoomType     *string         `json:"roomType"`
}

// HotelSummary is the outward projection of a hotel with its rooms.
type HotelSummary struct {
	ID       int64               `json:"id"`
	Name     string              `json:"name"`
	Location string              `json:"location"`
	Rooms    []*HotelRoomSummary `json:"rooms"`
}

// HotelRoomSummary is the outward projection of a hotel room.
type HotelRoomSummary struct {
	ID             int64           `json:"id"`
	RoomType       string          `json:"roomType"`
	AvailableUnits int             `json:"availableUnits"`
	PricePerNight  decimal.Decimal `json:"pricePerNight"`
}

// CatalogUsecase defines catalog browsing and booking operations.
type CatalogUsecase interface {
	// ListAvailablePackages returns every package with all of its bookings.
	ListAvailablePackages(ctx context.Context) ([]*PackageSummary, error)

	// GetPackageDetails returns nil without error when the package does not exist.
	GetPackageDetails(ctx context.Context, packageID int64) (*PackageSummary, error)

	// ListPackagesByCustomer returns the packages a customer booked, listing only that customer's bookings.
	ListPackagesByCustomer(ctx context.Context, customerID int64) ([]*PackageSummary, error)

	// ListHotelsWithRooms returns every hotel with its rooms.
	ListHotelsWithRooms(ctx context.Context) ([]*HotelSummary, error)

	// BookPackage validates the references, prices the booking and persists it.
	BookPackage(ctx context.Context, input *BookPackageInput) (*BookingSummary, error)
}
