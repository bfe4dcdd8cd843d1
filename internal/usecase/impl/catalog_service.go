package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "travelhub/internal/delivery/context"
	"travelhub/internal/domain/entity"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/repository"
	"travelhub/internal/domain/service"
	"travelhub/internal/errors"
	"travelhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	hotelCache  service.HotelCache
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
	newEventID  func() string
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	HotelCache  service.HotelCache
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		hotelCache:  params.HotelCache,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
		newEventID:  func() string { return uuid.NewString() },
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAvailablePackages returns every package with all of its bookings.
// Dates and inventory are not considered.
func (srv *catalogService) ListAvailablePackages(ctx context.Context) ([]*usecase.PackageSummary, error) {
	pkgs, err := srv.catalogRepo.ListPackagesWithBookings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	return toPackageSummaries(pkgs, nil), nil
}

// GetPackageDetails returns a single package, or nil when it does not exist.
func (srv *catalogService) GetPackageDetails(ctx context.Context, packageID int64) (*usecase.PackageSummary, error) {
	pkg, err := srv.catalogRepo.FindPackageWithBookings(ctx, packageID)
	if errors.Is(err, repository.ErrPackageNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find package %d", packageID)
	}

	return toPackageSummary(pkg, nil), nil
}

// ListPackagesByCustomer returns the packages the customer booked, each
// carrying only that customer's bookings.
func (srv *catalogService) ListPackagesByCustomer(ctx context.Context, customerID int64) ([]*usecase.PackageSummary, error) {
	pkgs, err := srv.catalogRepo.ListPackagesBookedByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list packages for customer %d", customerID)
	}

	ownBookings := func(booking *entity.Booking) bool {
		return booking.CustomerID == customerID
	}

	return toPackageSummaries(pkgs, ownBookings), nil
}

// ListHotelsWithRooms returns every hotel with its rooms. Cache failures
// degrade to a database read.
func (srv *catalogService) ListHotelsWithRooms(ctx context.Context) ([]*usecase.HotelSummary, error) {
	hotels, hit, err := srv.hotelCache.GetHotels(ctx)
	if err != nil {
		srv.log(ctx).Warn("Hotel cache read failed", slog.Any("error", err))
	}
	if hit {
		return toHotelSummaries(hotels), nil
	}

	hotels, err = srv.catalogRepo.ListHotelsWithRooms(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hotels")
	}

	if err := srv.hotelCache.SetHotels(ctx, hotels); err != nil {
		srv.log(ctx).Warn("Hotel cache write failed", slog.Any("error", err))
	}

	return toHotelSummaries(hotels), nil
}

// BookPackage confirms a booking of a package, a flight and a room.
// The total is the sum of the three prices, fixed at creation.
func (srv *catalogService) BookPackage(ctx context.Context, input *usecase.BookPackageInput) (*usecase.BookingSummary, error) {
	var booking *entity.Booking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		pkg, err := catalogRepo.FindPackage(ctx, input.PackageID)
		if err != nil {
			return srv.lookupError(input, err, repository.ErrPackageNotFound)
		}
		flight, err := catalogRepo.FindFlight(ctx, input.FlightID)
		if err != nil {
			return srv.lookupError(input, err, repository.ErrFlightNotFound)
		}
		room, err := catalogRepo.FindRoomWithHotel(ctx, input.RoomID)
		if err != nil {
			return srv.lookupError(input, err, repository.ErrRoomNotFound)
		}

		packageID, flightID, roomID := pkg.ID, flight.ID, room.ID
		candidate := &entity.Booking{
			CustomerID:      input.CustomerID,
			TravelPackageID: &packageID,
			FlightID:        &flightID,
			HotelRoomID:     &roomID,
			BookingDate:     srv.now().UTC(),
			TotalAmount:     pkg.Price.Add(flight.Price).Add(room.PricePerNight),
			Status:          entity.BookingStatusConfirmed,
		}
		if err := repoFactory.BookingRepo().Add(ctx, candidate); err != nil {
			return errors.Wrap(err, "failed to add booking")
		}

		candidate.TravelPackage = pkg
		candidate.Flight = flight
		candidate.HotelRoom = room
		booking = candidate

		return nil
	})
	if err != nil {
		var invalid *domainerrors.InvalidBookingError
		if errors.As(err, &invalid) {
			srv.log(ctx).Info("Booking rejected", slog.String("details", invalid.Details()))

			return nil, err
		}

		srv.log(ctx).Error("Failed to execute booking transaction", slog.Int64("customerID", input.CustomerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute booking transaction")
	}

	srv.log(ctx).Info("Booking confirmed",
		slog.Int64("bookingID", booking.ID),
		slog.Int64("customerID", booking.CustomerID),
		slog.String("totalAmount", booking.TotalAmount.StringFixed(2)))

	srv.publishBookingConfirmed(ctx, booking)

	return toBookingSummary(booking), nil
}

func (srv *catalogService) lookupError(input *usecase.BookPackageInput, err, notFound error) error {
	if errors.Is(err, notFound) {
		return domainerrors.NewInvalidBookingError(input.PackageID, input.FlightID, input.RoomID)
	}

	return errors.Wrap(err, "failed to load booking reference")
}

// publishBookingConfirmed runs after commit. A failed publish never undoes the booking.
func (srv *catalogService) publishBookingConfirmed(ctx context.Context, booking *entity.Booking) {
	event := &service.BookingConfirmedEvent{
		EventID:     srv.newEventID(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		BookingID:   booking.ID,
		CustomerID:  booking.CustomerID,
		PackageID:   derefID(booking.TravelPackageID),
		FlightID:    derefID(booking.FlightID),
		RoomID:      derefID(booking.HotelRoomID),
		TotalAmount: booking.TotalAmount,
		BookingDate: booking.BookingDate,
		Status:      booking.Status.String(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := srv.publisher.PublishBookingConfirmed(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish booking event",
			slog.Int64("bookingID", booking.ID),
			slog.String("eventID", event.EventID),
			slog.Any("error", err))
	}
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}

	return *id
}
