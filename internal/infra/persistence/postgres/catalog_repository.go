package postgres

import (
	"context"

	"travelhub/internal/domain/entity"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/repository"
	"travelhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// catalogRepository implements repository.CatalogRepository using GORM preloads.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// packagesWithBookings loads packages with bookings, each booking's flight and its room with hotel.
func (repo *catalogRepository) packagesWithBookings(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Bookings", orderByID).
		Preload("Bookings.Flight").
		Preload("Bookings.HotelRoom.Hotel")
}

func (repo *catalogRepository) ListPackagesWithBookings(ctx context.Context) ([]*entity.TravelPackage, error) {
	var rows []*model.TravelPackageModel
	if err := repo.packagesWithBookings(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list packages")
	}

	return mapPackages(rows), nil
}

func (repo *catalogRepository) FindPackageWithBookings(ctx context.Context, id int64) (*entity.TravelPackage, error) {
	var row model.TravelPackageModel
	if err := repo.packagesWithBookings(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find package")
	}

	return toTravelPackageDomain(&row), nil
}

func (repo *catalogRepository) ListPackagesBookedByCustomer(ctx context.Context, customerID int64) ([]*entity.TravelPackage, error) {
	bookedBy := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Select("travel_package_id").
		Where("customer_id = ? AND travel_package_id IS NOT NULL", customerID)

	var rows []*model.TravelPackageModel
	if err := repo.packagesWithBookings(ctx).Where("id IN (?)", bookedBy).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list packages by customer")
	}

	return mapPackages(rows), nil
}

func (repo *catalogRepository) ListHotelsWithRooms(ctx context.Context) ([]*entity.Hotel, error) {
	var rows []*model.HotelModel
	if err := repo.db.WithContext(ctx).Preload("Rooms", orderByID).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list hotels")
	}

	hotels := make([]*entity.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, toHotelDomain(row))
	}

	return hotels, nil
}

func (repo *catalogRepository) FindPackage(ctx context.Context, id int64) (*entity.TravelPackage, error) {
	var row model.TravelPackageModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find package")
	}

	return toTravelPackageDomain(&row), nil
}

func (repo *catalogRepository) FindFlight(ctx context.Context, id int64) (*entity.Flight, error) {
	var row model.FlightModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFlightNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find flight")
	}

	return toFlightDomain(&row), nil
}

func (repo *catalogRepository) FindRoomWithHotel(ctx context.Context, id int64) (*entity.HotelRoom, error) {
	var row model.HotelRoomModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Preload("Hotel").Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find room")
	}

	return toHotelRoomDomain(&row), nil
}

func mapPackages(rows []*model.TravelPackageModel) []*entity.TravelPackage {
	packages := make([]*entity.TravelPackage, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, toTravelPackageDomain(row))
	}

	return packages
}
