package postgres

import (
	"context"
	"testing"
	"time"

	"travelhub/internal/domain/entity"
	"travelhub/internal/domain/repository"
	"travelhub/internal/errors"
	"travelhub/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// newSQLiteDB opens a migrated in-memory database with foreign keys enforced.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)

	return n
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)

	require.NoError(t, SeedCatalog(ctx, db, seedNow))
	// Re-running leaves existing ids untouched
	require.NoError(t, SeedCatalog(ctx, db, seedNow.AddDate(0, 0, 1)))

	assert.Equal(t, int64(1), countRows(t, db, &model.TravelPackageModel{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.FlightModel{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.HotelModel{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.HotelRoomModel{}))

	repo := NewCatalogRepository(db)

	pkg, err := repo.FindPackage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Beach Getaway", pkg.Name)
	assert.True(t, pkg.Price.Equal(decimal.NewFromInt(500)), "price was %s", pkg.Price)
	assert.True(t, seedNow.AddDate(0, 0, 30).Equal(pkg.StartDate))

	flight, err := repo.FindFlight(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "AA123", flight.FlightNumber)
	assert.True(t, flight.Price.Equal(decimal.NewFromInt(200)), "price was %s", flight.Price)

	room, err := repo.FindRoomWithHotel(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Double", room.RoomType)
	assert.Equal(t, 10, room.AvailableUnits)
	assert.True(t, room.PricePerNight.Equal(decimal.NewFromInt(150)), "price was %s", room.PricePerNight)
	require.NotNil(t, room.Hotel)
	assert.Equal(t, "Seaside Inn", room.Hotel.Name)
	assert.Equal(t, "Miami Beach", room.Hotel.Location)
}

type catalogFixture struct {
	repo        repository.CatalogRepository
	alice, bob  int64
	unbookedPkg int64
}

// newCatalogFixture seeds the catalog, adds an unbooked package and books package 1
// twice for alice and once for bob.
func newCatalogFixture(t *testing.T) catalogFixture {
	t.Helper()

	ctx := context.Background()
	db := newSQLiteDB(t)
	require.NoError(t, SeedCatalog(ctx, db, seedNow))

	extra := &model.TravelPackageModel{
		ID:        2,
		Name:      "City Break",
		Price:     decimal.NewFromInt(300),
		StartDate: seedNow.AddDate(0, 0, 10),
		EndDate:   seedNow.AddDate(0, 0, 12),
	}
	require.NoError(t, db.Create(extra).Error)

	customers := NewCustomerRepository(db)
	alice := &entity.Customer{Name: "Alice", Email: "alice@example.com", PasswordHash: "h1", CreatedAt: seedNow}
	bob := &entity.Customer{Name: "Bob", Email: "bob@example.com", PasswordHash: "h2", CreatedAt: seedNow}
	require.NoError(t, customers.Add(ctx, alice))
	require.NoError(t, customers.Add(ctx, bob))

	bookings := NewBookingRepository(db)
	for _, customerID := range []int64{alice.ID, alice.ID, bob.ID} {
		packageID, flightID, roomID := int64(1), int64(1), int64(1)
		require.NoError(t, bookings.Add(ctx, &entity.Booking{
			CustomerID:      customerID,
			TravelPackageID: &packageID,
			FlightID:        &flightID,
			HotelRoomID:     &roomID,
			BookingDate:     seedNow,
			TotalAmount:     decimal.NewFromInt(850),
			Status:          entity.BookingStatusConfirmed,
		}))
	}

	return catalogFixture{
		repo:        NewCatalogRepository(db),
		alice:       alice.ID,
		bob:         bob.ID,
		unbookedPkg: extra.ID,
	}
}

func TestCatalogRepository_ListPackagesWithBookings(t *testing.T) {
	f := newCatalogFixture(t)

	packages, err := f.repo.ListPackagesWithBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 2)

	booked := packages[0]
	assert.Equal(t, int64(1), booked.ID)
	require.Len(t, booked.Bookings, 3)
	for _, b := range booked.Bookings {
		require.NotNil(t, b.Flight)
		assert.Equal(t, "AA123", b.Flight.FlightNumber)
		require.NotNil(t, b.HotelRoom)
		assert.Equal(t, "Double", b.HotelRoom.RoomType)
		require.NotNil(t, b.HotelRoom.Hotel)
		assert.Equal(t, "Seaside Inn", b.HotelRoom.Hotel.Name)
		assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(850)))
		assert.Equal(t, entity.BookingStatusConfirmed, b.Status)
	}
	assert.Less(t, booked.Bookings[0].ID, booked.Bookings[1].ID)

	assert.Equal(t, f.unbookedPkg, packages[1].ID)
	assert.Empty(t, packages[1].Bookings)
}

func TestCatalogRepository_FindPackageWithBookings(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	pkg, err := f.repo.FindPackageWithBookings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Beach Getaway", pkg.Name)
	assert.Len(t, pkg.Bookings, 3)

	_, err = f.repo.FindPackageWithBookings(ctx, 999)
	assert.True(t, errors.Is(err, repository.ErrPackageNotFound), "got %v", err)
}

func TestCatalogRepository_ListPackagesBookedByCustomer(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	tests := []struct {
		name         string
		customerID   int64
		wantPackages []int64
	}{
		{name: "customer with two bookings", customerID: f.alice, wantPackages: []int64{1}},
		{name: "customer with one booking", customerID: f.bob, wantPackages: []int64{1}},
		{name: "unknown customer", customerID: 999, wantPackages: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packages, err := f.repo.ListPackagesBookedByCustomer(ctx, tt.customerID)
			require.NoError(t, err)
			require.NotNil(t, packages)

			ids := make([]int64, 0, len(packages))
			for _, p := range packages {
				ids = append(ids, p.ID)
				// All bookings of the package are loaded; narrowing to the customer happens above storage
				assert.Len(t, p.Bookings, 3)
			}
			assert.Equal(t, tt.wantPackages, ids)
		})
	}
}

func TestCatalogRepository_ListHotelsWithRooms(t *testing.T) {
	f := newCatalogFixture(t)

	hotels, err := f.repo.ListHotelsWithRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Seaside Inn", hotels[0].Name)
	require.Len(t, hotels[0].Rooms, 1)
	assert.Equal(t, "Double", hotels[0].Rooms[0].RoomType)
}

func TestCatalogRepository_LookupsNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	_, err := f.repo.FindPackage(ctx, 999)
	assert.True(t, errors.Is(err, repository.ErrPackageNotFound), "got %v", err)

	_, err = f.repo.FindFlight(ctx, 999)
	assert.True(t, errors.Is(err, repository.ErrFlightNotFound), "got %v", err)

	_, err = f.repo.FindRoomWithHotel(ctx, 999)
	assert.True(t, errors.Is(err, repository.ErrRoomNotFound), "got %v", err)
}

func TestBookingRepository_FindByCustomer(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	require.NoError(t, SeedCatalog(ctx, db, seedNow))

	customer := &entity.Customer{Name: "Carol", Email: "carol@example.com", PasswordHash: "h", CreatedAt: seedNow}
	require.NoError(t, NewCustomerRepository(db).Add(ctx, customer))
	require.NotZero(t, customer.ID)

	bookings := NewBookingRepository(db)
	packageID := int64(1)
	booking := &entity.Booking{
		CustomerID:      customer.ID,
		TravelPackageID: &packageID,
		BookingDate:     seedNow,
		TotalAmount:     decimal.NewFromInt(500),
		Status:          entity.BookingStatusConfirmed,
	}
	require.NoError(t, bookings.Add(ctx, booking))
	require.NotZero(t, booking.ID)

	found, err := bookings.Find(ctx, repository.Eq("customerId", customer.ID))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, booking.ID, found[0].ID)
	assert.Nil(t, found[0].FlightID)

	none, err := bookings.Find(ctx, repository.Eq("customerId", customer.ID+1))
	require.NoError(t, err)
	assert.Empty(t, none)
}
