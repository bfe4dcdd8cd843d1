package postgres

import (
	"context"
	"testing"
	"time"

	"travelhub/internal/domain/entity"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/repository"
	"travelhub/internal/errors"
	"travelhub/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds SQL without touching a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.Open("host=localhost user=travelhub dbname=travelhub sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestGormRepository_FindQuery(t *testing.T) {
	db := newDryRunDB(t)
	repo := newGormRepository[entity.Customer, model.CustomerModel](
		db, "customer", customerColumns, fromCustomerDomain, toCustomerDomain, syncCustomer,
	)

	query, err := repo.findQuery(context.Background(), []repository.Condition{repository.Eq("email", "a@x.com")})
	require.NoError(t, err)

	var rows []*model.CustomerModel
	stmt := query.Find(&rows).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, `FROM "customers"`)
	assert.Contains(t, sql, `"email" = $1`)
	assert.Contains(t, sql, `ORDER BY "id"`)
	assert.Equal(t, []any{"a@x.com"}, stmt.Vars)
}

func TestGormRepository_FindUnknownField(t *testing.T) {
	repo := NewBookingRepository(newDryRunDB(t))

	_, err := repo.Find(context.Background(), repository.Eq("password", "x"))
	assert.ErrorContains(t, err, `unknown field "password"`)
}

func TestGormRepository_AddNil(t *testing.T) {
	repo := NewCustomerRepository(newDryRunDB(t))

	err := repo.Add(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBookingMapping(t *testing.T) {
	packageID, flightID, roomID := int64(1), int64(2), int64(3)
	booking := &entity.Booking{
		CustomerID:      9,
		TravelPackageID: &packageID,
		FlightID:        &flightID,
		HotelRoomID:     &roomID,
		BookingDate:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		TotalAmount:     decimal.RequireFromString("850.00"),
		Status:          entity.BookingStatusConfirmed,
	}

	m := fromBookingDomain(booking)
	assert.Equal(t, "Confirmed", m.Status)
	assert.Equal(t, &flightID, m.FlightID)

	m.ID = 77
	syncBooking(booking, m)
	assert.Equal(t, int64(77), booking.ID)

	m.Flight = &model.FlightModel{ID: flightID, FlightNumber: "AA123"}
	m.HotelRoom = &model.HotelRoomModel{ID: roomID, RoomType: "Double", Hotel: &model.HotelModel{ID: 1, Name: "Seaside Inn"}}

	back := toBookingDomain(m)
	require.NotNil(t, back.Flight)
	require.NotNil(t, back.HotelRoom)
	require.NotNil(t, back.HotelRoom.Hotel)
	assert.Equal(t, "AA123", back.Flight.FlightNumber)
	assert.Equal(t, "Seaside Inn", back.HotelRoom.Hotel.Name)
	assert.True(t, back.TotalAmount.Equal(decimal.NewFromInt(850)))
}

func TestNewCatalogSeed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := NewCatalogSeed(now)

	require.Len(t, seed.Packages, 1)
	require.Len(t, seed.Flights, 1)
	require.Len(t, seed.Hotels, 1)
	require.Len(t, seed.Rooms, 1)

	pkg := seed.Packages[0]
	assert.Equal(t, "Beach Getaway", pkg.Name)
	assert.True(t, pkg.Price.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, now.AddDate(0, 0, 30), pkg.StartDate)
	assert.Equal(t, now.AddDate(0, 0, 35), pkg.EndDate)

	flight := seed.Flights[0]
	assert.Equal(t, "AA123", flight.FlightNumber)
	assert.Equal(t, "NYC", flight.DepartureCity)
	assert.Equal(t, "MIA", flight.ArrivalCity)
	assert.True(t, flight.Price.Equal(decimal.NewFromInt(200)))

	room := seed.Rooms[0]
	assert.Equal(t, seed.Hotels[0].ID, room.HotelID)
	assert.Equal(t, 10, room.AvailableUnits)
	assert.True(t, room.PricePerNight.Equal(decimal.NewFromInt(150)))
}

func TestResetSequenceSQL(t *testing.T) {
	assert.Equal(t,
		"SELECT setval(pg_get_serial_sequence('flights', 'id'), (SELECT COALESCE(MAX(id), 1) FROM flights))",
		resetSequenceSQL("flights"),
	)
}
