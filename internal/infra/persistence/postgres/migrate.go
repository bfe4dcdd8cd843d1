package postgres

import (
	"context"
	"fmt"
	"time"

	"travelhub/internal/domain/entity"
	"travelhub/internal/errors"
	"travelhub/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every persistence model in dependency order.
func Models() []any {
	return []any{
		&model.CustomerModel{},
		&model.TravelPackageModel{},
		&model.FlightModel{},
		&model.HotelModel{},
		&model.HotelRoomModel{},
		&model.BookingModel{},
	}
}

// seededTables have rows inserted with explicit ids and need their sequences advanced.
var seededTables = []string{"travel_packages", "flights", "hotels", "hotel_rooms"}

// Migrate creates or updates tables, indexes and foreign keys.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}

// CatalogSeed is the reference data inserted on first initialization.
type CatalogSeed struct {
	Packages []*entity.TravelPackage
	Flights  []*entity.Flight
	Hotels   []*entity.Hotel
	Rooms    []*entity.HotelRoom
}

// NewCatalogSeed builds the seed rows relative to now.
func NewCatalogSeed(now time.Time) *CatalogSeed {
	departure := now.AddDate(0, 0, 30)

	return &CatalogSeed{
		Packages: []*entity.TravelPackage{{
			ID:          1,
			Name:        "Beach Getaway",
			Description: "Relax in paradise",
			Price:       decimal.NewFromInt(500),
			StartDate:   departure,
			EndDate:     now.AddDate(0, 0, 35),
		}},
		Flights: []*entity.Flight{{
			ID:            1,
			FlightNumber:  "AA123",
			DepartureCity: "NYC",
			ArrivalCity:   "MIA",
			DepartureTime: departure,
			Price:         decimal.NewFromInt(200),
		}},
		Hotels: []*entity.Hotel{{
			ID:       1,
			Name:     "Seaside Inn",
			Location: "Miami Beach",
		}},
		Rooms: []*entity.HotelRoom{{
			ID:             1,
			HotelID:        1,
			RoomType:       "Double",
			AvailableUnits: 10,
			PricePerNight:  decimal.NewFromInt(150),
		}},
	}
}

// SeedCatalog inserts the catalog seed. Existing ids are left untouched.
func SeedCatalog(ctx context.Context, db *gorm.DB, now time.Time) error {
	seed := NewCatalogSeed(now)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range seed.Packages {
			if err := insertIfAbsent(tx, fromTravelPackageDomain(p)); err != nil {
				return errors.Wrap(err, "seed travel package")
			}
		}
		for _, f := range seed.Flights {
			if err := insertIfAbsent(tx, fromFlightDomain(f)); err != nil {
				return errors.Wrap(err, "seed flight")
			}
		}
		for _, h := range seed.Hotels {
			if err := insertIfAbsent(tx, fromHotelDomain(h)); err != nil {
				return errors.Wrap(err, "seed hotel")
			}
		}
		for _, r := range seed.Rooms {
			if err := insertIfAbsent(tx, fromHotelRoomDomain(r)); err != nil {
				return errors.Wrap(err, "seed hotel room")
			}
		}

		// Only postgres keeps serial sequences apart from the table
		if tx.Dialector.Name() != "postgres" {
			return nil
		}
		for _, table := range seededTables {
			if err := tx.Exec(resetSequenceSQL(table)).Error; err != nil {
				return errors.Wrapf(err, "reset %s id sequence", table)
			}
		}

		return nil
	})
}

// insertIfAbsent starts a new statement per row; a shared chain would keep the first row's schema.
func insertIfAbsent(tx *gorm.DB, row any) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}

func resetSequenceSQL(table string) string {
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))",
		table, table,
	)
}
