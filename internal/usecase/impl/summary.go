package impl

import (
	"travelhub/internal/domain/entity"
	"travelhub/internal/usecase"
)

func toPackageSummary(pkg *entity.TravelPackage, keep func(*entity.Booking) bool) *usecase.PackageSummary {
	bookings := make([]*usecase.BookingSummary, 0, len(pkg.Bookings))
	for _, booking := range pkg.Bookings {
		if keep != nil && !keep(booking) {
			continue
		}
		bookings = append(bookings, toBookingSummary(booking))
	}

	return &usecase.PackageSummary{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Description: pkg.Description,
		Price:       pkg.Price,
		StartDate:   pkg.StartDate,
		EndDate:     pkg.EndDate,
		Bookings:    bookings,
	}
}

func toPackageSummaries(pkgs []*entity.TravelPackage, keep func(*entity.Booking) bool) []*usecase.PackageSummary {
	summaries := make([]*usecase.PackageSummary, 0, len(pkgs))
	for _, pkg := range pkgs {
		summaries = append(summaries, toPackageSummary(pkg, keep))
	}

	return summaries
}

func toBookingSummary(booking *entity.Booking) *usecase.BookingSummary {
	summary := &usecase.BookingSummary{
		ID:          booking.ID,
		TotalAmount: booking.TotalAmount,
		BookingDate: booking.BookingDate,
		Status:      booking.Status.String(),
	}

	if booking.Flight != nil {
		summary.FlightNumber = stringPtr(booking.Flight.FlightNumber)
	}
	if room := booking.HotelRoom; room != nil {
		summary.RoomType = stringPtr(room.RoomType)
		if room.Hotel != nil {
			summary.HotelName = stringPtr(room.Hotel.Name)
		}
	}

	return summary
}

func toHotelSummaries(hotels []*entity.Hotel) []*usecase.HotelSummary {
	summaries := make([]*usecase.HotelSummary, 0, len(hotels))
	for _, hotel := range hotels {
		rooms := make([]*usecase.HotelRoomSummary, 0, len(hotel.Rooms))
		for _, room := range hotel.Rooms {
			rooms = append(rooms, &usecase.HotelRoomSummary{
				ID:             room.ID,
				RoomType:       room.RoomType,
				AvailableUnits: room.AvailableUnits,
				PricePerNight:  room.PricePerNight,
			})
		}

		summaries = append(summaries, &usecase.HotelSummary{
			ID:       hotel.ID,
			Name:     hotel.Name,
			Location: hotel.Location,
			Rooms:    rooms,
		})
	}

	return summaries
}

func stringPtr(s string) *string {
	return &s
}
