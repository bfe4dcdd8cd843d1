package postgres

import (
	"travelhub/internal/domain/entity"
	"travelhub/internal/infra/persistence/model"
)

func fromCustomerDomain(c *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
	}
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func syncCustomer(c *entity.Customer, m *model.CustomerModel) {
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
}

func fromBookingDomain(b *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		TravelPackageID: b.TravelPackageID,
		FlightID:        b.FlightID,
		HotelRoomID:     b.HotelRoomID,
		BookingDate:     b.BookingDate,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
	}
}

func toBookingDomain(m *model.BookingModel) *entity.Booking {
	booking := &entity.Booking{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		TravelPackageID: m.TravelPackageID,
		FlightID:        m.FlightID,
		HotelRoomID:     m.HotelRoomID,
		BookingDate:     m.BookingDate,
		TotalAmount:     m.TotalAmount,
		Status:          entity.BookingStatus(m.Status),
	}

	if m.TravelPackage != nil {
		booking.TravelPackage = toTravelPackageDomain(m.TravelPackage)
	}
	if m.Flight != nil {
		booking.Flight = toFlightDomain(m.Flight)
	}
	if m.HotelRoom != nil {
		booking.HotelRoom = toHotelRoomDomain(m.HotelRoom)
	}

	return booking
}

func syncBooking(b *entity.Booking, m *model.BookingModel) {
	b.ID = m.ID
	b.BookingDate = m.BookingDate
	b.Status = entity.BookingStatus(m.Status)
}

func toTravelPackageDomain(m *model.TravelPackageModel) *entity.TravelPackage {
	pkg := &entity.TravelPackage{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
	}

	if m.Bookings != nil {
		pkg.Bookings = make([]*entity.Booking, 0, len(m.Bookings))
		for i := range m.Bookings {
			pkg.Bookings = append(pkg.Bookings, toBookingDomain(&m.Bookings[i]))
		}
	}

	return pkg
}

func fromTravelPackageDomain(p *entity.TravelPackage) *model.TravelPackageModel {
	return &model.TravelPackageModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

func toFlightDomain(m *model.FlightModel) *entity.Flight {
	return &entity.Flight{
		ID:            m.ID,
		FlightNumber:  m.FlightNumber,
		DepartureCity: m.DepartureCity,
		ArrivalCity:   m.ArrivalCity,
		DepartureTime: m.DepartureTime,
		Price:         m.Price,
	}
}

func fromFlightDomain(f *entity.Flight) *model.FlightModel {
	return &model.FlightModel{
		ID:            f.ID,
		FlightNumber:  f.FlightNumber,
		DepartureCity: f.DepartureCity,
		ArrivalCity:   f.ArrivalCity,
		DepartureTime: f.DepartureTime,
		Price:         f.Price,
	}
}

func toHotelDomain(m *model.HotelModel) *entity.Hotel {
	hotel := &entity.Hotel{
		ID:       m.ID,
		Name:     m.Name,
		Location: m.Location,
	}

	if m.Rooms != nil {
		hotel.Rooms = make([]*entity.HotelRoom, 0, len(m.Rooms))
		for i := range m.Rooms {
			hotel.Rooms = append(hotel.Rooms, toHotelRoomDomain(&m.Rooms[i]))
		}
	}

	return hotel
}

func fromHotelDomain(h *entity.Hotel) *model.HotelModel {
	return &model.HotelModel{
		ID:       h.ID,
		Name:     h.Name,
		Location: h.Location,
	}
}

func toHotelRoomDomain(m *model.HotelRoomModel) *entity.HotelRoom {
	room := &entity.HotelRoom{
		ID:             m.ID,
		HotelID:        m.HotelID,
		RoomType:       m.RoomType,
		AvailableUnits: m.AvailableUnits,
		PricePerNight:  m.PricePerNight,
	}

	if m.Hotel != nil {
		room.Hotel = &entity.Hotel{
			ID:       m.Hotel.ID,
			Name:     m.Hotel.Name,
			Location: m.Hotel.Location,
		}
	}

	return room
}

func fromHotelRoomDomain(r *entity.HotelRoom) *model.HotelRoomModel {
	return &model.HotelRoomModel{
		ID:             r.ID,
		HotelID:        r.HotelID,
		RoomType:       r.RoomType,
		AvailableUnits: r.AvailableUnits,
		PricePerNight:  r.PricePerNight,
	}
}
