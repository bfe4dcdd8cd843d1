package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BookingConfirmedEvent is emitted after a booking has been committed
type BookingConfirmedEvent struct {
	EventID     string          `json:"event_id"`
	RequestID   string          `json:"request_id,omitempty"` // For distributed tracing
	BookingID   int64           `json:"booking_id"`
	CustomerID  int64           `json:"customer_id"`
	PackageID   int64           `json:"package_id"`
	FlightID    int64           `json:"flight_id"`
	RoomID      int64           `json:"room_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	BookingDate time.Time       `json:"booking_date"`
	Status      string          `json:"status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingConfirmed publishes a booking confirmation for downstream consumers
	PublishBookingConfirmed(ctx context.Context, event *BookingConfirmedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
