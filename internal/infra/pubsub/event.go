package pubsub

import (
	"encoding/json"
	"strconv"

	"travelhub/internal/domain/service"

	"github.com/pkg/errors"
)

// BookingConfirmedEventType names booking confirmations on every transport
const BookingConfirmedEventType = "booking.confirmed"

func encodeEvent(event *service.BookingConfirmedEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal booking event")
	}

	return data, nil
}

// eventAttributes are attached as message attributes or headers for filtering and tracing
func eventAttributes(event *service.BookingConfirmedEvent) map[string]string {
	attributes := map[string]string{
		"event_type":  BookingConfirmedEventType,
		"event_id":    event.EventID,
		"booking_id":  strconv.FormatInt(event.BookingID, 10),
		"customer_id": strconv.FormatInt(event.CustomerID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
