package pubsub

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"travelhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher writes booking events keyed by booking id
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous writer that waits for the leader ack
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	logger.Info("Kafka publisher initialized", slog.String("topic", topic))

	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

func (p *kafkaPublisher) PublishBookingConfirmed(ctx context.Context, event *service.BookingConfirmedEvent) error {
	message, err := newKafkaMessage(event, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return errors.Wrap(err, "kafka write")
	}

	p.logger.InfoContext(ctx, "[Kafka] Event published",
		slog.String("topic", p.writer.Topic),
		slog.Int64("booking_id", event.BookingID),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}

func newKafkaMessage(event *service.BookingConfirmedEvent, now time.Time) (kafka.Message, error) {
	value, err := encodeEvent(event)
	if err != nil {
		return kafka.Message{}, err
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	return kafka.Message{
		Key:     []byte(strconv.FormatInt(event.BookingID, 10)),
		Value:   value,
		Headers: headers,
		Time:    now,
	}, nil
}
