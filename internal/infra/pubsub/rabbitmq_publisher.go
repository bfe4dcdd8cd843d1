package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travelhub/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher publishes persistent messages to a durable queue through the default exchange
type rabbitMQPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the queue
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "rabbitmq channel")
	}

	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "rabbitmq queue declare %s", queue)
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("queue", queue))

	return &rabbitMQPublisher{
		conn:    conn,
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishBookingConfirmed(ctx context.Context, event *service.BookingConfirmedEvent) error {
	publishing, err := newAMQPPublishing(event, time.Now().UTC())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, publishing); err != nil {
		return errors.Wrap(err, "rabbitmq publish")
	}

	p.logger.InfoContext(ctx, "[RabbitMQ] Event published",
		slog.String("queue", p.queue),
		slog.Int64("booking_id", event.BookingID),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Wrap(errs[0], "rabbitmq close")
	}

	return nil
}

func newAMQPPublishing(event *service.BookingConfirmedEvent, now time.Time) (amqp.Publishing, error) {
	body, err := encodeEvent(event)
	if err != nil {
		return amqp.Publishing{}, err
	}

	headers := amqp.Table{}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     now,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Type:          BookingConfirmedEventType,
		Headers:       headers,
		Body:          body,
	}, nil
}
