package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelhub/config"
	"travelhub/internal/domain/service"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.BookingConfirmedEvent {
	return &service.BookingConfirmedEvent{
		EventID:     "evt-1",
		RequestID:   "req-1",
		BookingID:   42,
		CustomerID:  7,
		PackageID:   1,
		FlightID:    1,
		RoomID:      1,
		TotalAmount: decimal.NewFromInt(850),
		BookingDate: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		Status:      "Confirmed",
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	assert.NoError(t, publisher.PublishBookingConfirmed(context.Background(), sampleEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: ProviderRabbitMQ}, wantErr: "rabbitmq URL is required"},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: ProviderKafka, KafkaBrokers: " , "}, wantErr: "at least one broker"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewEventPublisher_Kafka(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "Kafka", KafkaBrokers: "localhost:9092"}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	kp, ok := publisher.(*kafkaPublisher)
	require.True(t, ok)
	assert.Equal(t, BookingConfirmedEventType, kp.writer.Topic)

	lc.RequireStart().RequireStop()
}

func TestLocalHTTPPublisher_PublishBookingConfirmed(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishBookingConfirmed(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "42", received.Message.Attributes["booking_id"])
	assert.Equal(t, BookingConfirmedEventType, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.BookingConfirmedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, int64(42), event.BookingID)
	assert.True(t, event.TotalAmount.Equal(decimal.NewFromInt(850)))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishBookingConfirmed(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "non-success status: 503")
}

func TestNewAMQPPublishing(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	publishing, err := newAMQPPublishing(sampleEvent(), now)
	require.NoError(t, err)

	assert.Equal(t, "application/json", publishing.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), publishing.DeliveryMode)
	assert.Equal(t, "evt-1", publishing.MessageId)
	assert.Equal(t, "req-1", publishing.CorrelationId)
	assert.Equal(t, "7", publishing.Headers["customer_id"])
	assert.Equal(t, now, publishing.Timestamp)
}

func TestNewKafkaMessage(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	message, err := newKafkaMessage(sampleEvent(), now)
	require.NoError(t, err)

	assert.Equal(t, []byte("42"), message.Key)
	assert.Equal(t, now, message.Time)
	assert.Len(t, message.Headers, 5)

	var event service.BookingConfirmedEvent
	require.NoError(t, json.Unmarshal(message.Value, &event))
	assert.Equal(t, "evt-1", event.EventID)
}
