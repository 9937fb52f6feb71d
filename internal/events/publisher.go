package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// watermillPublisher adapts a watermill message.Publisher to the Publisher
// interface, filling in event IDs and timestamps.
type watermillPublisher struct {
	publisher message.Publisher
}

func newWatermillPublisher(publisher message.Publisher) Publisher {
	return &watermillPublisher{publisher: publisher}
}

// NewKafkaPublisher publishes events to Kafka; used when brokers are
// configured.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) (Publisher, error) {
	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   brokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return newWatermillPublisher(publisher), nil
}

// NewGoChannelPublisher publishes events to an in-process pub/sub; the
// default when no brokers are configured.
func NewGoChannelPublisher(logger *slog.Logger) Publisher {
	return newWatermillPublisher(gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewSlogLogger(logger),
	))
}

func (p *watermillPublisher) Publish(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = watermill.NewUUID()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", event.Type)

	if err := p.publisher.Publish(Topic, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}
	return nil
}

func (p *watermillPublisher) Close() error {
	return p.publisher.Close()
}
