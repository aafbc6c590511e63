// Package kafka publishes analytics events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/paykit/checkout-gateway/internal/analytics"
	"github.com/paykit/checkout-gateway/pkg/correlation"
)

type AnalyticsPublisher struct {
	writer *kafka.Writer
	log    *slog.Logger
}

func NewAnalyticsPublisher(brokers []string, topic string, log *slog.Logger) *AnalyticsPublisher {
	return &AnalyticsPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           100 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
		log: log,
	}
}

// Publish writes the event keyed by session, so events of one session land
// in one partition and keep their relative order.
func (p *AnalyticsPublisher) Publish(ctx context.Context, event analytics.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal analytics event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
	}
	if id := correlation.FromContext(ctx); id != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   correlation.KafkaHeaderName,
			Value: []byte(id),
		})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write analytics message: %w", err)
	}
	return nil
}

func (p *AnalyticsPublisher) Close() error {
	return p.writer.Close()
}
