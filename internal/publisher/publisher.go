package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	historyInfra "github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	"github.com/pricestream/price-history/pkg/config"
	"github.com/segmentio/kafka-go"
)

// HistoryPublisher publishes created history records to Kafka.
type HistoryPublisher struct {
	writer *kafka.Writer
}

// NewHistoryPublisher creates a new HistoryPublisher.
func NewHistoryPublisher(config config.HistoryKafkaConfig) *HistoryPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	return &HistoryPublisher{
		writer: writer,
	}
}

// PublishCreated publishes the full content of a created record, keyed by
// SKU so consumers see one SKU's records in order.
func (p *HistoryPublisher) PublishCreated(ctx context.Context, record *historyInfra.History) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal history record: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(record.SKU),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish history record: %w", err)
	}

	return nil
}

// Close closes the underlying Kafka writer.
func (p *HistoryPublisher) Close() error {
	return p.writer.Close()
}
