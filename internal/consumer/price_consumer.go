package consumer

import (
	"context"
	"encoding/json"

	domain "github.com/pricestream/price-history/internal/domain/history"
	v1 "github.com/pricestream/price-history/internal/domain/price-consumer/v1"
	"github.com/pricestream/price-history/pkg/config"
	"github.com/pricestream/price-history/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// messageReader is the subset of kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PriceConsumer is the consumer for the price update topic.
type PriceConsumer struct {
	kafkaReader messageReader
	logger      logger.Interface

	historyUsecase domain.Usecase
	msgChan        chan kafka.Message
}

// NewPriceConsumer creates a new PriceConsumer.
func NewPriceConsumer(config config.PriceKafkaConfig, logger logger.Interface, historyUsecase domain.Usecase) *PriceConsumer {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.ConsumerGroup,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &PriceConsumer{
		kafkaReader:    kafkaReader,
		logger:         logger,
		historyUsecase: historyUsecase,
		msgChan:        make(chan kafka.Message),
	}
}

// Start starts the PriceConsumer.
func (c *PriceConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "starting price consumer", logger.Field{
		Key:   "action",
		Value: "price_consumer_start",
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "price_consumer_stop",
			})
			close(c.msgChan)
			return
		default:
			msg, err := c.kafkaReader.FetchMessage(ctx)
			if err != nil {
				c.logger.ErrorContext(ctx, err, logger.Field{
					Key:   "action",
					Value: "fetch_message",
				})
				continue
			}

			c.msgChan <- msg
		}
	}
}

// Stop stops the PriceConsumer.
func (c *PriceConsumer) Stop() error {
	c.logger.InfoContext(context.Background(), "stopping price consumer", logger.Field{
		Key:   "action",
		Value: "price_consumer_stop",
	})
	return c.kafkaReader.Close()
}

// Subscribe processes fetched messages. A message is committed only after
// the update was handled; a store failure leaves it uncommitted so the
// broker redelivers it. Redelivery is safe because the ingest dedup checks
// make re-processing a no-op.
func (c *PriceConsumer) Subscribe(ctx context.Context) {
	c.logger.InfoContext(ctx, "subscribing to price consumer", logger.Field{
		Key:   "action",
		Value: "price_consumer_subscribe",
	})

	for msg := range c.msgChan {
		var event v1.PriceUpdateEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "unmarshal_price_update",
			})
			// A malformed message never becomes valid; skip it.
			c.commit(ctx, msg)
			continue
		}

		if _, err := c.historyUsecase.Ingest(ctx, &event); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "ingest_price_update",
			}, logger.Field{
				Key:   "sku",
				Value: event.SKU,
			})
			continue
		}

		c.commit(ctx, msg)
	}
}

func (c *PriceConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.kafkaReader.CommitMessages(ctx, msg); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "commit_message",
		})
	}
}
