package consumer

import (
	"context"

	"github.com/pricestream/price-history/internal/bootstrap"
	"github.com/pricestream/price-history/internal/consumer"
	v1 "github.com/pricestream/price-history/internal/domain/price-consumer/v1"
	"github.com/pricestream/price-history/internal/publisher"
	"github.com/pricestream/price-history/pkg/config"
	"github.com/pricestream/price-history/pkg/logger"
	"github.com/pricestream/price-history/pkg/postgresql"
)

// PriceConsumer is the application wiring for the price update consumer.
type PriceConsumer struct {
	Consumer  v1.PriceConsumer
	Config    config.Config
	logger    logger.Interface
	db        postgresql.PostgreSQLClient
	publisher *publisher.HistoryPublisher
	bootstrap bootstrap.Bootstrap
}

// InitPriceConsumer creates a new PriceConsumer.
func InitPriceConsumer(ctx context.Context, cfg config.Config) (*PriceConsumer, error) {
	log, err := logger.NewLogger()
	if err != nil {
		return nil, err
	}

	db, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "init_db",
		})
		return nil, err
	}

	historyPublisher := publisher.NewHistoryPublisher(cfg.HistoryKafka)

	priceConsumer := &PriceConsumer{
		Config:    cfg,
		logger:    log,
		db:        db,
		publisher: historyPublisher,
	}

	priceConsumer.bootstrap = (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Postgres:  db,
		Logger:    log,
		Publisher: historyPublisher,
	})

	priceConsumer.Consumer = consumer.NewPriceConsumer(
		cfg.PriceKafka,
		log,
		priceConsumer.bootstrap.Usecase.HistoryUsecase,
	)

	return priceConsumer, nil
}

// Close releases the consumer's connections.
func (s *PriceConsumer) Close() {
	if err := s.publisher.Close(); err != nil {
		s.logger.Error(err, logger.Field{
			Key:   "action",
			Value: "close_publisher",
		})
	}
	s.db.Close()
}
