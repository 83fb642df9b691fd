package history

import (
	"context"

	domain "github.com/pricestream/price-history/internal/domain/history"
	v1 "github.com/pricestream/price-history/internal/domain/price-consumer/v1"
	historyInfra "github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	"github.com/pricestream/price-history/pkg/errors"
	"github.com/pricestream/price-history/pkg/logger"
	"github.com/pricestream/price-history/pkg/pagination"
	"github.com/pricestream/price-history/pkg/postgresql"
)

// Usecase is the usecase for the price history.
type Usecase struct {
	repo      historyInfra.HistoryRepository
	tx        postgresql.Transaction
	publisher domain.Publisher
	logger    logger.Interface
}

// NewUsecase creates a new history usecase.
func NewUsecase(repo historyInfra.HistoryRepository, tx postgresql.Transaction, publisher domain.Publisher, logger logger.Interface) *Usecase {
	return &Usecase{
		repo:      repo,
		tx:        tx,
		publisher: publisher,
		logger:    logger,
	}
}

// Ingest persists a price update when it is a new, changed snapshot.
//
// The read-check-insert runs as one transaction. Events that are stale or
// carry unchanged values are discarded without error so that redelivery of
// an already processed event is a no-op. A unique violation on insert means
// a concurrent writer captured the same (sku, created_at) first; the losing
// write is abandoned, never retried with altered data.
func (u *Usecase) Ingest(ctx context.Context, event *v1.PriceUpdateEvent) (*historyInfra.History, error) {
	var created *historyInfra.History

	err := u.tx.WithTx(ctx, func(txCtx context.Context) error {
		latest, err := u.repo.GetLatestBySKU(txCtx, event.SKU)
		if err != nil {
			return err
		}

		record := recordFromEvent(event)

		if latest != nil {
			if !event.UpdatedAt.After(latest.CreatedAt) {
				u.logger.DebugContext(ctx, "discarding stale price update", logger.Field{
					Key:   "sku",
					Value: event.SKU,
				}, logger.Field{
					Key:   "code",
					Value: errors.StaleEvent,
				})
				return nil
			}

			if latest.SamePrice(record) {
				u.logger.DebugContext(ctx, "discarding unchanged price update", logger.Field{
					Key:   "sku",
					Value: event.SKU,
				}, logger.Field{
					Key:   "code",
					Value: errors.DuplicateValue,
				})
				return nil
			}
		}

		if err := u.repo.Insert(txCtx, record); err != nil {
			return err
		}

		created = record
		return nil
	})

	if err != nil {
		if postgresql.IsUniqueViolation(err) {
			u.logger.WarnContext(ctx, "snapshot already captured by concurrent writer", logger.Field{
				Key:   "sku",
				Value: event.SKU,
			}, logger.Field{
				Key:   "code",
				Value: errors.UniquenessConflict,
			})
			return nil, nil
		}
		return nil, errors.TracerFromError(err)
	}

	if created == nil {
		return nil, nil
	}

	// The record is durable at this point. A publish failure must not roll
	// back the write or block future ingestion.
	if err := u.publisher.PublishCreated(ctx, created); err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
			Key:   "sku",
			Value: created.SKU,
		}, logger.Field{
			Key:   "code",
			Value: errors.NotificationPublishFailure,
		})
	}

	return created, nil
}

// GetHistory returns a page of raw records within the requested window.
func (u *Usecase) GetHistory(ctx context.Context, query domain.RangeQuery) (*pagination.Page[*historyInfra.History], error) {
	if err := validateRange(query); err != nil {
		return nil, err
	}

	filter := historyInfra.Filter{
		SKU:    query.SKU,
		From:   query.From,
		To:     query.To,
		Order:  query.Order,
		Limit:  query.Limit,
		Offset: pagination.Offset(query.Page, query.Limit),
	}

	records, err := u.repo.GetPage(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	total, err := u.repo.CountByFilter(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	return pagination.NewPage(records, total, query.Page, query.Limit), nil
}

// recordFromEvent builds a history record from a price update, using the
// event's updatedAt as the record's effective time.
func recordFromEvent(event *v1.PriceUpdateEvent) *historyInfra.History {
	return &historyInfra.History{
		SKU:           event.SKU,
		BuyHalfScrap:  event.BuyHalfScrap,
		BuyKeys:       event.BuyKeys,
		SellHalfScrap: event.SellHalfScrap,
		SellKeys:      event.SellKeys,
		CreatedAt:     event.UpdatedAt,
	}
}

// validateRange rejects pathological query parameters before they reach the
// store.
func validateRange(query domain.RangeQuery) error {
	if query.SKU == "" {
		return errors.NewErrorDetails("sku must not be empty", string(errors.InvalidQueryParameters), "sku")
	}
	if query.Page < 1 {
		return errors.NewErrorDetails("page must be a positive integer", string(errors.InvalidQueryParameters), "page")
	}
	if query.Limit < 1 {
		return errors.NewErrorDetails("limit must be a positive integer", string(errors.InvalidQueryParameters), "limit")
	}
	if !query.Order.Valid() {
		return errors.NewErrorDetails("order must be ASC or DESC", string(errors.InvalidQueryParameters), "order")
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return errors.NewErrorDetails("from must not be after to", string(errors.InvalidQueryParameters), "from")
	}
	return nil
}
