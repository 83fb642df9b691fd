package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	domain "github.com/pricestream/price-history/internal/domain/history"
	domainMock "github.com/pricestream/price-history/internal/domain/history/mock"
	v1 "github.com/pricestream/price-history/internal/domain/price-consumer/v1"
	historyInfra "github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	repoMock "github.com/pricestream/price-history/internal/infrastructure/postgres/history/mock"
	pkgErrors "github.com/pricestream/price-history/pkg/errors"
	loggerMock "github.com/pricestream/price-history/pkg/logger/mock"
	pgMock "github.com/pricestream/price-history/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type usecaseMocks struct {
	repo      *repoMock.MockHistoryRepository
	tx        *pgMock.MockTransaction
	publisher *domainMock.MockPublisher
	logger    *loggerMock.MockInterface
}

func newUsecaseWithMocks(ctrl *gomock.Controller) (*Usecase, usecaseMocks) {
	mocks := usecaseMocks{
		repo:      repoMock.NewMockHistoryRepository(ctrl),
		tx:        pgMock.NewMockTransaction(ctrl),
		publisher: domainMock.NewMockPublisher(ctrl),
		logger:    loggerMock.NewMockInterface(ctrl),
	}

	return NewUsecase(mocks.repo, mocks.tx, mocks.publisher, mocks.logger), mocks
}

// passthroughTx runs the transactional function on the given context, the
// way a committed transaction would.
func passthroughTx(m usecaseMocks) {
	m.tx.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestUsecase_Ingest(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	event := &v1.PriceUpdateEvent{
		SKU:           "5021;6",
		BuyHalfScrap:  20,
		BuyKeys:       0,
		SellHalfScrap: 22,
		SellKeys:      0,
		CreatedAt:     base,
		UpdatedAt:     base,
	}

	expected := &historyInfra.History{
		SKU:           "5021;6",
		BuyHalfScrap:  20,
		BuyKeys:       0,
		SellHalfScrap: 22,
		SellKeys:      0,
		CreatedAt:     base,
	}

	testCases := []struct {
		name     string
		event    *v1.PriceUpdateEvent
		mockFn   func(m usecaseMocks)
		assertFn func(t *testing.T, created *historyInfra.History, err error)
	}{
		{
			name:  "first snapshot for a sku is stored and published",
			event: event,
			mockFn: func(m usecaseMocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetLatestBySKU(ctx, event.SKU).Return(nil, nil)
				m.repo.EXPECT().Insert(ctx, expected).Return(nil)
				m.publisher.EXPECT().PublishCreated(ctx, expected).Return(nil)
			},
			assertFn: func(t *testing.T, created *historyInfra.History, err error) {
				assert.NoError(t, err)
				assert.Equal(t, expected, created)
			},
		},
		{
			name:  "changed snapshot newer than the latest is stored",
			event: event,
			mockFn: func(m usecaseMocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetLatestBySKU(ctx, event.SKU).Return(&historyInfra.History{
					SKU:           event.SKU,
					BuyHalfScrap:  18,
					SellHalfScrap: 20,
					CreatedAt:     base.Add(-time.Hour),
				}, nil)
				m.repo.EXPECT().Insert(ctx, expected).Return(nil)
				m.publisher.EXPECT().PublishCreated(ctx, expected).Return(nil)
			},
			assertFn: func(t *testing.T, created *historyInfra.History, err error) {
				assert.NoError(t, err)
				assert.Equal(t, expected, created)
			},
		},
		{
			name:  "redelivered event with equal timestamp is discarded",
			event: event,
			mockFn: func(m usecaseMocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetLatestBySKU(ctx, event.SKU).Return(expected, nil)
				m.logger.EXPECT().DebugContext(ctx, "discarding stale price update", gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, created *historyInfra.History, err error) {
				assert.NoError(t, err)
				assert.Nil(t, created)
			},
		},
		{
			name:  "out of order event older than the latest is discarded",
			event: event,
			mockFn: func(m usecaseMocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetLatestBySKU(ctx, event.SKU).Return(&historyInfra.History{
					SKU:       event.SKU,
					CreatedAt: base.Add(time.Hour),
				}, nil)
				m.logger.EXPECT().DebugContext(ctx, "discarding stale price update", gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, created *historyInfra.History, err error) {
				assert.NoError(t, err)
				assert.Nil(t, created)
			},
		},
		{
			name:  "newer event with unchanged values is discarded",
			event: event,
			mockFn: func(m usecaseMocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetLatestBySKU(ctx, event.SKU).Return(&historyInfra.History{
					SKU:           event.SKU,
					BuyHalfScrap:  20,
					BuyKeys:       0,
					SellHalfScrap: 22,
					SellKeys:      0,
					CreatedAt:     base.Add(-time.Hour),
				}, nil)
				m.logger.EXPECT().DebugContext(ctx, "discarding unchanged price update", gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, created *historyInfra.History, err error) {
				assert.NoError(t, err)
				assert.Nil(t, created)
			},
		},
		{
			name:  "unique violation from a concurrent writer is benign",
			event: event,
			mockFn: func(m usecaseMocks) {
				m.tx.EXPECT().
					WithTx(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505"})
				m.logger.EXPECT().WarnContext(ctx, "snapshot already captured by concurrent writer", gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, created *historyInfra.History, err error) {
				assert.NoError(t, err)
				assert.Nil(t, created)
			},
		},
		{
			name:  "transient store failure is returned for redelivery",
			event: event,
			mockFn: func(m usecaseMocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetLatestBySKU(ctx, event.SKU).Return(nil, errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, created *historyInfra.History, err error) {
				assert.Error(t, err)
				assert.Nil(t, created)
			},
		},
		{
			name:  "publish failure does not fail the ingest",
			event: event,
			mockFn: func(m usecaseMocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetLatestBySKU(ctx, event.SKU).Return(nil, nil)
				m.repo.EXPECT().Insert(ctx, expected).Return(nil)
				m.publisher.EXPECT().PublishCreated(ctx, expected).Return(errors.New("broker unavailable"))
				m.logger.EXPECT().ErrorContext(ctx, gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, created *historyInfra.History, err error) {
				assert.NoError(t, err)
				assert.Equal(t, expected, created)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			usecase, mocks := newUsecaseWithMocks(ctrl)
			tc.mockFn(mocks)

			created, err := usecase.Ingest(ctx, tc.event)
			tc.assertFn(t, created, err)
		})
	}
}

func TestUsecase_GetHistory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	records := []*historyInfra.History{
		{SKU: "5021;6", BuyHalfScrap: 20, SellHalfScrap: 22, CreatedAt: now},
		{SKU: "5021;6", BuyHalfScrap: 18, SellHalfScrap: 20, CreatedAt: now.Add(-time.Hour)},
	}

	t.Run("returns page with pagination meta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		usecase, mocks := newUsecaseWithMocks(ctrl)

		query := domain.RangeQuery{
			SKU:   "5021;6",
			Order: historyInfra.OrderDesc,
			Page:  2,
			Limit: 2,
		}
		filter := historyInfra.Filter{
			SKU:    "5021;6",
			Order:  historyInfra.OrderDesc,
			Limit:  2,
			Offset: 2,
		}

		mocks.repo.EXPECT().GetPage(ctx, filter).Return(records, nil)
		mocks.repo.EXPECT().CountByFilter(ctx, filter).Return(5, nil)

		page, err := usecase.GetHistory(ctx, query)
		assert.NoError(t, err)
		assert.Equal(t, records, page.Items)
		assert.Equal(t, 5, page.Meta.TotalItems)
		assert.Equal(t, 2, page.Meta.ItemCount)
		assert.Equal(t, 2, page.Meta.ItemsPerPage)
		assert.Equal(t, 3, page.Meta.TotalPages)
		assert.Equal(t, 2, page.Meta.CurrentPage)
	})

	t.Run("empty page keeps items non-nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		usecase, mocks := newUsecaseWithMocks(ctrl)

		query := domain.RangeQuery{
			SKU:   "5021;6",
			Order: historyInfra.OrderAsc,
			Page:  1,
			Limit: 100,
		}
		filter := historyInfra.Filter{
			SKU:   "5021;6",
			Order: historyInfra.OrderAsc,
			Limit: 100,
		}

		mocks.repo.EXPECT().GetPage(ctx, filter).Return(nil, nil)
		mocks.repo.EXPECT().CountByFilter(ctx, filter).Return(0, nil)

		page, err := usecase.GetHistory(ctx, query)
		assert.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Zero(t, page.Meta.TotalItems)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		usecase, mocks := newUsecaseWithMocks(ctrl)

		mocks.repo.EXPECT().GetPage(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

		page, err := usecase.GetHistory(ctx, domain.RangeQuery{
			SKU:   "5021;6",
			Order: historyInfra.OrderDesc,
			Page:  1,
			Limit: 100,
		})
		assert.Error(t, err)
		assert.Nil(t, page)
	})
}

func TestUsecase_ValidateRange(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	valid := domain.RangeQuery{
		SKU:   "5021;6",
		Order: historyInfra.OrderDesc,
		Page:  1,
		Limit: 100,
	}

	testCases := []struct {
		name   string
		modify func(q *domain.RangeQuery)
		field  string
	}{
		{
			name:   "empty sku",
			modify: func(q *domain.RangeQuery) { q.SKU = "" },
			field:  "sku",
		},
		{
			name:   "zero page",
			modify: func(q *domain.RangeQuery) { q.Page = 0 },
			field:  "page",
		},
		{
			name:   "negative limit",
			modify: func(q *domain.RangeQuery) { q.Limit = -1 },
			field:  "limit",
		},
		{
			name:   "unknown order",
			modify: func(q *domain.RangeQuery) { q.Order = "SIDEWAYS" },
			field:  "order",
		},
		{
			name: "from after to",
			modify: func(q *domain.RangeQuery) {
				q.From = &now
				q.To = &earlier
			},
			field: "from",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query := valid
			tc.modify(&query)

			err := validateRange(query)
			assert.Error(t, err)

			details, ok := err.(*pkgErrors.ErrorDetails)
			assert.True(t, ok)
			assert.Equal(t, tc.field, details.Field)
			assert.Equal(t, string(pkgErrors.InvalidQueryParameters), details.Code)
		})
	}

	t.Run("valid query passes", func(t *testing.T) {
		assert.NoError(t, validateRange(valid))
	})
}
