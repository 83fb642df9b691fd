package history

import (
	"context"
	"time"

	v1 "github.com/pricestream/price-history/internal/domain/price-consumer/v1"
	"github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	"github.com/pricestream/price-history/pkg/pagination"
)

// RangeQuery holds the parameters of a raw history query.
type RangeQuery struct {
	SKU   string
	From  *time.Time
	To    *time.Time
	Order history.Order
	Page  int
	Limit int
}

// IntervalQuery holds the parameters of a bucket-deduplicated history query.
type IntervalQuery struct {
	RangeQuery
	IntervalMs int64
	Populate   bool
}

// Usecase is the interface for the history usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type Usecase interface {
	// Ingest applies the dedup rules to a price update and persists it when
	// it is a new, changed snapshot. It returns the created record, or nil
	// when the event was discarded as stale, duplicate or already captured
	// by a concurrent writer.
	Ingest(ctx context.Context, event *v1.PriceUpdateEvent) (*history.History, error)

	// GetHistory returns a page of raw records within the requested window.
	GetHistory(ctx context.Context, query RangeQuery) (*pagination.Page[*history.History], error)

	// GetHistoryInterval returns a page of bucket-deduplicated entries,
	// optionally boundary-extended and gap-filled.
	GetHistoryInterval(ctx context.Context, query IntervalQuery) (*pagination.Page[history.IntervalEntry], error)
}

// Publisher publishes notifications about created history records.
type Publisher interface {
	PublishCreated(ctx context.Context, record *history.History) error
}
