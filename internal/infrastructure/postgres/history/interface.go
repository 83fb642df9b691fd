package history

import (
	"context"
	"time"
)

// HistoryRepository is the interface for the history repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type HistoryRepository interface {
	// GetLatestBySKU returns the most recent record for a SKU, or nil when
	// the SKU has no records.
	GetLatestBySKU(ctx context.Context, sku string) (*History, error)

	// Insert writes a new record. The store's (sku, created_at) uniqueness
	// constraint rejects concurrent duplicates.
	Insert(ctx context.Context, record *History) error

	// GetPage returns the records matching the filter, ordered by created_at.
	GetPage(ctx context.Context, filter Filter) ([]*History, error)

	// CountByFilter returns the total number of records matching the filter,
	// ignoring limit and offset.
	CountByFilter(ctx context.Context, filter Filter) (int, error)

	// GetIntervalPage returns one record per interval bucket (the one with
	// the largest created_at in the bucket), ordered by bucket number.
	GetIntervalPage(ctx context.Context, filter IntervalFilter) ([]*History, error)

	// CountIntervalBuckets returns the number of distinct interval buckets
	// matching the filter, ignoring limit and offset.
	CountIntervalBuckets(ctx context.Context, filter IntervalFilter) (int, error)

	// GetLatestAtOrBefore returns the most recent record with
	// created_at <= ts, or nil when none exists.
	GetLatestAtOrBefore(ctx context.Context, sku string, ts time.Time) (*History, error)

	// GetEarliestAtOrAfter returns the earliest record with
	// created_at >= ts, or nil when none exists.
	GetEarliestAtOrAfter(ctx context.Context, sku string, ts time.Time) (*History, error)
}
