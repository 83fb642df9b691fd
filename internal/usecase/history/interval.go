package history

import (
	"context"
	"time"

	domain "github.com/pricestream/price-history/internal/domain/history"
	historyInfra "github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	"github.com/pricestream/price-history/pkg/errors"
	"github.com/pricestream/price-history/pkg/pagination"
)

// GetHistoryInterval returns a page of bucket-deduplicated entries.
//
// The store keeps one record per bucket (the most recent) and paginates the
// deduplicated set. When populate is requested the page is then extended at
// the from/to boundaries and internal gaps are filled by carrying the older
// neighbor's values forward. Gap-fill is scoped to the fetched page; a gap
// spanning a page boundary is not filled across pages.
func (u *Usecase) GetHistoryInterval(ctx context.Context, query domain.IntervalQuery) (*pagination.Page[historyInfra.IntervalEntry], error) {
	if err := validateInterval(query); err != nil {
		return nil, err
	}

	filter := historyInfra.IntervalFilter{
		Filter: historyInfra.Filter{
			SKU:    query.SKU,
			From:   query.From,
			To:     query.To,
			Order:  query.Order,
			Limit:  query.Limit,
			Offset: pagination.Offset(query.Page, query.Limit),
		},
		IntervalMs: query.IntervalMs,
	}

	records, err := u.repo.GetIntervalPage(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	total, err := u.repo.CountIntervalBuckets(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	// Normalize each selected record to the start of its bucket.
	entries := make([]historyInfra.IntervalEntry, len(records))
	for i, record := range records {
		entries[i] = historyInfra.IntervalEntry{History: *record}
		entries[i].CreatedAt = bucketStart(bucketNumber(record.CreatedAt, query.IntervalMs), query.IntervalMs)
	}

	if query.Populate {
		entries, err = u.extendFromBoundary(ctx, query, entries)
		if err != nil {
			return nil, err
		}

		entries, err = u.extendToBoundary(ctx, query, entries)
		if err != nil {
			return nil, err
		}

		entries = fillGaps(entries, query.Order, query.IntervalMs)
	}

	return pagination.NewPage(entries, total, query.Page, query.Limit), nil
}

// extendFromBoundary inserts a synthesized entry at the from-aligned bucket
// when the page does not start there. The entry carries the values of the
// most recent record at or before from.
func (u *Usecase) extendFromBoundary(ctx context.Context, query domain.IntervalQuery, entries []historyInfra.IntervalEntry) ([]historyInfra.IntervalEntry, error) {
	if query.From == nil || len(entries) == 0 {
		return entries, nil
	}

	fromBucket := bucketNumber(*query.From, query.IntervalMs)

	oldest := 0
	if query.Order == historyInfra.OrderDesc {
		oldest = len(entries) - 1
	}

	if bucketNumber(entries[oldest].CreatedAt, query.IntervalMs) == fromBucket {
		return entries, nil
	}

	before, err := u.repo.GetLatestAtOrBefore(ctx, query.SKU, *query.From)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if before == nil {
		return entries, nil
	}

	entry := historyInfra.IntervalEntry{History: *before, Populated: true}
	entry.CreatedAt = bucketStart(fromBucket, query.IntervalMs)

	if query.Order == historyInfra.OrderDesc {
		entries = append(entries, entry)
	} else {
		entries = append([]historyInfra.IntervalEntry{entry}, entries...)
	}

	return entries, nil
}

// extendToBoundary inserts a synthesized entry at the bucket strictly
// preceding to when the page does not end there. The existence of a record
// at or after to confirms the gap should be filled; the entry itself carries
// the page's newest values forward, not the found record's.
func (u *Usecase) extendToBoundary(ctx context.Context, query domain.IntervalQuery, entries []historyInfra.IntervalEntry) ([]historyInfra.IntervalEntry, error) {
	if query.To == nil || len(entries) == 0 {
		return entries, nil
	}

	toBucket := bucketNumber(*query.To, query.IntervalMs) - 1

	newest := len(entries) - 1
	if query.Order == historyInfra.OrderDesc {
		newest = 0
	}

	if bucketNumber(entries[newest].CreatedAt, query.IntervalMs) == toBucket {
		return entries, nil
	}

	after, err := u.repo.GetEarliestAtOrAfter(ctx, query.SKU, *query.To)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if after == nil {
		return entries, nil
	}

	entry := entries[newest]
	entry.Populated = true
	entry.CreatedAt = bucketStart(toBucket, query.IntervalMs)

	if query.Order == historyInfra.OrderDesc {
		entries = append([]historyInfra.IntervalEntry{entry}, entries...)
	} else {
		entries = append(entries, entry)
	}

	return entries, nil
}

// fillGaps synthesizes one entry per missing bucket between each adjacent
// pair, copying the chronologically older neighbor's values unchanged. Pure
// carry-forward, never interpolation.
func fillGaps(entries []historyInfra.IntervalEntry, order historyInfra.Order, intervalMs int64) []historyInfra.IntervalEntry {
	if len(entries) < 2 {
		return entries
	}

	out := make([]historyInfra.IntervalEntry, 0, len(entries))
	for i := 0; i < len(entries); i++ {
		out = append(out, entries[i])
		if i == len(entries)-1 {
			break
		}

		curr := bucketNumber(entries[i].CreatedAt, intervalMs)
		next := bucketNumber(entries[i+1].CreatedAt, intervalMs)

		diff := next - curr
		step := int64(1)
		older := entries[i]
		if order == historyInfra.OrderDesc {
			diff = curr - next
			step = -1
			older = entries[i+1]
		}

		for k := int64(1); k < diff; k++ {
			synth := older
			synth.Populated = true
			synth.CreatedAt = bucketStart(curr+step*k, intervalMs)
			out = append(out, synth)
		}
	}

	return out
}

// bucketNumber computes floor(timestamp / interval) in milliseconds.
func bucketNumber(ts time.Time, intervalMs int64) int64 {
	ms := ts.UnixMilli()
	bucket := ms / intervalMs
	if ms%intervalMs != 0 && ms < 0 {
		bucket--
	}
	return bucket
}

// bucketStart returns the instant a bucket begins at.
func bucketStart(bucket, intervalMs int64) time.Time {
	return time.UnixMilli(bucket * intervalMs).UTC()
}

// validateInterval rejects pathological interval parameters before they
// reach the store.
func validateInterval(query domain.IntervalQuery) error {
	if err := validateRange(query.RangeQuery); err != nil {
		return err
	}
	if query.IntervalMs <= 0 {
		return errors.NewErrorDetails("interval must be a positive number of milliseconds", string(errors.InvalidQueryParameters), "interval")
	}
	return nil
}
