package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pricestream/price-history/pkg/postgresql"
)

const columns = "sku, buy_half_scrap, buy_keys, sell_half_scrap, sell_keys, created_at"

// Repository represents the repository for history records.
type Repository struct {
	client postgresql.PostgreSQLClient // Using interface instead of concrete type
}

// NewRepository creates a new history repository.
func NewRepository(client postgresql.PostgreSQLClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Insert writes a new history record.
func (r *Repository) Insert(ctx context.Context, record *History) error {
	query := `INSERT INTO history (sku, buy_half_scrap, buy_keys, sell_half_scrap, sell_keys, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.client.Exec(ctx, query,
		record.SKU, record.BuyHalfScrap, record.BuyKeys, record.SellHalfScrap, record.SellKeys, record.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	return nil
}

// GetLatestBySKU retrieves the most recent record for a SKU.
func (r *Repository) GetLatestBySKU(ctx context.Context, sku string) (*History, error) {
	query := `SELECT sku, buy_half_scrap, buy_keys, sell_half_scrap, sell_keys, created_at
			  FROM history
			  WHERE sku = $1
			  ORDER BY created_at DESC
			  LIMIT 1`

	record := &History{}
	err := r.client.QueryRow(ctx, query, sku).Scan(
		&record.SKU, &record.BuyHalfScrap, &record.BuyKeys, &record.SellHalfScrap, &record.SellKeys, &record.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest record: %w", err)
	}

	return record, nil
}

// GetLatestAtOrBefore retrieves the most recent record at or before ts.
func (r *Repository) GetLatestAtOrBefore(ctx context.Context, sku string, ts time.Time) (*History, error) {
	query := `SELECT sku, buy_half_scrap, buy_keys, sell_half_scrap, sell_keys, created_at
			  FROM history
			  WHERE sku = $1 AND created_at <= $2
			  ORDER BY created_at DESC
			  LIMIT 1`

	record := &History{}
	err := r.client.QueryRow(ctx, query, sku, ts).Scan(
		&record.SKU, &record.BuyHalfScrap, &record.BuyKeys, &record.SellHalfScrap, &record.SellKeys, &record.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record before timestamp: %w", err)
	}

	return record, nil
}

// GetEarliestAtOrAfter retrieves the earliest record at or after ts.
func (r *Repository) GetEarliestAtOrAfter(ctx context.Context, sku string, ts time.Time) (*History, error) {
	query := `SELECT sku, buy_half_scrap, buy_keys, sell_half_scrap, sell_keys, created_at
			  FROM history
			  WHERE sku = $1 AND created_at >= $2
			  ORDER BY created_at ASC
			  LIMIT 1`

	record := &History{}
	err := r.client.QueryRow(ctx, query, sku, ts).Scan(
		&record.SKU, &record.BuyHalfScrap, &record.BuyKeys, &record.SellHalfScrap, &record.SellKeys, &record.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record after timestamp: %w", err)
	}

	return record, nil
}

// GetPage retrieves a page of history records by filter.
func (r *Repository) GetPage(ctx context.Context, filter Filter) ([]*History, error) {
	query := "SELECT " + columns + " FROM history WHERE sku = $1"
	args := []interface{}{filter.SKU}

	query, args = appendTimeFilter(query, args, filter)

	query += fmt.Sprintf(" ORDER BY created_at %s", filter.Order)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, filter.Limit)
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, filter.Offset)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountByFilter returns the total number of records matching the filter.
func (r *Repository) CountByFilter(ctx context.Context, filter Filter) (int, error) {
	query := "SELECT COUNT(*) FROM history WHERE sku = $1"
	args := []interface{}{filter.SKU}

	query, args = appendTimeFilter(query, args, filter)

	var total int
	if err := r.client.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}

	return total, nil
}

// GetIntervalPage retrieves one record per interval bucket, keeping the
// record with the largest created_at in each bucket. The interval width is a
// bound parameter; the DISTINCT ON and ORDER BY expressions must stay
// textually identical for the dedup to follow the traversal order.
func (r *Repository) GetIntervalPage(ctx context.Context, filter IntervalFilter) ([]*History, error) {
	where := "WHERE sku = $1"
	args := []interface{}{filter.SKU}

	where, args = appendTimeFilter(where, args, filter.Filter)

	bucket := fmt.Sprintf("FLOOR(EXTRACT(EPOCH FROM created_at) * 1000 / $%d)", len(args)+1)
	args = append(args, filter.IntervalMs)

	query := fmt.Sprintf(
		"SELECT DISTINCT ON (%s) %s FROM history %s ORDER BY %s %s, created_at DESC",
		bucket, columns, where, bucket, filter.Order,
	)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, filter.Limit)
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, filter.Offset)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interval history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountIntervalBuckets returns the number of distinct interval buckets
// matching the filter.
func (r *Repository) CountIntervalBuckets(ctx context.Context, filter IntervalFilter) (int, error) {
	where := "WHERE sku = $1"
	args := []interface{}{filter.SKU}

	where, args = appendTimeFilter(where, args, filter.Filter)

	query := fmt.Sprintf(
		"SELECT COUNT(DISTINCT FLOOR(EXTRACT(EPOCH FROM created_at) * 1000 / $%d)) FROM history %s",
		len(args)+1, where,
	)
	args = append(args, filter.IntervalMs)

	var total int
	if err := r.client.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count interval buckets: %w", err)
	}

	return total, nil
}

// appendTimeFilter adds the created_at conditions implied by the filter. A
// single bound flips its comparison with the traversal order so that it
// always means "start reading here".
func appendTimeFilter(query string, args []interface{}, filter Filter) (string, []interface{}) {
	if filter.From != nil && filter.To != nil {
		query += fmt.Sprintf(" AND created_at BETWEEN $%d AND $%d", len(args)+1, len(args)+2)
		args = append(args, *filter.From, *filter.To)
	} else if filter.From != nil {
		op := ">="
		if filter.Order == OrderDesc {
			op = "<="
		}
		query += fmt.Sprintf(" AND created_at %s $%d", op, len(args)+1)
		args = append(args, *filter.From)
	} else if filter.To != nil {
		op := "<="
		if filter.Order == OrderDesc {
			op = ">="
		}
		query += fmt.Sprintf(" AND created_at %s $%d", op, len(args)+1)
		args = append(args, *filter.To)
	}

	return query, args
}

// scanRecords reads all rows into history records.
func scanRecords(rows postgresql.RowsInterface) ([]*History, error) {
	var records []*History
	for rows.Next() {
		record := &History{}
		err := rows.Scan(&record.SKU, &record.BuyHalfScrap, &record.BuyKeys, &record.SellHalfScrap, &record.SellKeys, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}
