package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	domain "github.com/pricestream/price-history/internal/domain/history"
	"github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	"github.com/pricestream/price-history/pkg/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 100
)

// parseRangeQuery extracts and validates the shared query parameters of the
// history endpoints. Missing parameters fall back to their defaults.
func parseRangeQuery(c *gin.Context) (domain.RangeQuery, *errors.ErrorDetails) {
	query := domain.RangeQuery{
		SKU:   c.Param("sku"),
		Order: history.OrderDesc,
		Page:  defaultPage,
		Limit: defaultLimit,
	}

	if raw := c.Query("order"); raw != "" {
		order := history.Order(raw)
		if !order.Valid() {
			return query, invalidParam("order must be ASC or DESC", "order")
		}
		query.Order = order
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return query, invalidParam("page must be a positive integer", "page")
		}
		query.Page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return query, invalidParam("limit must be a positive integer", "limit")
		}
		query.Limit = limit
	}

	if raw := c.Query("from"); raw != "" {
		from, err := parseTimestamp(raw)
		if err != nil {
			return query, invalidParam("from must be RFC3339 or unix milliseconds", "from")
		}
		query.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := parseTimestamp(raw)
		if err != nil {
			return query, invalidParam("to must be RFC3339 or unix milliseconds", "to")
		}
		query.To = &to
	}

	return query, nil
}

// parseIntervalQuery extends parseRangeQuery with the interval parameters.
func parseIntervalQuery(c *gin.Context) (domain.IntervalQuery, *errors.ErrorDetails) {
	rangeQuery, details := parseRangeQuery(c)
	if details != nil {
		return domain.IntervalQuery{}, details
	}

	query := domain.IntervalQuery{RangeQuery: rangeQuery}

	raw := c.Query("interval")
	if raw == "" {
		return query, invalidParam("interval is required", "interval")
	}
	interval, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || interval <= 0 {
		return query, invalidParam("interval must be a positive integer of milliseconds", "interval")
	}
	query.IntervalMs = interval

	if raw := c.Query("populate"); raw != "" {
		populate, err := strconv.ParseBool(raw)
		if err != nil {
			return query, invalidParam("populate must be a boolean", "populate")
		}
		query.Populate = populate
	}

	return query, nil
}

// parseTimestamp accepts RFC3339 strings and unix millisecond integers.
func parseTimestamp(raw string) (time.Time, error) {
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Parse(time.RFC3339, raw)
}

func invalidParam(message, field string) *errors.ErrorDetails {
	return errors.NewErrorDetails(message, string(errors.InvalidQueryParameters), field)
}
