package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	"github.com/stretchr/testify/assert"
)

func ginContextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/history/5021;6?"+rawQuery, nil)
	c.Params = gin.Params{{Key: "sku", Value: "5021;6"}}
	return c
}

func TestParseRangeQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := ginContextWithQuery(t, "")

		query, details := parseRangeQuery(c)
		assert.Nil(t, details)
		assert.Equal(t, "5021;6", query.SKU)
		assert.Equal(t, history.OrderDesc, query.Order)
		assert.Equal(t, 1, query.Page)
		assert.Equal(t, 100, query.Limit)
		assert.Nil(t, query.From)
		assert.Nil(t, query.To)
	})

	t.Run("explicit parameters", func(t *testing.T) {
		c := ginContextWithQuery(t, "order=ASC&page=3&limit=50&from=2025-06-01T00:00:00Z&to=1750000000000")

		query, details := parseRangeQuery(c)
		assert.Nil(t, details)
		assert.Equal(t, history.OrderAsc, query.Order)
		assert.Equal(t, 3, query.Page)
		assert.Equal(t, 50, query.Limit)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *query.From)
		assert.Equal(t, time.UnixMilli(1750000000000).UTC(), *query.To)
	})

	testCases := []struct {
		name  string
		query string
		field string
	}{
		{name: "bad order", query: "order=sideways", field: "order"},
		{name: "zero page", query: "page=0", field: "page"},
		{name: "non-numeric page", query: "page=abc", field: "page"},
		{name: "negative limit", query: "limit=-5", field: "limit"},
		{name: "bad from", query: "from=yesterday", field: "from"},
		{name: "bad to", query: "to=tomorrow", field: "to"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := ginContextWithQuery(t, tc.query)

			_, details := parseRangeQuery(c)
			assert.NotNil(t, details)
			assert.Equal(t, tc.field, details.Field)
		})
	}
}

func TestParseIntervalQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := ginContextWithQuery(t, "interval=86400000&populate=true&order=ASC")

		query, details := parseIntervalQuery(c)
		assert.Nil(t, details)
		assert.Equal(t, int64(86400000), query.IntervalMs)
		assert.True(t, query.Populate)
		assert.Equal(t, history.OrderAsc, query.Order)
	})

	t.Run("populate defaults to false", func(t *testing.T) {
		c := ginContextWithQuery(t, "interval=3600000")

		query, details := parseIntervalQuery(c)
		assert.Nil(t, details)
		assert.False(t, query.Populate)
	})

	testCases := []struct {
		name  string
		query string
		field string
	}{
		{name: "missing interval", query: "", field: "interval"},
		{name: "zero interval", query: "interval=0", field: "interval"},
		{name: "negative interval", query: "interval=-1000", field: "interval"},
		{name: "non-numeric interval", query: "interval=day", field: "interval"},
		{name: "bad populate", query: "interval=1000&populate=maybe", field: "populate"},
		{name: "range error surfaces first", query: "interval=1000&page=0", field: "page"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := ginContextWithQuery(t, tc.query)

			_, details := parseIntervalQuery(c)
			assert.NotNil(t, details)
			assert.Equal(t, tc.field, details.Field)
		})
	}
}
