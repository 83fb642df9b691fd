package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	domain "github.com/pricestream/price-history/internal/domain/history"
	"github.com/pricestream/price-history/pkg/errors"
	"github.com/pricestream/price-history/pkg/logger"
	"github.com/pricestream/price-history/pkg/postgresql"
)

// Handler serves the history query API.
type Handler struct {
	usecase domain.Usecase
	db      postgresql.PostgreSQLClient
	logger  logger.Interface
}

// SetupRoutes registers the history routes on the given engine.
func SetupRoutes(r *gin.Engine, usecase domain.Usecase, db postgresql.PostgreSQLClient, logger logger.Interface) *Handler {
	handler := &Handler{
		usecase: usecase,
		db:      db,
		logger:  logger,
	}

	r.GET("/health", handler.Health)

	history := r.Group("/history/:sku")
	{
		history.GET("", handler.GetHistory)
		history.GET("/interval", handler.GetHistoryInterval)
	}

	return handler
}

// Health reports service and store availability.
func (h *Handler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetHistory serves a page of raw history records for a SKU.
func (h *Handler) GetHistory(c *gin.Context) {
	ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-Id"))

	query, err := parseRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	page, ucErr := h.usecase.GetHistory(ctx, query)
	if ucErr != nil {
		h.respondError(c, ctx, ucErr)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetHistoryInterval serves a page of bucket-deduplicated entries for a SKU.
func (h *Handler) GetHistoryInterval(c *gin.Context) {
	ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-Id"))

	query, err := parseIntervalQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err))
		return
	}

	page, ucErr := h.usecase.GetHistoryInterval(ctx, query)
	if ucErr != nil {
		h.respondError(c, ctx, ucErr)
		return
	}

	c.JSON(http.StatusOK, page)
}

// respondError distinguishes validation failures from store unavailability.
func (h *Handler) respondError(c *gin.Context, ctx context.Context, err error) {
	if details, ok := err.(*errors.ErrorDetails); ok {
		c.JSON(http.StatusBadRequest, errorBody(details))
		return
	}

	h.logger.ErrorContext(ctx, err, logger.Field{
		Key:   "action",
		Value: c.FullPath(),
	})
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    errors.GeneralInternalServerError,
		"message": "failed to query history",
	})
}

// errorBody renders an ErrorDetails as a response payload.
func errorBody(err *errors.ErrorDetails) gin.H {
	return gin.H{
		"code":    err.Code,
		"message": err.Message,
		"field":   err.Field,
	}
}
