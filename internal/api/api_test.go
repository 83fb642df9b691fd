package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	domain "github.com/pricestream/price-history/internal/domain/history"
	domainMock "github.com/pricestream/price-history/internal/domain/history/mock"
	"github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	loggerMock "github.com/pricestream/price-history/pkg/logger/mock"
	"github.com/pricestream/price-history/pkg/pagination"
	pgMock "github.com/pricestream/price-history/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiMocks struct {
	usecase *domainMock.MockUsecase
	db      *pgMock.MockPostgreSQLClient
	logger  *loggerMock.MockInterface
}

func newTestRouter(ctrl *gomock.Controller) (*gin.Engine, apiMocks) {
	gin.SetMode(gin.TestMode)

	mocks := apiMocks{
		usecase: domainMock.NewMockUsecase(ctrl),
		db:      pgMock.NewMockPostgreSQLClient(ctrl),
		logger:  loggerMock.NewMockInterface(ctrl),
	}

	engine := gin.New()
	SetupRoutes(engine, mocks.usecase, mocks.db, mocks.logger)

	return engine, mocks
}

func TestHandler_Health(t *testing.T) {
	testCases := []struct {
		name   string
		mockFn func(m apiMocks)
		status int
	}{
		{
			name: "store reachable",
			mockFn: func(m apiMocks) {
				m.db.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name: "store unreachable",
			mockFn: func(m apiMocks) {
				m.db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			},
			status: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine, mocks := newTestRouter(ctrl)
			tc.mockFn(mocks)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestHandler_GetHistory(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("serves a page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		engine, mocks := newTestRouter(ctrl)

		records := []*history.History{
			{SKU: "5021;6", BuyHalfScrap: 20, SellHalfScrap: 22, CreatedAt: now},
		}
		mocks.usecase.EXPECT().
			GetHistory(gomock.Any(), domain.RangeQuery{
				SKU:   "5021;6",
				Order: history.OrderDesc,
				Page:  1,
				Limit: 100,
			}).
			Return(pagination.NewPage(records, 1, 1, 100), nil)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/history/5021;6", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var page struct {
			Items []history.History `json:"items"`
			Meta  pagination.Meta   `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Len(t, page.Items, 1)
		assert.Equal(t, "5021;6", page.Items[0].SKU)
		assert.Equal(t, 1, page.Meta.TotalItems)
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		engine, _ := newTestRouter(ctrl)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/history/5021;6?order=sideways", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		engine, mocks := newTestRouter(ctrl)

		mocks.usecase.EXPECT().
			GetHistory(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))
		mocks.logger.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any())

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/history/5021;6", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_GetHistoryInterval(t *testing.T) {
	t.Run("serves a deduplicated page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		engine, mocks := newTestRouter(ctrl)

		entries := []history.IntervalEntry{
			{History: history.History{SKU: "5021;6", BuyHalfScrap: 20, CreatedAt: time.UnixMilli(86400000).UTC()}},
		}
		mocks.usecase.EXPECT().
			GetHistoryInterval(gomock.Any(), domain.IntervalQuery{
				RangeQuery: domain.RangeQuery{
					SKU:   "5021;6",
					Order: history.OrderDesc,
					Page:  1,
					Limit: 100,
				},
				IntervalMs: 86400000,
				Populate:   true,
			}).
			Return(pagination.NewPage(entries, 1, 1, 100), nil)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/history/5021;6/interval?interval=86400000&populate=true", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing interval is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		engine, _ := newTestRouter(ctrl)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", "/history/5021;6/interval", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "interval", body["field"])
	})
}
