package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricestream/price-history/internal/api"
	"github.com/pricestream/price-history/internal/bootstrap"
	"github.com/pricestream/price-history/internal/publisher"
	"github.com/pricestream/price-history/pkg/config"
	"github.com/pricestream/price-history/pkg/logger"
	"github.com/pricestream/price-history/pkg/postgresql"
)

// Server is the application wiring for the history query API.
type Server struct {
	Engine    *gin.Engine
	Config    config.Config
	logger    logger.Interface
	db        postgresql.PostgreSQLClient
	publisher *publisher.HistoryPublisher
	bootstrap bootstrap.Bootstrap
}

// InitServer creates a new API server.
func InitServer(ctx context.Context, cfg config.Config) (*Server, error) {
	log, err := logger.NewLogger()
	if err != nil {
		return nil, err
	}

	db, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "init_db",
		})
		return nil, err
	}

	historyPublisher := publisher.NewHistoryPublisher(cfg.HistoryKafka)

	server := &Server{
		Config:    cfg,
		logger:    log,
		db:        db,
		publisher: historyPublisher,
	}

	server.bootstrap = (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Postgres:  db,
		Logger:    log,
		Publisher: historyPublisher,
	})

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	api.SetupRoutes(engine, server.bootstrap.Usecase.HistoryUsecase, db, log)

	server.Engine = engine

	return server, nil
}

// HTTPServer returns the configured http.Server for the API.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.App.Port),
		Handler: s.Engine,
	}
}

// Close releases the server's connections.
func (s *Server) Close() {
	if err := s.publisher.Close(); err != nil {
		s.logger.Error(err, logger.Field{
			Key:   "action",
			Value: "close_publisher",
		})
	}
	s.db.Close()
}
