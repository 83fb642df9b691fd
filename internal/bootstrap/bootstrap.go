package bootstrap

import (
	domain "github.com/pricestream/price-history/internal/domain/history"
	"github.com/pricestream/price-history/pkg/logger"
	"github.com/pricestream/price-history/pkg/postgresql"
)

// Bootstrap wires the price history service components together.
type Bootstrap struct {
	Usecase    Usecase
	Logger     logger.Interface
	Repository Repository

	Postgres postgresql.PostgreSQLClient
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Postgres  postgresql.PostgreSQLClient
	Logger    logger.Interface
	Publisher domain.Publisher
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Postgres = config.Postgres
	b.Logger = config.Logger

	b.registerRepository()
	b.registerUsecase(config.Publisher)

	return *b
}
