package bootstrap

import (
	historyInfra "github.com/pricestream/price-history/internal/infrastructure/postgres/history"
)

// Repository holds the repositories of the price history service.
type Repository struct {
	HistoryRepository historyInfra.HistoryRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.HistoryRepository = historyInfra.NewRepository(b.Postgres)
}
