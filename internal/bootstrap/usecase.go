package bootstrap

import (
	historyDomain "github.com/pricestream/price-history/internal/domain/history"
	historyUc "github.com/pricestream/price-history/internal/usecase/history"
	"github.com/pricestream/price-history/pkg/postgresql"
)

// Usecase holds the usecases of the price history service.
type Usecase struct {
	HistoryUsecase historyDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase(publisher historyDomain.Publisher) {
	dbTx := postgresql.NewTransaction(b.Postgres)
	b.Usecase.HistoryUsecase = historyUc.NewUsecase(b.Repository.HistoryRepository, dbTx, publisher, b.Logger)
}
