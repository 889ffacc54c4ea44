package pgsql

import (
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CreditSaleRepo:   newPgxCreditSaleRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		ServiceOrderRepo: newPgxServiceOrderRepository(dbPool),
		CashSessionRepo:  newPgxCashSessionRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
	}
}
