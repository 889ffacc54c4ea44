package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// CreditSaleFilter narrows ListCreditSales.
type CreditSaleFilter struct {
	Status          *domain.CreditSaleStatus
	IncludeArchived bool
}

// CreditSaleReader defines read operations for credit sales and their payments
type CreditSaleReader interface {
	// FindCreditSaleByID retrieves a sale by ID, archived or not.
	FindCreditSaleByID(ctx context.Context, creditSaleID string) (*domain.CreditSale, error)

	// ListCreditSales retrieves sales ordered by charge date.
	ListCreditSales(ctx context.Context, filter CreditSaleFilter) ([]domain.CreditSale, error)

	// ListPaymentsByCreditSale retrieves the payments of one sale ordered by payment date.
	ListPaymentsByCreditSale(ctx context.Context, creditSaleID string) ([]domain.CreditSalePayment, error)
}

// CreditSaleWriter defines write operations for credit sales
type CreditSaleWriter interface {
	// SaveCreditSale inserts a new sale.
	SaveCreditSale(ctx context.Context, sale domain.CreditSale) error

	// ArchiveCreditSale soft deletes a sale.
	ArchiveCreditSale(ctx context.Context, creditSaleID string, archivedAt time.Time, archivedBy string) error

	// SavePayment stores the payment, the ledger movement when given, and the sale's new
	// paid amount and status in one database transaction. The sale row is only updated if
	// its version still equals expectedVersion, otherwise apperrors.ErrConflict is returned
	// and nothing is written.
	SavePayment(ctx context.Context, sale domain.CreditSale, expectedVersion int64, payment domain.CreditSalePayment, ledger *domain.Transaction) error
}

// CreditSaleRepositoryFacade combines all credit sale repository interfaces
type CreditSaleRepositoryFacade interface {
	CreditSaleReader
	CreditSaleWriter
}

// CreditSaleRepositoryWithTx extends CreditSaleRepositoryFacade with transaction capabilities
type CreditSaleRepositoryWithTx interface {
	CreditSaleRepositoryFacade
	TransactionManager
}
