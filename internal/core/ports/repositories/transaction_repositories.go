package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// TransactionReader defines read operations for register movements
type TransactionReader interface {
	// FindTransactionByID retrieves a movement by ID, including soft deleted ones.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves non-deleted movements inside period, newest first, using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, period domain.ReportPeriod, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionsByCashSession retrieves every non-deleted movement attached to a cash session.
	ListTransactionsByCashSession(ctx context.Context, cashSessionID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for register movements
type TransactionWriter interface {
	// SaveTransaction inserts a new movement.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkTransactionDeleted soft deletes a movement.
	MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time, deletedBy string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
