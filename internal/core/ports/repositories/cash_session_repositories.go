package repositories

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// CashSessionReader defines read operations for cash register sessions
type CashSessionReader interface {
	FindCashSessionByID(ctx context.Context, cashSessionID string) (*domain.CashSession, error)

	// FindOpenCashSession returns the open session or apperrors.ErrNotFound.
	FindOpenCashSession(ctx context.Context) (*domain.CashSession, error)
}

// CashSessionWriter defines write operations for cash register sessions
type CashSessionWriter interface {
	// SaveCashSession inserts a new open session. A second open session yields apperrors.ErrConflict.
	SaveCashSession(ctx context.Context, session domain.CashSession) error

	// CloseCashSession stores the closing figures when the stored version equals expectedVersion.
	CloseCashSession(ctx context.Context, session domain.CashSession, expectedVersion int64) error
}

// CashSessionRepositoryFacade combines all cash session repository interfaces
type CashSessionRepositoryFacade interface {
	CashSessionReader
	CashSessionWriter
}
