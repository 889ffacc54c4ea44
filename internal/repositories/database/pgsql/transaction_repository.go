package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_pos_app/internal/models"
	"github.com/SscSPs/retail_pos_app/internal/utils/mapping"
	"github.com/SscSPs/retail_pos_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	transaction_id, transaction_type, description, quantity, unit_price, total,
	payment_method, COALESCE(payment_splits, '[]'::jsonb) AS payment_splits, credit_sale_id, cash_session_id, occurred_at,
	created_at, created_by, last_updated_at, last_updated_by, version, deleted_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// insertTransaction is shared with the credit sale repository, which writes ledger movements inside its own transaction.
func insertTransaction(ctx context.Context, q querier, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, transaction_type, description, quantity, unit_price, total,
			payment_method, payment_splits, credit_sale_id, cash_session_id, occurred_at,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 1);
	`
	_, err := q.Exec(ctx, query,
		m.TransactionID,
		m.TransactionType,
		m.Description,
		m.Quantity,
		m.UnitPrice,
		m.Total,
		m.PaymentMethod,
		m.PaymentSplits,
		m.CreditSaleID,
		m.CashSessionID,
		m.OccurredAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

func queryTransactions(ctx context.Context, q querier, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return insertTransaction(ctx, r.Pool, txn)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txns, err := queryTransactions(ctx, r.Pool, query, transactionID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &txns[0], nil
}

// ListTransactions pages newest first on (occurred_at, transaction_id).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, period domain.ReportPeriod, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	where := &whereBuilder{}
	where.add("deleted_at IS NULL")
	where.period("occurred_at", period)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		where.add("(occurred_at, transaction_id) < (?, ?)", cursor.At, cursor.ID)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ` + where.String() +
		` ORDER BY occurred_at DESC, transaction_id DESC LIMIT ` + where.placeholder(fetchLimit) + `;`
	txns, err := queryTransactions(ctx, r.Pool, query, where.args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.OccurredAt, last.TransactionID)
		nextTokenVal = &token
		txns = txns[:limit]
	}
	return txns, nextTokenVal, nil
}

func (r *PgxTransactionRepository) ListTransactionsByCashSession(ctx context.Context, cashSessionID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE cash_session_id = $1 AND deleted_at IS NULL
		ORDER BY occurred_at;`
	return queryTransactions(ctx, r.Pool, query, cashSessionID)
}

func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE transactions
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2, version = version + 1
		WHERE transaction_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark transaction "+transactionID+" as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
