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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const creditSaleColumns = `
	credit_sale_id, customer_name, customer_phone, description, COALESCE(items, '[]'::jsonb) AS items,
	total, installments, amount_paid, status, sale_date, charge_date,
	reminder_enabled, reminder_days_before, remind_at,
	created_at, created_by, last_updated_at, last_updated_by, version, deleted_at`

const creditSalePaymentColumns = `
	payment_id, credit_sale_id, amount, payment_date, payment_method,
	cash_session_id, transaction_id, notes, created_at, created_by`

type PgxCreditSaleRepository struct {
	BaseRepository
}

func newPgxCreditSaleRepository(pool *pgxpool.Pool) portsrepo.CreditSaleRepositoryWithTx {
	return &PgxCreditSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCreditSaleRepository implements portsrepo.CreditSaleRepositoryWithTx
var _ portsrepo.CreditSaleRepositoryWithTx = (*PgxCreditSaleRepository)(nil)

func queryCreditSales(ctx context.Context, q querier, query string, args ...any) ([]domain.CreditSale, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query credit sales", err)
	}
	modelSales, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CreditSale])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan credit sales", err)
	}
	return mapping.ToDomainCreditSaleSlice(modelSales), nil
}

func (r *PgxCreditSaleRepository) SaveCreditSale(ctx context.Context, sale domain.CreditSale) error {
	m := mapping.ToModelCreditSale(sale)
	query := `
		INSERT INTO credit_sales (
			credit_sale_id, customer_name, customer_phone, description, items,
			total, installments, amount_paid, status, sale_date, charge_date,
			reminder_enabled, reminder_days_before, remind_at,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, 1);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CreditSaleID,
		m.CustomerName,
		m.CustomerPhone,
		m.Description,
		m.Items,
		m.Total,
		m.Installments,
		m.AmountPaid,
		m.Status,
		m.SaleDate,
		m.ChargeDate,
		m.ReminderEnabled,
		m.ReminderDays,
		m.ReminderAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.ErrDuplicate
		case pgCheckViolation:
			return fmt.Errorf("credit sale %s violates amount constraints: %w", m.CreditSaleID, apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to save credit sale "+m.CreditSaleID, err)
	}
	return nil
}

func (r *PgxCreditSaleRepository) FindCreditSaleByID(ctx context.Context, creditSaleID string) (*domain.CreditSale, error) {
	query := `SELECT ` + creditSaleColumns + ` FROM credit_sales WHERE credit_sale_id = $1;`
	sales, err := queryCreditSales(ctx, r.Pool, query, creditSaleID)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &sales[0], nil
}

func (r *PgxCreditSaleRepository) ListCreditSales(ctx context.Context, filter portsrepo.CreditSaleFilter) ([]domain.CreditSale, error) {
	where := &whereBuilder{}
	if !filter.IncludeArchived {
		where.add("deleted_at IS NULL")
	}
	if filter.Status != nil {
		where.add("status = ?", string(*filter.Status))
	}
	query := `SELECT ` + creditSaleColumns + ` FROM credit_sales ` + where.String() + ` ORDER BY charge_date, credit_sale_id;`
	return queryCreditSales(ctx, r.Pool, query, where.args...)
}

func (r *PgxCreditSaleRepository) ArchiveCreditSale(ctx context.Context, creditSaleID string, archivedAt time.Time, archivedBy string) error {
	query := `
		UPDATE credit_sales
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2, version = version + 1
		WHERE credit_sale_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, archivedAt, archivedBy, creditSaleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to archive credit sale "+creditSaleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("credit sale not found or already archived: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCreditSaleRepository) ListPaymentsByCreditSale(ctx context.Context, creditSaleID string) ([]domain.CreditSalePayment, error) {
	query := `SELECT ` + creditSalePaymentColumns + `
		FROM credit_sale_payments
		WHERE credit_sale_id = $1
		ORDER BY payment_date, created_at;`
	rows, err := r.Pool.Query(ctx, query, creditSaleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for credit sale "+creditSaleID, err)
	}
	modelPayments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CreditSalePayment])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan payments for credit sale "+creditSaleID, err)
	}
	return mapping.ToDomainCreditSalePaymentSlice(modelPayments), nil
}

// SavePayment writes the ledger movement, the sale update and the payment row in one transaction.
// The UPDATE is guarded by the version the caller read, so two concurrent payments on the same
// sale cannot both succeed; the CHECK on amount_paid <= total backs this up.
func (r *PgxCreditSaleRepository) SavePayment(ctx context.Context, sale domain.CreditSale, expectedVersion int64, payment domain.CreditSalePayment, ledger *domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	if ledger != nil {
		if err := insertTransaction(ctx, tx, *ledger); err != nil {
			return err
		}
	}

	m := mapping.ToModelCreditSale(sale)
	updateQuery := `
		UPDATE credit_sales
		SET amount_paid = $1, status = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE credit_sale_id = $5 AND version = $6 AND deleted_at IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		m.AmountPaid,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.CreditSaleID,
		expectedVersion,
	)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return fmt.Errorf("payment on credit sale %s: %w", m.CreditSaleID, apperrors.ErrAmountExceedsBalance)
		}
		return apperrors.NewAppError(500, "failed to update credit sale "+m.CreditSaleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("credit sale %s changed since it was read: %w", m.CreditSaleID, apperrors.ErrConflict)
	}

	p := mapping.ToModelCreditSalePayment(payment)
	paymentQuery := `
		INSERT INTO credit_sale_payments (
			payment_id, credit_sale_id, amount, payment_date, payment_method,
			cash_session_id, transaction_id, notes, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, paymentQuery,
		p.PaymentID,
		p.CreditSaleID,
		p.Amount,
		p.PaymentDate,
		p.PaymentMethod,
		p.CashSessionID,
		p.TransactionID,
		p.Notes,
		p.CreatedAt,
		p.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+p.PaymentID, err)
	}

	return r.Commit(ctx, tx)
}
