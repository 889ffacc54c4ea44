package pgsql

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// LoadReportSnapshot reads under REPEATABLE READ so a payment landing mid-report cannot
// make the credit sales disagree with the transactions that reference them.
func (r *reportingRepository) LoadReportSnapshot(ctx context.Context, period domain.ReportPeriod) (*portsrepo.ReportSnapshot, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin report snapshot", err)
	}
	defer r.Rollback(ctx, tx)

	txWhere := &whereBuilder{}
	txWhere.add("deleted_at IS NULL")
	txWhere.period("occurred_at", period)
	transactions, err := queryTransactions(ctx, tx,
		`SELECT `+transactionColumns+` FROM transactions `+txWhere.String()+` ORDER BY occurred_at;`,
		txWhere.args...)
	if err != nil {
		return nil, err
	}

	// Archived sales still resolve settlement of older transactions.
	sales, err := queryCreditSales(ctx, tx, `SELECT `+creditSaleColumns+` FROM credit_sales;`)
	if err != nil {
		return nil, err
	}

	orderWhere := &whereBuilder{}
	orderWhere.add("deleted_at IS NULL")
	orderWhere.period("opened_at", period)
	orders, err := queryServiceOrders(ctx, tx,
		`SELECT `+serviceOrderColumns+` FROM service_orders `+orderWhere.String()+` ORDER BY opened_at;`,
		orderWhere.args...)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &portsrepo.ReportSnapshot{
		Transactions:  transactions,
		CreditSales:   sales,
		ServiceOrders: orders,
	}, nil
}
