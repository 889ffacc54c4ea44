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

const serviceOrderColumns = `
	service_order_id, customer_name, customer_phone, description, value,
	payment_method, COALESCE(payment_splits, '[]'::jsonb) AS payment_splits, status, opened_at, closed_at,
	created_at, created_by, last_updated_at, last_updated_by, version, deleted_at`

type PgxServiceOrderRepository struct {
	BaseRepository
}

func newPgxServiceOrderRepository(pool *pgxpool.Pool) portsrepo.ServiceOrderRepositoryFacade {
	return &PgxServiceOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ServiceOrderRepositoryFacade = (*PgxServiceOrderRepository)(nil)

func queryServiceOrders(ctx context.Context, q querier, query string, args ...any) ([]domain.ServiceOrder, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query service orders", err)
	}
	modelOrders, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ServiceOrder])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan service orders", err)
	}
	return mapping.ToDomainServiceOrderSlice(modelOrders), nil
}

func (r *PgxServiceOrderRepository) SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	m := mapping.ToModelServiceOrder(order)
	query := `
		INSERT INTO service_orders (
			service_order_id, customer_name, customer_phone, description, value,
			payment_method, payment_splits, status, opened_at, closed_at,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 1);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ServiceOrderID,
		m.CustomerName,
		m.CustomerPhone,
		m.Description,
		m.Value,
		m.PaymentMethod,
		m.PaymentSplits,
		m.Status,
		m.OpenedAt,
		m.ClosedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save service order "+m.ServiceOrderID, err)
	}
	return nil
}

func (r *PgxServiceOrderRepository) FindServiceOrderByID(ctx context.Context, serviceOrderID string) (*domain.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE service_order_id = $1 AND deleted_at IS NULL;`
	orders, err := queryServiceOrders(ctx, r.Pool, query, serviceOrderID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &orders[0], nil
}

func (r *PgxServiceOrderRepository) ListServiceOrders(ctx context.Context, period domain.ReportPeriod) ([]domain.ServiceOrder, error) {
	where := &whereBuilder{}
	where.add("deleted_at IS NULL")
	where.period("opened_at", period)
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders ` + where.String() + ` ORDER BY opened_at DESC, service_order_id DESC;`
	return queryServiceOrders(ctx, r.Pool, query, where.args...)
}

func (r *PgxServiceOrderRepository) UpdateServiceOrderStatus(ctx context.Context, order domain.ServiceOrder, expectedVersion int64) error {
	m := mapping.ToModelServiceOrder(order)
	query := `
		UPDATE service_orders
		SET status = $1, payment_method = $2, payment_splits = $3, closed_at = $4,
		    last_updated_at = $5, last_updated_by = $6, version = version + 1
		WHERE service_order_id = $7 AND version = $8 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Status,
		m.PaymentMethod,
		m.PaymentSplits,
		m.ClosedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ServiceOrderID,
		expectedVersion,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update service order "+m.ServiceOrderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("service order %s changed since it was read: %w", m.ServiceOrderID, apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxServiceOrderRepository) MarkServiceOrderDeleted(ctx context.Context, serviceOrderID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE service_orders
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2, version = version + 1
		WHERE service_order_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, serviceOrderID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark service order "+serviceOrderID+" as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("service order not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
