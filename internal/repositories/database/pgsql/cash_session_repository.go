package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_pos_app/internal/models"
	"github.com/SscSPs/retail_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cashSessionColumns = `
	cash_session_id, opening_amount, expected_amount, declared_amount, difference,
	status, notes, opened_at, closed_at,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxCashSessionRepository struct {
	BaseRepository
}

func newPgxCashSessionRepository(pool *pgxpool.Pool) portsrepo.CashSessionRepositoryFacade {
	return &PgxCashSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashSessionRepositoryFacade = (*PgxCashSessionRepository)(nil)

func (r *PgxCashSessionRepository) findOne(ctx context.Context, query string, args ...any) (*domain.CashSession, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cash session", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CashSession])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan cash session", err)
	}
	session := mapping.ToDomainCashSession(m)
	return &session, nil
}

func (r *PgxCashSessionRepository) FindCashSessionByID(ctx context.Context, cashSessionID string) (*domain.CashSession, error) {
	return r.findOne(ctx, `SELECT `+cashSessionColumns+` FROM cash_sessions WHERE cash_session_id = $1;`, cashSessionID)
}

func (r *PgxCashSessionRepository) FindOpenCashSession(ctx context.Context) (*domain.CashSession, error) {
	return r.findOne(ctx, `SELECT `+cashSessionColumns+` FROM cash_sessions WHERE status = $1 ORDER BY opened_at DESC LIMIT 1;`, string(domain.CashSessionOpen))
}

// SaveCashSession relies on the partial unique index over open sessions to reject a second one.
func (r *PgxCashSessionRepository) SaveCashSession(ctx context.Context, session domain.CashSession) error {
	m := mapping.ToModelCashSession(session)
	query := `
		INSERT INTO cash_sessions (
			cash_session_id, opening_amount, status, notes, opened_at,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CashSessionID,
		m.OpeningAmount,
		m.Status,
		m.Notes,
		m.OpenedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("a cash session is already open: %w", apperrors.ErrConflict)
		}
		return apperrors.NewAppError(500, "failed to save cash session "+m.CashSessionID, err)
	}
	return nil
}

func (r *PgxCashSessionRepository) CloseCashSession(ctx context.Context, session domain.CashSession, expectedVersion int64) error {
	m := mapping.ToModelCashSession(session)
	query := `
		UPDATE cash_sessions
		SET status = $1, expected_amount = $2, declared_amount = $3, difference = $4, notes = $5, closed_at = $6,
		    last_updated_at = $7, last_updated_by = $8, version = version + 1
		WHERE cash_session_id = $9 AND version = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Status,
		m.ExpectedAmount,
		m.DeclaredAmount,
		m.Difference,
		m.Notes,
		m.ClosedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.CashSessionID,
		expectedVersion,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close cash session "+m.CashSessionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cash session %s changed since it was read: %w", m.CashSessionID, apperrors.ErrConflict)
	}
	return nil
}
