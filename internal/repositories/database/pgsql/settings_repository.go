package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_pos_app/internal/models"
	"github.com/SscSPs/retail_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// store_settings holds a single row keyed by settings_id = 1.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) GetStoreSettings(ctx context.Context) (*domain.StoreSettings, error) {
	query := `
		SELECT business_name, document, phone, default_reminder_days, updated_at, updated_by
		FROM store_settings
		WHERE settings_id = 1;
	`
	var m models.StoreSettings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.BusinessName,
		&m.Document,
		&m.Phone,
		&m.DefaultReminderDays,
		&m.UpdatedAt,
		&m.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load store settings", err)
	}
	settings := mapping.ToDomainStoreSettings(m)
	return &settings, nil
}

func (r *PgxSettingsRepository) SaveStoreSettings(ctx context.Context, settings domain.StoreSettings) error {
	m := mapping.ToModelStoreSettings(settings)
	query := `
		INSERT INTO store_settings (settings_id, business_name, document, phone, default_reminder_days, updated_at, updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (settings_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			document = EXCLUDED.document,
			phone = EXCLUDED.phone,
			default_reminder_days = EXCLUDED.default_reminder_days,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BusinessName,
		m.Document,
		m.Phone,
		m.DefaultReminderDays,
		m.UpdatedAt,
		m.UpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save store settings", err)
	}
	return nil
}
