package repositories

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// SettingsRepository stores the single store settings row
type SettingsRepository interface {
	// GetStoreSettings returns apperrors.ErrNotFound when nothing was saved yet.
	GetStoreSettings(ctx context.Context) (*domain.StoreSettings, error)

	// SaveStoreSettings inserts or replaces the settings row.
	SaveStoreSettings(ctx context.Context, settings domain.StoreSettings) error
}
