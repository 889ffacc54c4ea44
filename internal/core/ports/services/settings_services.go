package services

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/dto"
)

// SettingsSvc defines operations on the store settings
type SettingsSvc interface {
	// GetSettings returns the saved settings or the defaults when none were saved.
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.StoreSettings, error)
}
