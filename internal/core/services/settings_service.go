package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/utils"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates the store settings service.
func NewSettingsService(repo portsrepo.SettingsRepository, options ...ServiceOption) portssvc.SettingsSvc {
	return &settingsService{
		BaseService:  newBaseService(options...),
		settingsRepo: repo,
	}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

func defaultSettings() domain.StoreSettings {
	return domain.StoreSettings{DefaultReminderDays: domain.DefaultReminderDaysBefore}
}

func (s *settingsService) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	settings, err := s.settingsRepo.GetStoreSettings(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		d := defaultSettings()
		return &d, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load store settings")
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.StoreSettings, error) {
	name := strings.TrimSpace(req.BusinessName)
	if name == "" {
		return nil, validationError("business name is required")
	}

	settings := defaultSettings()
	settings.BusinessName = name
	settings.Document = utils.TrimToNil(req.Document)
	settings.Phone = utils.TrimToNil(req.Phone)
	if req.DefaultReminderDays != nil {
		if *req.DefaultReminderDays < 0 {
			return nil, validationError("default reminder days cannot be negative")
		}
		settings.DefaultReminderDays = *req.DefaultReminderDays
	}
	settings.UpdatedAt = s.Now()
	settings.UpdatedBy = userID

	if err := s.settingsRepo.SaveStoreSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save store settings")
		return nil, err
	}
	s.LogInfo(ctx, "Store settings updated", slog.String("user_id", userID))
	return &settings, nil
}
