package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/core/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetDefaultsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	repo.On("GetStoreSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := services.NewSettingsService(repo).GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReminderDaysBefore, settings.DefaultReminderDays)
	assert.Empty(t, settings.BusinessName)
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	repo.On("SaveStoreSettings", ctx, mock.MatchedBy(func(s domain.StoreSettings) bool {
		return s.BusinessName == "Loja da Ana" && s.DefaultReminderDays == 2 && s.Phone == nil
	})).Return(nil).Once()

	days := 2
	blank := " "
	settings, err := services.NewSettingsService(repo, services.WithClock(fixedClock)).UpdateSettings(ctx, dto.UpdateSettingsRequest{
		BusinessName:        " Loja da Ana ",
		Phone:               &blank,
		DefaultReminderDays: &days,
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", settings.UpdatedBy)
	repo.AssertExpectations(t)
}
