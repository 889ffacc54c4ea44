package services

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/dto"
)

// CashSessionSvcFacade defines operations on cash register sessions
type CashSessionSvcFacade interface {
	OpenCashSession(ctx context.Context, req dto.OpenCashSessionRequest, userID string) (*domain.CashSession, error)

	// GetCurrentCashSession returns the open session or apperrors.ErrNotFound.
	GetCurrentCashSession(ctx context.Context) (*domain.CashSession, error)

	CloseCashSession(ctx context.Context, cashSessionID string, req dto.CloseCashSessionRequest, userID string) (*domain.CashSession, error)
}
