package services

import (
	"context"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// TokenSvc issues access tokens for authenticated operators.
type TokenSvc interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
