package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/platform/config"
	"github.com/SscSPs/retail_pos_app/internal/utils"
)

// tokenService issues the JWT access tokens operators use after logging in.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, options ...ServiceOption) portssvc.TokenSvc {
	return &tokenService{
		BaseService: newBaseService(options...),
		cfg:         cfg,
	}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := s.Now()
	expiryTime := now.Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, user.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
