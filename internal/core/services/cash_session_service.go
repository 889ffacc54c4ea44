package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/SscSPs/retail_pos_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type cashSessionService struct {
	BaseService
	cashSessionRepo portsrepo.CashSessionRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// NewCashSessionService creates the cash register session service.
func NewCashSessionService(
	cashSessionRepo portsrepo.CashSessionRepositoryFacade,
	transactionRepo portsrepo.TransactionReader,
	options ...ServiceOption,
) portssvc.CashSessionSvcFacade {
	return &cashSessionService{
		BaseService:     newBaseService(options...),
		cashSessionRepo: cashSessionRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.CashSessionSvcFacade = (*cashSessionService)(nil)

func (s *cashSessionService) OpenCashSession(ctx context.Context, req dto.OpenCashSessionRequest, userID string) (*domain.CashSession, error) {
	if req.OpeningAmount.IsNegative() {
		return nil, validationError("opening amount cannot be negative")
	}

	current, err := s.cashSessionRepo.FindOpenCashSession(ctx)
	if err == nil {
		return nil, fmt.Errorf("cash session %s is already open: %w", current.CashSessionID, apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up open cash session")
		return nil, err
	}

	now := s.Now()
	session := domain.CashSession{
		CashSessionID: uuid.NewString(),
		OpeningAmount: req.OpeningAmount,
		Status:        domain.CashSessionOpen,
		Notes:         utils.TrimToNil(req.Notes),
		OpenedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if err := s.cashSessionRepo.SaveCashSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to open cash session")
		return nil, err
	}
	s.LogInfo(ctx, "Cash session opened",
		slog.String("cash_session_id", session.CashSessionID),
		slog.String("opening_amount", session.OpeningAmount.String()))
	return &session, nil
}

func (s *cashSessionService) GetCurrentCashSession(ctx context.Context) (*domain.CashSession, error) {
	session, err := s.cashSessionRepo.FindOpenCashSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("no open cash session: %w", err)
	}
	return session, nil
}

// CloseCashSession compares the counted amount with opening plus cash in minus cash out.
func (s *cashSessionService) CloseCashSession(ctx context.Context, cashSessionID string, req dto.CloseCashSessionRequest, userID string) (*domain.CashSession, error) {
	if req.DeclaredAmount.IsNegative() {
		return nil, validationError("declared amount cannot be negative")
	}
	session, err := s.cashSessionRepo.FindCashSessionByID(ctx, cashSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash session %s: %w", cashSessionID, err)
	}
	if !session.IsOpen() {
		return nil, validationError("cash session %s is already closed", cashSessionID)
	}

	txns, err := s.transactionRepo.ListTransactionsByCashSession(ctx, cashSessionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cash session transactions", slog.String("cash_session_id", cashSessionID))
		return nil, err
	}

	now := s.Now()
	expected := accounting.ExpectedDrawerAmount(session.OpeningAmount, txns)
	declared := req.DeclaredAmount
	difference := declared.Sub(expected)

	closed := *session
	expectedVersion := session.Version
	closed.Status = domain.CashSessionClosed
	closed.ExpectedAmount = &expected
	closed.DeclaredAmount = &declared
	closed.Difference = &difference
	closed.ClosedAt = &now
	if notes := utils.TrimToNil(req.Notes); notes != nil {
		closed.Notes = notes
	}
	closed.LastUpdatedAt = now
	closed.LastUpdatedBy = userID
	closed.Version = expectedVersion + 1

	if err := s.cashSessionRepo.CloseCashSession(ctx, closed, expectedVersion); err != nil {
		s.LogError(ctx, err, "Failed to close cash session", slog.String("cash_session_id", cashSessionID))
		return nil, err
	}
	s.LogInfo(ctx, "Cash session closed",
		slog.String("cash_session_id", cashSessionID),
		slog.String("expected", expected.String()),
		slog.String("declared", declared.String()),
		slog.String("difference", difference.String()))
	return &closed, nil
}
