package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/SscSPs/retail_pos_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	creditSaleRepo  portsrepo.CreditSaleReader
	cashSessionRepo portsrepo.CashSessionReader
}

// NewTransactionService creates the register movement service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	creditSaleRepo portsrepo.CreditSaleReader,
	cashSessionRepo portsrepo.CashSessionReader,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(options...),
		transactionRepo: transactionRepo,
		creditSaleRepo:  creditSaleRepo,
		cashSessionRepo: cashSessionRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, validationError("unknown transaction type %q", req.Type)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, validationError("description is required")
	}

	quantity := decimal.NewFromInt(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if !quantity.IsPositive() {
		return nil, validationError("quantity must be greater than zero")
	}
	if req.UnitPrice.IsNegative() {
		return nil, validationError("unit price cannot be negative")
	}

	total := accounting.LineTotal(quantity, req.UnitPrice)
	if req.Total != nil {
		total = *req.Total
	}
	if total.IsNegative() {
		return nil, validationError("total cannot be negative")
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          txnType,
		Description:   description,
		Quantity:      quantity,
		UnitPrice:     req.UnitPrice,
		Total:         total,
		OccurredAt:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if req.OccurredAt != nil {
		txn.OccurredAt = req.OccurredAt.In(now.Location())
	}

	if splits := dto.ToDomainSplits(req.PaymentSplits); len(splits) > 0 {
		if err := accounting.ValidateSplits(splits, total); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		txn.PaymentSplits = splits
	} else {
		if req.PaymentMethod == nil {
			return nil, validationError("payment method is required when there are no payment splits")
		}
		method := domain.PaymentMethod(*req.PaymentMethod)
		if !method.IsValid() {
			return nil, validationError("unknown payment method %q", *req.PaymentMethod)
		}
		txn.PaymentMethod = &method
	}

	if id := utils.TrimToNil(req.CreditSaleID); id != nil {
		if _, err := s.creditSaleRepo.FindCreditSaleByID(ctx, *id); err != nil {
			return nil, fmt.Errorf("credit sale %s: %w", *id, err)
		}
		txn.CreditSaleID = id
	}

	session, err := s.cashSessionRepo.FindOpenCashSession(ctx)
	switch {
	case err == nil:
		txn.CashSessionID = &session.CashSessionID
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogDebug(ctx, "No open cash session, transaction recorded without one",
			slog.String("transaction_id", txn.TransactionID))
	default:
		s.LogError(ctx, err, "Failed to look up open cash session")
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("total", txn.Total.String()))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	period, err := s.parsePeriod(params.From, params.To)
	if err != nil {
		return nil, nil, err
	}
	txns, next, err := s.transactionRepo.ListTransactions(ctx, period, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, next, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if err := s.transactionRepo.MarkTransactionDeleted(ctx, transactionID, s.Now(), userID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
