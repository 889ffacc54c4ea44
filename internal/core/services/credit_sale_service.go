package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/SscSPs/retail_pos_app/internal/utils/accounting"
	"github.com/SscSPs/retail_pos_app/internal/utils/creditsale"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventPaymentRegistered is sent to analytics after every stored installment.
const EventPaymentRegistered = "credit_sale_payment_registered"

type creditSaleService struct {
	BaseService
	creditSaleRepo  portsrepo.CreditSaleRepositoryFacade
	cashSessionRepo portsrepo.CashSessionReader
	settingsRepo    portsrepo.SettingsRepository
}

// NewCreditSaleService creates the credit sale service.
func NewCreditSaleService(
	creditSaleRepo portsrepo.CreditSaleRepositoryFacade,
	cashSessionRepo portsrepo.CashSessionReader,
	settingsRepo portsrepo.SettingsRepository,
	options ...ServiceOption,
) portssvc.CreditSaleSvcFacade {
	return &creditSaleService{
		BaseService:     newBaseService(options...),
		creditSaleRepo:  creditSaleRepo,
		cashSessionRepo: cashSessionRepo,
		settingsRepo:    settingsRepo,
	}
}

var _ portssvc.CreditSaleSvcFacade = (*creditSaleService)(nil)

func (s *creditSaleService) CreateCreditSale(ctx context.Context, req dto.CreateCreditSaleRequest, userID string) (*domain.CreditSale, error) {
	now := s.Now()
	loc := now.Location()

	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		return nil, validationError("customer name is required")
	}
	if req.Installments < 1 {
		return nil, validationError("installments must be at least 1")
	}

	items := make([]domain.CreditSaleItem, 0, len(req.Items))
	for i, it := range req.Items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			return nil, validationError("item %d: description is required", i)
		}
		if !it.Quantity.IsPositive() {
			return nil, validationError("item %d: quantity must be greater than zero", i)
		}
		if it.UnitPrice.IsNegative() {
			return nil, validationError("item %d: unit price cannot be negative", i)
		}
		items = append(items, domain.CreditSaleItem{
			Description: desc,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   accounting.LineTotal(it.Quantity, it.UnitPrice),
		})
	}
	if len(items) == 0 {
		items = nil
	}

	sale := domain.CreditSale{
		CreditSaleID:  uuid.NewString(),
		CustomerName:  customer,
		CustomerPhone: utils.TrimToNil(req.CustomerPhone),
		Description:   strings.TrimSpace(req.Description),
		Items:         items,
		Total:         req.Total,
		Installments:  req.Installments,
		AmountPaid:    req.AmountPaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	itemsTotal := sale.ItemsTotal()
	if sale.Total.IsZero() {
		sale.Total = itemsTotal
	}
	if !sale.Total.IsPositive() {
		return nil, validationError("total must be greater than zero")
	}
	if sale.Total.LessThan(itemsTotal) {
		return nil, validationError("total %s is less than the items total %s", utils.FormatBRL(sale.Total), utils.FormatBRL(itemsTotal))
	}
	if sale.AmountPaid.IsNegative() || sale.AmountPaid.GreaterThan(sale.Total) {
		return nil, validationError("amount paid must be between zero and the total")
	}

	sale.SaleDate = utils.StartOfDay(now)
	if req.SaleDate != "" {
		d, err := utils.ParseISODate(req.SaleDate, loc)
		if err != nil {
			return nil, validationError("sale date: %v", err)
		}
		sale.SaleDate = d
	}
	chargeDate, err := utils.ParseISODate(req.ChargeDate, loc)
	if err != nil {
		return nil, validationError("charge date: %v", err)
	}
	if chargeDate.Before(sale.SaleDate) {
		s.LogWarn(ctx, "Credit sale charge date is before its sale date",
			slog.String("sale_date", sale.SaleDate.Format(utils.ISODateLayout)),
			slog.String("charge_date", chargeDate.Format(utils.ISODateLayout)))
	}
	sale.ChargeDate = chargeDate

	if req.Reminder != nil && req.Reminder.Enabled {
		reminder, err := s.buildReminder(ctx, *req.Reminder, loc)
		if err != nil {
			return nil, err
		}
		sale.Reminder = reminder
		sale.Reminder.RemindAt = creditsale.RemindAt(sale)
	}

	creditsale.Recompute(&sale)

	if err := s.creditSaleRepo.SaveCreditSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save credit sale",
			slog.String("credit_sale_id", sale.CreditSaleID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit sale created",
		slog.String("credit_sale_id", sale.CreditSaleID),
		slog.String("total", sale.Total.String()),
		slog.String("status", string(sale.Status)))
	return &sale, nil
}

func (s *creditSaleService) buildReminder(ctx context.Context, req dto.ReminderRequest, loc *time.Location) (domain.ReminderPreference, error) {
	reminder := domain.ReminderPreference{Enabled: true}
	if req.DaysBefore != nil {
		if *req.DaysBefore < 0 {
			return reminder, validationError("reminder days before cannot be negative")
		}
		reminder.DaysBefore = *req.DaysBefore
	} else {
		reminder.DaysBefore = s.defaultReminderDays(ctx)
	}
	if req.RemindAt != nil && strings.TrimSpace(*req.RemindAt) != "" {
		at, err := utils.ParseISODate(strings.TrimSpace(*req.RemindAt), loc)
		if err != nil {
			return reminder, validationError("remind at: %v", err)
		}
		reminder.RemindAt = &at
	}
	return reminder, nil
}

func (s *creditSaleService) defaultReminderDays(ctx context.Context) int {
	if s.settingsRepo == nil {
		return domain.DefaultReminderDaysBefore
	}
	settings, err := s.settingsRepo.GetStoreSettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load store settings, using default reminder days")
		}
		return domain.DefaultReminderDaysBefore
	}
	return settings.DefaultReminderDays
}

func (s *creditSaleService) GetCreditSale(ctx context.Context, creditSaleID string) (*domain.CreditSale, error) {
	sale, err := s.creditSaleRepo.FindCreditSaleByID(ctx, creditSaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get credit sale %s: %w", creditSaleID, err)
	}
	return sale, nil
}

func (s *creditSaleService) ListCreditSales(ctx context.Context, params dto.ListCreditSalesParams) ([]domain.CreditSale, error) {
	filter := portsrepo.CreditSaleFilter{IncludeArchived: params.IncludeArchived}
	if params.Status != "" {
		status := domain.CreditSaleStatus(params.Status)
		if status != domain.CreditSaleOpen && status != domain.CreditSalePaid {
			return nil, validationError("unknown credit sale status %q", params.Status)
		}
		filter.Status = &status
	}
	sales, err := s.creditSaleRepo.ListCreditSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list credit sales")
		return nil, err
	}
	if sales == nil {
		return []domain.CreditSale{}, nil
	}
	return sales, nil
}

func (s *creditSaleService) ArchiveCreditSale(ctx context.Context, creditSaleID string, userID string) error {
	if err := s.creditSaleRepo.ArchiveCreditSale(ctx, creditSaleID, s.Now(), userID); err != nil {
		s.LogError(ctx, err, "Failed to archive credit sale", slog.String("credit_sale_id", creditSaleID))
		return err
	}
	s.LogInfo(ctx, "Credit sale archived", slog.String("credit_sale_id", creditSaleID))
	return nil
}

func (s *creditSaleService) ListPayments(ctx context.Context, creditSaleID string) ([]domain.CreditSalePayment, error) {
	if _, err := s.creditSaleRepo.FindCreditSaleByID(ctx, creditSaleID); err != nil {
		return nil, fmt.Errorf("failed to get credit sale %s: %w", creditSaleID, err)
	}
	payments, err := s.creditSaleRepo.ListPaymentsByCreditSale(ctx, creditSaleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("credit_sale_id", creditSaleID))
		return nil, err
	}
	if payments == nil {
		return []domain.CreditSalePayment{}, nil
	}
	return payments, nil
}

func (s *creditSaleService) ListDueReminders(ctx context.Context) ([]domain.CreditSale, error) {
	open := domain.CreditSaleOpen
	sales, err := s.creditSaleRepo.ListCreditSales(ctx, portsrepo.CreditSaleFilter{Status: &open})
	if err != nil {
		s.LogError(ctx, err, "Failed to list credit sales for reminders")
		return nil, err
	}
	return creditsale.DueReminders(sales, s.Now()), nil
}

// RegisterPayment never retries: a concurrent payment on the same sale surfaces as apperrors.ErrConflict
// and the operator reloads the sale before trying again.
func (s *creditSaleService) RegisterPayment(ctx context.Context, creditSaleID string, req dto.RegisterPaymentRequest, userID string) (*domain.PaymentReceipt, error) {
	sale, err := s.creditSaleRepo.FindCreditSaleByID(ctx, creditSaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get credit sale %s: %w", creditSaleID, err)
	}
	if sale.IsArchived() {
		return nil, fmt.Errorf("credit sale %s is archived: %w", creditSaleID, apperrors.ErrNotFound)
	}

	now := s.Now()
	remaining := creditsale.RemainingAmount(sale.Total, sale.AmountPaid)
	payment, err := creditsale.ValidateAndStampPayment(creditsale.PaymentCandidate{
		CreditSaleID:  sale.CreditSaleID,
		Amount:        req.Amount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PaymentDate:   req.PaymentDate,
		Notes:         req.Notes,
		CashSessionID: req.CashSessionID,
		CreatedBy:     userID,
	}, remaining, now)
	if err != nil {
		s.LogDebug(ctx, "Payment rejected",
			slog.String("credit_sale_id", creditSaleID),
			slog.String("reason", err.Error()))
		return nil, err
	}

	var ledger *domain.Transaction
	if payment.CashSessionID != nil {
		ledger, err = s.ledgerEntry(ctx, *sale, *payment, now)
		if err != nil {
			return nil, err
		}
		payment.TransactionID = &ledger.TransactionID
	}

	expectedVersion := sale.Version
	updated := *sale
	updated.AmountPaid = sale.AmountPaid.Add(payment.Amount)
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID
	updated.Version = expectedVersion + 1
	creditsale.Recompute(&updated)

	if err := s.creditSaleRepo.SavePayment(ctx, updated, expectedVersion, *payment, ledger); err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("credit_sale_id", creditSaleID),
			slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment registered",
		slog.String("credit_sale_id", creditSaleID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("status", string(updated.Status)))
	s.Track(userID, EventPaymentRegistered, map[string]any{
		"credit_sale_id": creditSaleID,
		"payment_method": string(payment.PaymentMethod),
		"settled":        updated.Status == domain.CreditSalePaid,
		"with_ledger":    ledger != nil,
	})

	return &domain.PaymentReceipt{Payment: *payment, Sale: updated}, nil
}

// ledgerEntry builds the entrada movement for a payment received at the register.
// It carries no credit sale reference so settlement filtering never hides it.
func (s *creditSaleService) ledgerEntry(ctx context.Context, sale domain.CreditSale, payment domain.CreditSalePayment, now time.Time) (*domain.Transaction, error) {
	session, err := s.cashSessionRepo.FindCashSessionByID(ctx, *payment.CashSessionID)
	if err != nil {
		return nil, fmt.Errorf("cash session %s: %w", *payment.CashSessionID, err)
	}
	if !session.IsOpen() {
		return nil, validationError("cash session %s is closed", session.CashSessionID)
	}
	method := payment.PaymentMethod
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionEntry,
		Description:   "Recebimento crediário - " + sale.CustomerName,
		Quantity:      decimal.NewFromInt(1),
		UnitPrice:     payment.Amount,
		Total:         payment.Amount,
		PaymentMethod: &method,
		CashSessionID: &session.CashSessionID,
		OccurredAt:    payment.PaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     payment.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: payment.CreatedBy,
			Version:       1,
		},
	}, nil
}
