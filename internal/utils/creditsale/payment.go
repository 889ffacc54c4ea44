package creditsale

import (
	"fmt"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentCandidate is a payment as typed by the operator, before validation.
type PaymentCandidate struct {
	CreditSaleID  string
	Amount        decimal.Decimal
	PaymentMethod domain.PaymentMethod
	// PaymentDate is a calendar date (YYYY-MM-DD) in the store's local time zone.
	PaymentDate   string
	Notes         *string
	CashSessionID *string
	TransactionID *string
	CreatedBy     string
}

// ValidateAndStampPayment checks the candidate against the remaining balance and
// returns a payment ready to be stored. It performs no I/O.
//
// A payment dated today is stamped with now; a backdated one gets local noon of
// the chosen date, so time zone conversions cannot move it to another day.
func ValidateAndStampPayment(candidate PaymentCandidate, remaining decimal.Decimal, now time.Time) (*domain.CreditSalePayment, error) {
	if !candidate.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if candidate.Amount.GreaterThan(remaining) {
		return nil, fmt.Errorf("%w: %s owed, %s offered", apperrors.ErrAmountExceedsBalance,
			utils.FormatBRL(remaining), utils.FormatBRL(candidate.Amount))
	}
	if !candidate.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, candidate.PaymentMethod)
	}

	chosen, err := utils.ParseISODate(candidate.PaymentDate, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	stamp := utils.NoonOf(chosen)
	if utils.SameCalendarDay(now, chosen) {
		stamp = now
	}

	return &domain.CreditSalePayment{
		PaymentID:     uuid.NewString(),
		CreditSaleID:  candidate.CreditSaleID,
		Amount:        candidate.Amount,
		PaymentDate:   stamp,
		PaymentMethod: candidate.PaymentMethod,
		CashSessionID: utils.TrimToNil(candidate.CashSessionID),
		TransactionID: utils.TrimToNil(candidate.TransactionID),
		Notes:         utils.TrimToNil(candidate.Notes),
		CreatedAt:     now,
		CreatedBy:     candidate.CreatedBy,
	}, nil
}
