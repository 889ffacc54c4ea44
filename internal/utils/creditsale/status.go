// Package creditsale holds the pure rules for credit sales: status derivation,
// payment validation and the settlement filter used by reports.
package creditsale

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettlementTolerance absorbs rounding noise when comparing paid and total amounts.
var SettlementTolerance = decimal.RequireFromString("0.005")

// DeriveStatus returns paga when what is left to pay is within SettlementTolerance.
func DeriveStatus(total, amountPaid decimal.Decimal) domain.CreditSaleStatus {
	if total.Sub(amountPaid).LessThanOrEqual(SettlementTolerance) {
		return domain.CreditSalePaid
	}
	return domain.CreditSaleOpen
}

// RemainingAmount is total minus amountPaid, never below zero.
func RemainingAmount(total, amountPaid decimal.Decimal) decimal.Decimal {
	remaining := total.Sub(amountPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Recompute refreshes the cached Status and RemainingAmount of sale.
func Recompute(sale *domain.CreditSale) {
	sale.Status = DeriveStatus(sale.Total, sale.AmountPaid)
	sale.RemainingAmount = RemainingAmount(sale.Total, sale.AmountPaid)
}

// StatusMap maps a credit sale id to its derived status.
type StatusMap map[string]domain.CreditSaleStatus

// BuildCreditSaleStatusMap derives the status of every sale that has an id.
// The persisted status is ignored; it is only a cache.
func BuildCreditSaleStatusMap(sales []domain.CreditSale) StatusMap {
	statuses := make(StatusMap, len(sales))
	for _, sale := range sales {
		if sale.CreditSaleID == "" {
			continue
		}
		statuses[sale.CreditSaleID] = DeriveStatus(sale.Total, sale.AmountPaid)
	}
	return statuses
}
