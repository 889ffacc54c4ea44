package dto

import (
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentSplitRequest is the share of a sale paid with one method.
type PaymentSplitRequest struct {
	Method string          `json:"method" binding:"required,paymentmethod"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateTransactionRequest defines a register movement.
// Quantity defaults to 1. Total defaults to quantity times unit price.
type CreateTransactionRequest struct {
	Type          string                `json:"type" binding:"required,txtype"`
	Description   string                `json:"description" binding:"required"`
	Quantity      *decimal.Decimal      `json:"quantity"`
	UnitPrice     decimal.Decimal       `json:"unitPrice"`
	Total         *decimal.Decimal      `json:"total"`
	PaymentMethod *string               `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	PaymentSplits []PaymentSplitRequest `json:"paymentSplits" binding:"omitempty,dive"`
	CreditSaleID  *string               `json:"creditSaleID"`
	OccurredAt    *time.Time            `json:"occurredAt"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// From and To are calendar dates (YYYY-MM-DD).
type ListTransactionsParams struct {
	From      string  `form:"from"`
	To        string  `form:"to"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}

// ToDomainSplits converts split requests to domain splits.
func ToDomainSplits(reqs []PaymentSplitRequest) []domain.PaymentSplit {
	if len(reqs) == 0 {
		return nil
	}
	splits := make([]domain.PaymentSplit, len(reqs))
	for i, r := range reqs {
		splits[i] = domain.PaymentSplit{Method: domain.PaymentMethod(r.Method), Amount: r.Amount}
	}
	return splits
}
