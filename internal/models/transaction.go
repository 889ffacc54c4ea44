package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSplit is the JSON shape stored in payment_splits columns.
type PaymentSplit struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// Transaction is the transactions row.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	TransactionType string          `db:"transaction_type"`
	Description     string          `db:"description"`
	Quantity        decimal.Decimal `db:"quantity"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	Total           decimal.Decimal `db:"total"`
	PaymentMethod   *string         `db:"payment_method"`
	PaymentSplits   []PaymentSplit  `db:"payment_splits"`
	CreditSaleID    *string         `db:"credit_sale_id"`
	CashSessionID   *string         `db:"cash_session_id"`
	OccurredAt      time.Time       `db:"occurred_at"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
