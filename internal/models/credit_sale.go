package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditSale is the credit_sales row. Items are stored as JSONB.
type CreditSale struct {
	CreditSaleID     string           `db:"credit_sale_id"`
	CustomerName     string           `db:"customer_name"`
	CustomerPhone    *string          `db:"customer_phone"`
	Description      string           `db:"description"`
	Items            []CreditSaleItem `db:"items"`
	Total            decimal.Decimal  `db:"total"`
	Installments     int              `db:"installments"`
	AmountPaid       decimal.Decimal  `db:"amount_paid"`
	Status           string           `db:"status"`
	SaleDate         time.Time        `db:"sale_date"`
	ChargeDate       time.Time        `db:"charge_date"`
	ReminderEnabled  bool             `db:"reminder_enabled"`
	ReminderDays     int              `db:"reminder_days_before"`
	ReminderAt       *time.Time       `db:"remind_at"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// CreditSaleItem is the JSON shape of one element of credit_sales.items.
type CreditSaleItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// CreditSalePayment is the credit_sale_payments row.
type CreditSalePayment struct {
	PaymentID     string          `db:"payment_id"`
	CreditSaleID  string          `db:"credit_sale_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	PaymentMethod string          `db:"payment_method"`
	CashSessionID *string         `db:"cash_session_id"`
	TransactionID *string         `db:"transaction_id"`
	Notes         *string         `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
