package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditSaleStatus is the settlement state of a credit sale.
type CreditSaleStatus string

const (
	CreditSaleOpen CreditSaleStatus = "em_aberto"
	CreditSalePaid CreditSaleStatus = "paga"
)

// CreditSaleItem is one line of an itemized credit sale.
type CreditSaleItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// ReminderPreference controls when the operator is reminded to charge the customer.
type ReminderPreference struct {
	Enabled    bool       `json:"enabled"`
	DaysBefore int        `json:"daysBefore"`
	RemindAt   *time.Time `json:"remindAt,omitempty"`
}

// CreditSale is a sale recorded before full payment and settled through installments.
type CreditSale struct {
	CreditSaleID    string             `json:"creditSaleID"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   *string            `json:"customerPhone,omitempty"`
	Description     string             `json:"description"`
	Items           []CreditSaleItem   `json:"items,omitempty"`
	Total           decimal.Decimal    `json:"total"`
	Installments    int                `json:"installments"`
	AmountPaid      decimal.Decimal    `json:"amountPaid"`
	RemainingAmount decimal.Decimal    `json:"remainingAmount"`
	Status          CreditSaleStatus   `json:"status"`
	SaleDate        time.Time          `json:"saleDate"`
	ChargeDate      time.Time          `json:"chargeDate"`
	Reminder        ReminderPreference `json:"reminder"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsArchived reports whether the sale has been soft deleted.
func (s CreditSale) IsArchived() bool {
	return s.DeletedAt != nil
}

// ItemsTotal sums the line totals of all items.
func (s CreditSale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LineTotal)
	}
	return total
}

// CreditSalePayment is one installment received against a credit sale. Immutable once stored.
type CreditSalePayment struct {
	PaymentID     string          `json:"paymentID"`
	CreditSaleID  string          `json:"creditSaleID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CashSessionID *string         `json:"cashSessionID,omitempty"`
	TransactionID *string         `json:"transactionID,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// PaymentReceipt is the outcome of registering a payment: the stored payment and the sale as it stands afterwards.
type PaymentReceipt struct {
	Payment CreditSalePayment `json:"payment"`
	Sale    CreditSale        `json:"sale"`
}
