package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger movement.
type TransactionType string

const (
	TransactionEntry   TransactionType = "entrada" // money in that is not a sale
	TransactionExit    TransactionType = "saida"   // money out that is not an expense
	TransactionSale    TransactionType = "venda"
	TransactionExpense TransactionType = "despesa"
)

// TransactionTypes lists every accepted transaction type.
var TransactionTypes = []TransactionType{TransactionEntry, TransactionExit, TransactionSale, TransactionExpense}

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsInflow reports whether the type brings money into the register.
func (t TransactionType) IsInflow() bool {
	return t == TransactionSale || t == TransactionEntry
}

// Transaction is a single ledger movement recorded at the register.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty"`
	PaymentSplits []PaymentSplit  `json:"paymentSplits,omitempty"`
	// CreditSaleID is a weak back-reference to the credit sale this movement came from.
	CreditSaleID  *string   `json:"creditSaleID,omitempty"`
	CashSessionID *string   `json:"cashSessionID,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the transaction has been soft deleted.
func (t Transaction) IsDeleted() bool {
	return t.DeletedAt != nil
}

// MethodAmounts returns the amount paid per method. Splits win over the single method.
func (t Transaction) MethodAmounts() []PaymentSplit {
	if len(t.PaymentSplits) > 0 {
		return t.PaymentSplits
	}
	if t.PaymentMethod == nil {
		return nil
	}
	return []PaymentSplit{{Method: *t.PaymentMethod, Amount: t.Total}}
}
