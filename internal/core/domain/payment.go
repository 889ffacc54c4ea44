package domain

import "github.com/shopspring/decimal"

// PaymentMethod is how a customer paid for a sale, order or installment.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "dinheiro"
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodCredit PaymentMethod = "cartao_credito"
	PaymentMethodDebit  PaymentMethod = "cartao_debito"
	PaymentMethodOther  PaymentMethod = "outro"
)

// PaymentMethods lists every accepted method in display order.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodPix,
	PaymentMethodCredit,
	PaymentMethodDebit,
	PaymentMethodOther,
}

// IsValid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) IsValid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// PaymentSplit is the share of a single sale paid with one method.
type PaymentSplit struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// SumSplits adds up the amounts of all splits.
func SumSplits(splits []PaymentSplit) decimal.Decimal {
	total := decimal.Zero
	for _, s := range splits {
		total = total.Add(s.Amount)
	}
	return total
}
