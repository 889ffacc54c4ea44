package accounting

import (
	"fmt"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the sign of a movement to its total.
// venda and entrada add to the register, saida and despesa take from it.
func CalculateSignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.TransactionSale, domain.TransactionEntry:
		return txn.Total, nil
	case domain.TransactionExit, domain.TransactionExpense:
		return txn.Total.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' encountered for transaction ID %s", txn.Type, txn.TransactionID)
	}
}

// NetBalance is inflows minus outflows. Unknown types are skipped.
func NetBalance(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		signed, err := CalculateSignedAmount(txn)
		if err != nil {
			continue
		}
		sum = sum.Add(signed)
	}
	return sum
}

// CashMovement is the signed part of a movement paid in cash (dinheiro).
func CashMovement(txn domain.Transaction) decimal.Decimal {
	cash := decimal.Zero
	for _, split := range txn.MethodAmounts() {
		if split.Method == domain.PaymentMethodCash {
			cash = cash.Add(split.Amount)
		}
	}
	if !txn.Type.IsInflow() {
		cash = cash.Neg()
	}
	return cash
}

// ExpectedDrawerAmount is what should be in the drawer: opening amount plus
// cash movements of non-deleted transactions.
func ExpectedDrawerAmount(opening decimal.Decimal, txns []domain.Transaction) decimal.Decimal {
	expected := opening
	for _, txn := range txns {
		if txn.IsDeleted() {
			continue
		}
		expected = expected.Add(CashMovement(txn))
	}
	return expected
}

// LineTotal is quantity times unit price rounded to cents.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}

// ValidateSplits checks that payment splits are positive, use known methods and add up to total.
func ValidateSplits(splits []domain.PaymentSplit, total decimal.Decimal) error {
	sum := decimal.Zero
	for i, split := range splits {
		if !split.Method.IsValid() {
			return fmt.Errorf("unknown payment method '%s' in split %d", split.Method, i)
		}
		if !split.Amount.IsPositive() {
			return fmt.Errorf("split %d amount must be positive", i)
		}
		sum = sum.Add(split.Amount)
	}
	if !sum.Equal(total) {
		return fmt.Errorf("payment splits do not add up to total: sum is %s, total is %s", sum.String(), total.String())
	}
	return nil
}
