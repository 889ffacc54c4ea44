package creditsale

import "github.com/SscSPs/retail_pos_app/internal/core/domain"

// IsSettled reports whether tx may be counted as revenue.
// A transaction pointing at a sale missing from statuses is not settled.
func IsSettled(tx domain.Transaction, statuses StatusMap) bool {
	if tx.CreditSaleID == nil {
		return true
	}
	status, ok := statuses[*tx.CreditSaleID]
	if !ok {
		return false
	}
	return status == domain.CreditSalePaid
}

// IsResolved reports whether tx has no credit sale or one present in statuses.
func IsResolved(tx domain.Transaction, statuses StatusMap) bool {
	if tx.CreditSaleID == nil {
		return true
	}
	_, ok := statuses[*tx.CreditSaleID]
	return ok
}

// FilterSettledTransactions keeps the transactions whose credit sale, if any, is paid.
// With no sales at all the input is returned as is.
func FilterSettledTransactions(txs []domain.Transaction, sales []domain.CreditSale) []domain.Transaction {
	if len(sales) == 0 {
		return txs
	}
	settled := make([]domain.Transaction, 0, len(txs))
	if len(txs) == 0 {
		return settled
	}
	statuses := BuildCreditSaleStatusMap(sales)
	for _, tx := range txs {
		if IsSettled(tx, statuses) {
			settled = append(settled, tx)
		}
	}
	return settled
}

// CountUnresolved counts transactions whose credit sale is not in sales.
func CountUnresolved(txs []domain.Transaction, sales []domain.CreditSale) int {
	if len(sales) == 0 {
		return 0
	}
	statuses := BuildCreditSaleStatusMap(sales)
	count := 0
	for _, tx := range txs {
		if !IsResolved(tx, statuses) {
			count++
		}
	}
	return count
}
