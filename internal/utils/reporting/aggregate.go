// Package reporting rolls transactions and service orders up into chart-ready summaries.
// Every function here is pure and treats empty input as a zeroed result.
package reporting

import (
	"sort"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// TopDescriptionsLimit is how many descriptions the ranking keeps.
const TopDescriptionsLimit = 5

// AggregateReport builds the summary of a period. Soft-deleted records and
// records outside period are ignored. Callers filter unsettled credit sales first.
// The balance is (venda + entrada) - (saida + despesa).
func AggregateReport(transactions []domain.Transaction, orders []domain.ServiceOrder, period domain.ReportPeriod, rankBy domain.RankBy) domain.ReportSummary {
	txs := transactionsInPeriod(transactions, period)
	ords := ordersInPeriod(orders, period)

	balance := accounting.NetBalance(txs)
	return domain.ReportSummary{
		Period:          period,
		Totals:          TotalsByType(txs),
		BalanceAmount:   balance.Abs(),
		BalancePositive: !balance.IsNegative(),
		PaymentMethods:  PaymentMethodBreakdown(txs, ords),
		TopDescriptions: TopDescriptions(txs, rankBy, TopDescriptionsLimit),
		Funnel:          BuildFunnel(ords),
	}
}

// TotalsByType sums transaction totals per type. Types with no transactions are absent.
func TotalsByType(txs []domain.Transaction) map[domain.TransactionType]decimal.Decimal {
	totals := make(map[domain.TransactionType]decimal.Decimal)
	for _, tx := range txs {
		totals[tx.Type] = totals[tx.Type].Add(tx.Total)
	}
	return totals
}

// PaymentMethodBreakdown sums money received per method from inflow transactions
// and completed service orders. Zero-value methods are left out; the result is
// sorted by amount, largest first.
func PaymentMethodBreakdown(txs []domain.Transaction, orders []domain.ServiceOrder) []domain.MethodAmount {
	sums := make(map[domain.PaymentMethod]decimal.Decimal)
	for _, tx := range txs {
		if !tx.Type.IsInflow() {
			continue
		}
		for _, split := range tx.MethodAmounts() {
			sums[split.Method] = sums[split.Method].Add(split.Amount)
		}
	}
	for _, order := range orders {
		if order.Status != domain.ServiceOrderCompleted {
			continue
		}
		for _, split := range order.MethodAmounts() {
			sums[split.Method] = sums[split.Method].Add(split.Amount)
		}
	}

	breakdown := make([]domain.MethodAmount, 0, len(sums))
	for method, amount := range sums {
		if amount.IsZero() {
			continue
		}
		breakdown = append(breakdown, domain.MethodAmount{Method: method, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
		}
		return breakdown[i].Method < breakdown[j].Method
	})
	return breakdown
}

func transactionsInPeriod(txs []domain.Transaction, period domain.ReportPeriod) []domain.Transaction {
	kept := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsDeleted() || !period.Contains(tx.OccurredAt) {
			continue
		}
		kept = append(kept, tx)
	}
	return kept
}

func ordersInPeriod(orders []domain.ServiceOrder, period domain.ReportPeriod) []domain.ServiceOrder {
	kept := make([]domain.ServiceOrder, 0, len(orders))
	for _, order := range orders {
		if order.IsDeleted() || !period.Contains(order.OpenedAt) {
			continue
		}
		kept = append(kept, order)
	}
	return kept
}
