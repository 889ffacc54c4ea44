package repositories

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// ReportSnapshot is everything a summary report is computed from, read at one point in time.
type ReportSnapshot struct {
	Transactions  []domain.Transaction
	CreditSales   []domain.CreditSale
	ServiceOrders []domain.ServiceOrder
}

// ReportingRepository defines operations for retrieving report data
type ReportingRepository interface {
	// LoadReportSnapshot reads the non-deleted transactions and service orders of period
	// and every credit sale, archived ones included, in a single read-only transaction.
	LoadReportSnapshot(ctx context.Context, period domain.ReportPeriod) (*ReportSnapshot, error)
}
