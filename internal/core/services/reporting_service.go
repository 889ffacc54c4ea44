package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/utils/creditsale"
	"github.com/SscSPs/retail_pos_app/internal/utils/reporting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ServiceOption) portssvc.ReportingService {
	return &reportingService{
		BaseService:   newBaseService(options...),
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Summary aggregates the period after dropping transactions tied to credit sales that are not paid yet.
func (s *reportingService) Summary(ctx context.Context, params dto.ReportSummaryParams) (*domain.ReportSummary, error) {
	period, err := s.parsePeriod(params.From, params.To)
	if err != nil {
		return nil, err
	}
	rankBy := domain.RankByRevenue
	if params.RankBy != "" {
		rankBy = domain.RankBy(params.RankBy)
	}
	if rankBy != domain.RankByRevenue && rankBy != domain.RankByVolume {
		return nil, validationError("unknown ranking %q", params.RankBy)
	}

	snapshot, err := s.reportingRepo.LoadReportSnapshot(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load report data",
			slog.Time("from", period.From),
			slog.Time("to", period.To))
		return nil, fmt.Errorf("failed to load report data: %w", err)
	}

	unresolved := creditsale.CountUnresolved(snapshot.Transactions, snapshot.CreditSales)
	if unresolved > 0 {
		s.LogWarn(ctx, "Transactions reference credit sales that were not found, excluded from report",
			slog.Int("count", unresolved),
			slog.String("reason", apperrors.ErrStaleReference.Error()))
	}

	settled := creditsale.FilterSettledTransactions(snapshot.Transactions, snapshot.CreditSales)
	summary := reporting.AggregateReport(settled, snapshot.ServiceOrders, period, rankBy)
	summary.UnresolvedCreditSales = unresolved

	s.LogInfo(ctx, "Summary report generated",
		slog.Int("transactions", len(snapshot.Transactions)),
		slog.Int("settled_transactions", len(settled)),
		slog.Int("service_orders", len(snapshot.ServiceOrders)))
	return &summary, nil
}
