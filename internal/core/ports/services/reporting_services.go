package services

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/dto"
)

// ReportingService defines operations for generating reports
type ReportingService interface {
	// Summary builds the period summary over settled transactions.
	Summary(ctx context.Context, params dto.ReportSummaryParams) (*domain.ReportSummary, error)
}
