package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/core/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *MockReportingRepository
	service portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.repo, services.WithClock(fixedClock), services.WithLocation(storeLocation))
}

func (suite *ReportingServiceTestSuite) TestSummary_ExcludesUnsettledCreditSales() {
	pix := domain.PaymentMethodPix
	at := time.Date(2024, 3, 10, 15, 0, 0, 0, storeLocation)
	one := decimal.NewFromInt(1)
	snapshot := &portsrepo.ReportSnapshot{
		Transactions: []domain.Transaction{
			{TransactionID: "plain", Type: domain.TransactionSale, Description: "Camisa", Quantity: one,
				Total: decimal.NewFromInt(50), PaymentMethod: &pix, OccurredAt: at},
			{TransactionID: "settled", Type: domain.TransactionSale, Description: "Calça", Quantity: one,
				Total: decimal.NewFromInt(100), PaymentMethod: &pix, OccurredAt: at, CreditSaleID: strPtr("paid-sale")},
			{TransactionID: "pending", Type: domain.TransactionSale, Description: "Jaqueta", Quantity: one,
				Total: decimal.NewFromInt(300), PaymentMethod: &pix, OccurredAt: at, CreditSaleID: strPtr("open-sale")},
			{TransactionID: "stale", Type: domain.TransactionSale, Description: "Boné", Quantity: one,
				Total: decimal.NewFromInt(20), PaymentMethod: &pix, OccurredAt: at, CreditSaleID: strPtr("gone")},
		},
		CreditSales: []domain.CreditSale{
			{CreditSaleID: "paid-sale", Total: decimal.NewFromInt(100), AmountPaid: decimal.NewFromInt(100)},
			{CreditSaleID: "open-sale", Total: decimal.NewFromInt(300), AmountPaid: decimal.NewFromInt(10)},
		},
	}
	suite.repo.On("LoadReportSnapshot", suite.ctx, mock.AnythingOfType("domain.ReportPeriod")).Return(snapshot, nil).Once()

	summary, err := suite.service.Summary(suite.ctx, dto.ReportSummaryParams{From: "2024-03-01", To: "2024-03-31"})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(150).Equal(summary.Totals[domain.TransactionSale]))
	suite.Equal(1, summary.UnresolvedCreditSales)
	suite.Require().Len(summary.TopDescriptions, 2)
	suite.Equal("Calça", summary.TopDescriptions[0].Description)
	suite.True(summary.BalancePositive)
}

func (suite *ReportingServiceTestSuite) TestSummary_LogsStaleCreditSaleReferences() {
	var buf bytes.Buffer
	ctx := middleware.WithLogger(suite.ctx, slog.New(slog.NewJSONHandler(&buf, nil)))
	pix := domain.PaymentMethodPix
	snapshot := &portsrepo.ReportSnapshot{
		Transactions: []domain.Transaction{
			{TransactionID: "stale", Type: domain.TransactionSale, Description: "Boné", Quantity: decimal.NewFromInt(1),
				Total: decimal.NewFromInt(20), PaymentMethod: &pix,
				OccurredAt: time.Date(2024, 3, 10, 15, 0, 0, 0, storeLocation), CreditSaleID: strPtr("gone")},
		},
		CreditSales: []domain.CreditSale{
			{CreditSaleID: "other", Total: decimal.NewFromInt(10), AmountPaid: decimal.NewFromInt(10)},
		},
	}
	suite.repo.On("LoadReportSnapshot", ctx, mock.AnythingOfType("domain.ReportPeriod")).Return(snapshot, nil).Once()

	summary, err := suite.service.Summary(ctx, dto.ReportSummaryParams{})

	suite.Require().NoError(err)
	suite.Equal(1, summary.UnresolvedCreditSales)
	suite.Empty(summary.Totals)
	suite.Contains(buf.String(), `"level":"WARN"`)
	suite.Contains(buf.String(), `"reason":"`+apperrors.ErrStaleReference.Error()+`"`)
	suite.Contains(buf.String(), `"count":1`)
}

func (suite *ReportingServiceTestSuite) TestSummary_RepoError() {
	suite.repo.On("LoadReportSnapshot", suite.ctx, mock.Anything).Return(nil, assert.AnError).Once()

	summary, err := suite.service.Summary(suite.ctx, dto.ReportSummaryParams{})

	suite.Nil(summary)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestSummary_BadDate() {
	_, err := suite.service.Summary(suite.ctx, dto.ReportSummaryParams{From: "março"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "LoadReportSnapshot", mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
