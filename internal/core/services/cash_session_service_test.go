package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/core/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CashSessionServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	cashSessionRepo *MockCashSessionRepository
	transactionRepo *MockTransactionRepository
	service         portssvc.CashSessionSvcFacade
}

func (suite *CashSessionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.cashSessionRepo = new(MockCashSessionRepository)
	suite.transactionRepo = new(MockTransactionRepository)
	suite.service = services.NewCashSessionService(
		suite.cashSessionRepo,
		suite.transactionRepo,
		services.WithClock(fixedClock),
		services.WithLocation(storeLocation),
	)
}

func (suite *CashSessionServiceTestSuite) TestOpenCashSession_Success() {
	suite.cashSessionRepo.On("FindOpenCashSession", suite.ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.cashSessionRepo.On("SaveCashSession", suite.ctx, mock.AnythingOfType("domain.CashSession")).Return(nil).Once()

	session, err := suite.service.OpenCashSession(suite.ctx, dto.OpenCashSessionRequest{OpeningAmount: decimal.NewFromInt(50)}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CashSessionOpen, session.Status)
	suite.NotEmpty(session.CashSessionID)
	suite.cashSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestOpenCashSession_AlreadyOpen() {
	suite.cashSessionRepo.On("FindOpenCashSession", suite.ctx).
		Return(&domain.CashSession{CashSessionID: "session-1", Status: domain.CashSessionOpen}, nil).Once()

	session, err := suite.service.OpenCashSession(suite.ctx, dto.OpenCashSessionRequest{OpeningAmount: decimal.NewFromInt(50)}, "user-1")

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.cashSessionRepo.AssertNotCalled(suite.T(), "SaveCashSession", mock.Anything, mock.Anything)
}

func (suite *CashSessionServiceTestSuite) TestCloseCashSession_ComputesDifference() {
	cash := domain.PaymentMethodCash
	pix := domain.PaymentMethodPix
	suite.cashSessionRepo.On("FindCashSessionByID", suite.ctx, "session-1").Return(&domain.CashSession{
		CashSessionID: "session-1",
		OpeningAmount: decimal.NewFromInt(100),
		Status:        domain.CashSessionOpen,
		AuditFields:   domain.AuditFields{Version: 1},
	}, nil).Once()
	suite.transactionRepo.On("ListTransactionsByCashSession", suite.ctx, "session-1").Return([]domain.Transaction{
		{Type: domain.TransactionSale, Total: decimal.NewFromInt(80), PaymentMethod: &cash},
		{Type: domain.TransactionSale, Total: decimal.NewFromInt(200), PaymentMethod: &pix},
		{Type: domain.TransactionExpense, Total: decimal.NewFromInt(30), PaymentMethod: &cash},
	}, nil).Once()
	suite.cashSessionRepo.On("CloseCashSession", suite.ctx, mock.AnythingOfType("domain.CashSession"), int64(1)).Return(nil).Once()

	closed, err := suite.service.CloseCashSession(suite.ctx, "session-1", dto.CloseCashSessionRequest{DeclaredAmount: decimal.NewFromInt(145)}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CashSessionClosed, closed.Status)
	suite.True(decimal.NewFromInt(150).Equal(*closed.ExpectedAmount))
	suite.True(decimal.NewFromInt(-5).Equal(*closed.Difference))
	suite.Equal(int64(2), closed.Version)
	suite.cashSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestCloseCashSession_AlreadyClosed() {
	suite.cashSessionRepo.On("FindCashSessionByID", suite.ctx, "session-1").
		Return(&domain.CashSession{CashSessionID: "session-1", Status: domain.CashSessionClosed}, nil).Once()

	_, err := suite.service.CloseCashSession(suite.ctx, "session-1", dto.CloseCashSessionRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCashSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashSessionServiceTestSuite))
}
