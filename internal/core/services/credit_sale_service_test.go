package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/core/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var storeLocation = time.FixedZone("BRT", -3*60*60)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, storeLocation)
}

type CreditSaleServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	creditSaleRepo  *MockCreditSaleRepository
	cashSessionRepo *MockCashSessionRepository
	settingsRepo    *MockSettingsRepository
	service         portssvc.CreditSaleSvcFacade
}

func (suite *CreditSaleServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.creditSaleRepo = new(MockCreditSaleRepository)
	suite.cashSessionRepo = new(MockCashSessionRepository)
	suite.settingsRepo = new(MockSettingsRepository)
	suite.service = services.NewCreditSaleService(
		suite.creditSaleRepo,
		suite.cashSessionRepo,
		suite.settingsRepo,
		services.WithClock(fixedClock),
		services.WithLocation(storeLocation),
	)
}

func (suite *CreditSaleServiceTestSuite) openSale(total, paid int64) *domain.CreditSale {
	return &domain.CreditSale{
		CreditSaleID: "sale-1",
		CustomerName: "Maria",
		Total:        decimal.NewFromInt(total),
		AmountPaid:   decimal.NewFromInt(paid),
		Installments: 3,
		Status:       domain.CreditSaleOpen,
		SaleDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, storeLocation),
		ChargeDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, storeLocation),
		AuditFields:  domain.AuditFields{Version: 2},
	}
}

func (suite *CreditSaleServiceTestSuite) TestCreateCreditSale_TotalFromItemsAndDefaultReminder() {
	days := 3
	suite.settingsRepo.On("GetStoreSettings", suite.ctx).
		Return(&domain.StoreSettings{DefaultReminderDays: days}, nil).Once()
	suite.creditSaleRepo.On("SaveCreditSale", suite.ctx, mock.AnythingOfType("domain.CreditSale")).Return(nil).Once()

	req := dto.CreateCreditSaleRequest{
		CustomerName: "  Maria  ",
		Items: []dto.CreditSaleItemRequest{
			{Description: "Camisa", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(25)},
			{Description: "Calça", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50)},
		},
		Installments: 2,
		AmountPaid:   decimal.NewFromInt(20),
		ChargeDate:   "2024-04-15",
		Reminder:     &dto.ReminderRequest{Enabled: true},
	}

	sale, err := suite.service.CreateCreditSale(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Maria", sale.CustomerName)
	suite.True(decimal.NewFromInt(100).Equal(sale.Total))
	suite.True(decimal.NewFromInt(80).Equal(sale.RemainingAmount))
	suite.Equal(domain.CreditSaleOpen, sale.Status)
	suite.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, storeLocation), sale.SaleDate)
	suite.Equal(days, sale.Reminder.DaysBefore)
	suite.Require().NotNil(sale.Reminder.RemindAt)
	suite.Equal(time.Date(2024, 4, 12, 0, 0, 0, 0, storeLocation), *sale.Reminder.RemindAt)
	suite.Equal(int64(1), sale.Version)
	suite.creditSaleRepo.AssertExpectations(suite.T())
	suite.settingsRepo.AssertExpectations(suite.T())
}

func (suite *CreditSaleServiceTestSuite) TestCreateCreditSale_ChargeDateBeforeSaleDateIsAccepted() {
	suite.creditSaleRepo.On("SaveCreditSale", suite.ctx, mock.AnythingOfType("domain.CreditSale")).Return(nil).Once()

	sale, err := suite.service.CreateCreditSale(suite.ctx, dto.CreateCreditSaleRequest{
		CustomerName: "Ana",
		Total:        decimal.NewFromInt(10),
		Installments: 1,
		SaleDate:     "2024-03-10",
		ChargeDate:   "2024-03-05",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, storeLocation), sale.SaleDate)
	suite.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, storeLocation), sale.ChargeDate)
	suite.Equal(domain.CreditSaleOpen, sale.Status)
	suite.creditSaleRepo.AssertExpectations(suite.T())
}

func (suite *CreditSaleServiceTestSuite) TestCreateCreditSale_FullyPaidIsPaga() {
	suite.creditSaleRepo.On("SaveCreditSale", suite.ctx, mock.AnythingOfType("domain.CreditSale")).Return(nil).Once()

	sale, err := suite.service.CreateCreditSale(suite.ctx, dto.CreateCreditSaleRequest{
		CustomerName: "João",
		Total:        decimal.NewFromInt(50),
		AmountPaid:   decimal.NewFromInt(50),
		Installments: 1,
		ChargeDate:   "2024-03-20",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CreditSalePaid, sale.Status)
	suite.True(sale.RemainingAmount.IsZero())
}

func (suite *CreditSaleServiceTestSuite) TestCreateCreditSale_ValidationErrors() {
	tests := []struct {
		name string
		req  dto.CreateCreditSaleRequest
	}{
		{
			name: "blank customer",
			req:  dto.CreateCreditSaleRequest{CustomerName: " ", Total: decimal.NewFromInt(10), Installments: 1, ChargeDate: "2024-03-20"},
		},
		{
			name: "zero installments",
			req:  dto.CreateCreditSaleRequest{CustomerName: "Ana", Total: decimal.NewFromInt(10), ChargeDate: "2024-03-20"},
		},
		{
			name: "amount paid above total",
			req: dto.CreateCreditSaleRequest{CustomerName: "Ana", Total: decimal.NewFromInt(10),
				AmountPaid: decimal.NewFromInt(11), Installments: 1, ChargeDate: "2024-03-20"},
		},
		{
			name: "total below items",
			req: dto.CreateCreditSaleRequest{CustomerName: "Ana", Total: decimal.NewFromInt(10), Installments: 1, ChargeDate: "2024-03-20",
				Items: []dto.CreditSaleItemRequest{{Description: "Tênis", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(30)}}},
		},
		{
			name: "bad charge date",
			req:  dto.CreateCreditSaleRequest{CustomerName: "Ana", Total: decimal.NewFromInt(10), Installments: 1, ChargeDate: "15/03/2024"},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			sale, err := suite.service.CreateCreditSale(suite.ctx, tt.req, "user-1")
			suite.Nil(sale)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.creditSaleRepo.AssertNotCalled(suite.T(), "SaveCreditSale", mock.Anything, mock.Anything)
}

func (suite *CreditSaleServiceTestSuite) TestRegisterPayment_SettlesSale() {
	sale := suite.openSale(100, 40)
	suite.creditSaleRepo.On("FindCreditSaleByID", suite.ctx, "sale-1").Return(sale, nil).Once()
	suite.creditSaleRepo.On("SavePayment", suite.ctx,
		mock.MatchedBy(func(s domain.CreditSale) bool {
			return s.AmountPaid.Equal(decimal.NewFromInt(100)) && s.Status == domain.CreditSalePaid && s.Version == 3
		}),
		int64(2),
		mock.MatchedBy(func(p domain.CreditSalePayment) bool {
			return p.Amount.Equal(decimal.NewFromInt(60)) && p.PaymentDate.Equal(fixedClock()) && p.TransactionID == nil
		}),
		mock.MatchedBy(func(l *domain.Transaction) bool { return l == nil }),
	).Return(nil).Once()

	receipt, err := suite.service.RegisterPayment(suite.ctx, "sale-1", dto.RegisterPaymentRequest{
		Amount:        decimal.NewFromInt(60),
		PaymentMethod: string(domain.PaymentMethodPix),
		PaymentDate:   "2024-03-15",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CreditSalePaid, receipt.Sale.Status)
	suite.True(receipt.Sale.RemainingAmount.IsZero())
	suite.Equal("sale-1", receipt.Payment.CreditSaleID)
	suite.True(decimal.NewFromInt(40).Equal(sale.AmountPaid), "loaded sale is not mutated")
	suite.creditSaleRepo.AssertExpectations(suite.T())
}

func (suite *CreditSaleServiceTestSuite) TestRegisterPayment_BackdatedStampsNoon() {
	suite.creditSaleRepo.On("FindCreditSaleByID", suite.ctx, "sale-1").Return(suite.openSale(100, 0), nil).Once()
	suite.creditSaleRepo.On("SavePayment", suite.ctx, mock.Anything, int64(2), mock.Anything, mock.Anything).Return(nil).Once()

	receipt, err := suite.service.RegisterPayment(suite.ctx, "sale-1", dto.RegisterPaymentRequest{
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: string(domain.PaymentMethodCash),
		PaymentDate:   "2024-03-10",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 10, 12, 0, 0, 0, storeLocation), receipt.Payment.PaymentDate)
	suite.Equal(domain.CreditSaleOpen, receipt.Sale.Status)
}

func (suite *CreditSaleServiceTestSuite) TestRegisterPayment_ExceedsBalance() {
	suite.creditSaleRepo.On("FindCreditSaleByID", suite.ctx, "sale-1").Return(suite.openSale(100, 40), nil).Once()

	receipt, err := suite.service.RegisterPayment(suite.ctx, "sale-1", dto.RegisterPaymentRequest{
		Amount:        decimal.RequireFromString("60.01"),
		PaymentMethod: string(domain.PaymentMethodPix),
		PaymentDate:   "2024-03-15",
	}, "user-1")

	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrAmountExceedsBalance)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.creditSaleRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CreditSaleServiceTestSuite) TestRegisterPayment_ConcurrentWriterConflicts() {
	suite.creditSaleRepo.On("FindCreditSaleByID", suite.ctx, "sale-1").Return(suite.openSale(100, 40), nil).Once()
	suite.creditSaleRepo.On("SavePayment", suite.ctx, mock.Anything, int64(2), mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	receipt, err := suite.service.RegisterPayment(suite.ctx, "sale-1", dto.RegisterPaymentRequest{
		Amount:        decimal.NewFromInt(60),
		PaymentMethod: string(domain.PaymentMethodPix),
		PaymentDate:   "2024-03-15",
	}, "user-1")

	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.creditSaleRepo.AssertNumberOfCalls(suite.T(), "SavePayment", 1)
}

func (suite *CreditSaleServiceTestSuite) TestRegisterPayment_WritesLedgerEntryForOpenSession() {
	sessionID := "session-1"
	suite.creditSaleRepo.On("FindCreditSaleByID", suite.ctx, "sale-1").Return(suite.openSale(100, 0), nil).Once()
	suite.cashSessionRepo.On("FindCashSessionByID", suite.ctx, sessionID).
		Return(&domain.CashSession{CashSessionID: sessionID, Status: domain.CashSessionOpen}, nil).Once()

	var ledger *domain.Transaction
	var payment domain.CreditSalePayment
	suite.creditSaleRepo.On("SavePayment", suite.ctx, mock.Anything, int64(2), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			payment = args.Get(3).(domain.CreditSalePayment)
			ledger = args.Get(4).(*domain.Transaction)
		}).Return(nil).Once()

	_, err := suite.service.RegisterPayment(suite.ctx, "sale-1", dto.RegisterPaymentRequest{
		Amount:        decimal.NewFromInt(25),
		PaymentMethod: string(domain.PaymentMethodCash),
		PaymentDate:   "2024-03-15",
		CashSessionID: &sessionID,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(ledger)
	suite.Equal(domain.TransactionEntry, ledger.Type)
	suite.Nil(ledger.CreditSaleID)
	suite.True(decimal.NewFromInt(25).Equal(ledger.Total))
	suite.Equal(sessionID, *ledger.CashSessionID)
	suite.Require().NotNil(payment.TransactionID)
	suite.Equal(ledger.TransactionID, *payment.TransactionID)
}

func (suite *CreditSaleServiceTestSuite) TestRegisterPayment_ClosedSessionRejected() {
	sessionID := "session-1"
	suite.creditSaleRepo.On("FindCreditSaleByID", suite.ctx, "sale-1").Return(suite.openSale(100, 0), nil).Once()
	suite.cashSessionRepo.On("FindCashSessionByID", suite.ctx, sessionID).
		Return(&domain.CashSession{CashSessionID: sessionID, Status: domain.CashSessionClosed}, nil).Once()

	_, err := suite.service.RegisterPayment(suite.ctx, "sale-1", dto.RegisterPaymentRequest{
		Amount:        decimal.NewFromInt(25),
		PaymentMethod: string(domain.PaymentMethodCash),
		PaymentDate:   "2024-03-15",
		CashSessionID: &sessionID,
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.creditSaleRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CreditSaleServiceTestSuite) TestRegisterPayment_ArchivedSaleNotFound() {
	sale := suite.openSale(100, 0)
	archivedAt := fixedClock()
	sale.DeletedAt = &archivedAt
	suite.creditSaleRepo.On("FindCreditSaleByID", suite.ctx, "sale-1").Return(sale, nil).Once()

	_, err := suite.service.RegisterPayment(suite.ctx, "sale-1", dto.RegisterPaymentRequest{
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: string(domain.PaymentMethodPix),
		PaymentDate:   "2024-03-15",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CreditSaleServiceTestSuite) TestListPayments_UnknownSale() {
	suite.creditSaleRepo.On("FindCreditSaleByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	payments, err := suite.service.ListPayments(suite.ctx, "missing")

	suite.Nil(payments)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CreditSaleServiceTestSuite) TestListDueReminders() {
	due := *suite.openSale(100, 0)
	due.CreditSaleID = "due"
	due.ChargeDate = time.Date(2024, 3, 16, 0, 0, 0, 0, storeLocation)
	due.Reminder = domain.ReminderPreference{Enabled: true, DaysBefore: 1}

	later := due
	later.CreditSaleID = "later"
	later.ChargeDate = time.Date(2024, 3, 30, 0, 0, 0, 0, storeLocation)

	off := due
	off.CreditSaleID = "off"
	off.Reminder = domain.ReminderPreference{}

	open := domain.CreditSaleOpen
	suite.creditSaleRepo.On("ListCreditSales", suite.ctx, portsrepo.CreditSaleFilter{Status: &open}).
		Return([]domain.CreditSale{later, off, due}, nil).Once()

	sales, err := suite.service.ListDueReminders(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(sales, 1)
	suite.Equal("due", sales[0].CreditSaleID)
}

func TestCreditSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CreditSaleServiceTestSuite))
}
