package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/handlers"
	"github.com/SscSPs/retail_pos_app/internal/platform/config"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CreditSaleService ---
type MockCreditSaleService struct {
	mock.Mock
}

func (m *MockCreditSaleService) GetCreditSale(ctx context.Context, creditSaleID string) (*domain.CreditSale, error) {
	args := m.Called(ctx, creditSaleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditSale), args.Error(1)
}
func (m *MockCreditSaleService) ListCreditSales(ctx context.Context, params dto.ListCreditSalesParams) ([]domain.CreditSale, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditSale), args.Error(1)
}
func (m *MockCreditSaleService) ListPayments(ctx context.Context, creditSaleID string) ([]domain.CreditSalePayment, error) {
	args := m.Called(ctx, creditSaleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditSalePayment), args.Error(1)
}
func (m *MockCreditSaleService) ListDueReminders(ctx context.Context) ([]domain.CreditSale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditSale), args.Error(1)
}
func (m *MockCreditSaleService) CreateCreditSale(ctx context.Context, req dto.CreateCreditSaleRequest, userID string) (*domain.CreditSale, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditSale), args.Error(1)
}
func (m *MockCreditSaleService) ArchiveCreditSale(ctx context.Context, creditSaleID string, userID string) error {
	args := m.Called(ctx, creditSaleID, userID)
	return args.Error(0)
}
func (m *MockCreditSaleService) RegisterPayment(ctx context.Context, creditSaleID string, req dto.RegisterPaymentRequest, userID string) (*domain.PaymentReceipt, error) {
	args := m.Called(ctx, creditSaleID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReceipt), args.Error(1)
}

var _ portssvc.CreditSaleSvcFacade = (*MockCreditSaleService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, params dto.ReportSummaryParams) (*domain.ReportSummary, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportSummary), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) EnsureUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

const testJWTSecret = "test-secret"

type HandlersTestSuite struct {
	suite.Suite
	router            *gin.Engine
	creditSaleService *MockCreditSaleService
	reportingService  *MockReportingService
	userService       *MockUserService
	tokenService      *MockTokenService
	token             string
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.creditSaleService = new(MockCreditSaleService)
	suite.reportingService = new(MockReportingService)
	suite.userService = new(MockUserService)
	suite.tokenService = new(MockTokenService)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	container := &portssvc.ServiceContainer{
		CreditSale: suite.creditSaleService,
		Reporting:  suite.reportingService,
		User:       suite.userService,
		Token:      suite.tokenService,
	}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, nil)

	token, err := utils.GenerateJWT("user-1", "caixa1", testJWTSecret, time.Hour, "test", time.Now())
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *HandlersTestSuite) do(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestMissingToken() {
	w := suite.do(http.MethodGet, "/api/v1/credit-sales", nil, false)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestBadToken() {
	suite.token = "not-a-jwt"
	w := suite.do(http.MethodGet, "/api/v1/credit-sales", nil, true)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestLogin() {
	user := &domain.User{UserID: "user-1", Username: "caixa1"}
	expires := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)
	suite.userService.On("AuthenticateUser", mock.Anything, "caixa1", "password123").Return(user, nil).Once()
	suite.userService.On("AuthenticateUser", mock.Anything, "caixa1", "wrong").Return(nil, apperrors.ErrUnauthorized).Once()
	suite.tokenService.On("GenerateAccessToken", mock.Anything, user).Return("signed", expires, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "caixa1", Password: "password123"}, false)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed", resp.Token)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "caixa1", Password: "wrong"}, false)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestRegisterPayment_Created() {
	req := dto.RegisterPaymentRequest{
		Amount:        decimal.NewFromInt(60),
		PaymentMethod: string(domain.PaymentMethodPix),
		PaymentDate:   "2024-03-15",
	}
	receipt := &domain.PaymentReceipt{
		Payment: domain.CreditSalePayment{PaymentID: "pay-1", CreditSaleID: "sale-1", Amount: decimal.NewFromInt(60)},
		Sale:    domain.CreditSale{CreditSaleID: "sale-1", Status: domain.CreditSalePaid, Total: decimal.NewFromInt(100)},
	}
	suite.creditSaleService.On("RegisterPayment", mock.Anything, "sale-1", mock.AnythingOfType("dto.RegisterPaymentRequest"), "user-1").
		Return(receipt, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/credit-sales/sale-1/payments", req, true)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.PaymentReceiptResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pay-1", resp.Payment.PaymentID)
	suite.Equal(domain.CreditSalePaid, resp.Sale.Status)
	suite.Equal("R$ 60,00", resp.Payment.AmountFormatted)
	suite.creditSaleService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestRegisterPayment_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "exceeds balance", err: apperrors.ErrAmountExceedsBalance, status: http.StatusBadRequest},
		{name: "sale not found", err: apperrors.ErrNotFound, status: http.StatusNotFound},
		{name: "concurrent payment", err: apperrors.ErrConflict, status: http.StatusConflict},
		{name: "database down", err: apperrors.ErrPersistence, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.creditSaleService.On("RegisterPayment", mock.Anything, "sale-1", mock.Anything, "user-1").
				Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/credit-sales/sale-1/payments", dto.RegisterPaymentRequest{
				Amount:        decimal.NewFromInt(10),
				PaymentMethod: string(domain.PaymentMethodCash),
				PaymentDate:   "2024-03-15",
			}, true)

			suite.Equal(tt.status, w.Code)
		})
	}
}

func (suite *HandlersTestSuite) TestRegisterPayment_UnknownMethodRejectedByBinding() {
	w := suite.do(http.MethodPost, "/api/v1/credit-sales/sale-1/payments", dto.RegisterPaymentRequest{
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "cheque",
		PaymentDate:   "2024-03-15",
	}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.creditSaleService.AssertNotCalled(suite.T(), "RegisterPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListDueReminders() {
	remaining := decimal.NewFromInt(80)
	suite.creditSaleService.On("ListDueReminders", mock.Anything).Return([]domain.CreditSale{
		{CreditSaleID: "sale-1", CustomerName: "Maria", RemainingAmount: remaining,
			Reminder: domain.ReminderPreference{Enabled: true, DaysBefore: 1},
			ChargeDate: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/credit-sales/reminders", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []dto.ReminderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("80.00", resp[0].RemainingAmount)
	suite.Require().NotNil(resp[0].RemindAt)
	suite.True(resp[0].RemindAt.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func (suite *HandlersTestSuite) TestReportSummary() {
	summary := &domain.ReportSummary{
		Totals:          map[domain.TransactionType]decimal.Decimal{domain.TransactionSale: decimal.NewFromInt(150)},
		BalanceAmount:   decimal.NewFromInt(150),
		BalancePositive: true,
		PaymentMethods:  []domain.MethodAmount{{Method: domain.PaymentMethodPix, Amount: decimal.NewFromInt(150)}},
		TopDescriptions: []domain.DescriptionRank{},
	}
	suite.reportingService.On("Summary", mock.Anything, dto.ReportSummaryParams{From: "2024-03-01", To: "2024-03-31", RankBy: "volume"}).
		Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/summary?from=2024-03-01&to=2024-03-31&rankBy=volume", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ReportSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("R$ 150,00", resp.Balance.Formatted)
	suite.Require().Len(resp.PaymentMethods, 1)
	suite.Equal(domain.PaymentMethodPix, resp.PaymentMethods[0].Method)
}

func (suite *HandlersTestSuite) TestReportSummary_BadRankBy() {
	w := suite.do(http.MethodGet, "/api/v1/reports/summary?rankBy=profit", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
