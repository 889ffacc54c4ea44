package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CreditSaleRepository ---
type MockCreditSaleRepository struct {
	mock.Mock
}

func (m *MockCreditSaleRepository) FindCreditSaleByID(ctx context.Context, creditSaleID string) (*domain.CreditSale, error) {
	args := m.Called(ctx, creditSaleID)
	var sale *domain.CreditSale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.CreditSale)
	}
	return sale, args.Error(1)
}

func (m *MockCreditSaleRepository) ListCreditSales(ctx context.Context, filter portsrepo.CreditSaleFilter) ([]domain.CreditSale, error) {
	args := m.Called(ctx, filter)
	var sales []domain.CreditSale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.CreditSale)
	}
	return sales, args.Error(1)
}

func (m *MockCreditSaleRepository) ListPaymentsByCreditSale(ctx context.Context, creditSaleID string) ([]domain.CreditSalePayment, error) {
	args := m.Called(ctx, creditSaleID)
	var payments []domain.CreditSalePayment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.CreditSalePayment)
	}
	return payments, args.Error(1)
}

func (m *MockCreditSaleRepository) SaveCreditSale(ctx context.Context, sale domain.CreditSale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockCreditSaleRepository) ArchiveCreditSale(ctx context.Context, creditSaleID string, archivedAt time.Time, archivedBy string) error {
	args := m.Called(ctx, creditSaleID, archivedAt, archivedBy)
	return args.Error(0)
}

func (m *MockCreditSaleRepository) SavePayment(ctx context.Context, sale domain.CreditSale, expectedVersion int64, payment domain.CreditSalePayment, ledger *domain.Transaction) error {
	args := m.Called(ctx, sale, expectedVersion, payment, ledger)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, period domain.ReportPeriod, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, period, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsByCashSession(ctx context.Context, cashSessionID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, cashSessionID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, transactionID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock ServiceOrderRepository ---
type MockServiceOrderRepository struct {
	mock.Mock
}

func (m *MockServiceOrderRepository) FindServiceOrderByID(ctx context.Context, serviceOrderID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, serviceOrderID)
	var order *domain.ServiceOrder
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.ServiceOrder)
	}
	return order, args.Error(1)
}

func (m *MockServiceOrderRepository) ListServiceOrders(ctx context.Context, period domain.ReportPeriod) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, period)
	var orders []domain.ServiceOrder
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.ServiceOrder)
	}
	return orders, args.Error(1)
}

func (m *MockServiceOrderRepository) SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) UpdateServiceOrderStatus(ctx context.Context, order domain.ServiceOrder, expectedVersion int64) error {
	args := m.Called(ctx, order, expectedVersion)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) MarkServiceOrderDeleted(ctx context.Context, serviceOrderID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, serviceOrderID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock CashSessionRepository ---
type MockCashSessionRepository struct {
	mock.Mock
}

func (m *MockCashSessionRepository) FindCashSessionByID(ctx context.Context, cashSessionID string) (*domain.CashSession, error) {
	args := m.Called(ctx, cashSessionID)
	var session *domain.CashSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.CashSession)
	}
	return session, args.Error(1)
}

func (m *MockCashSessionRepository) FindOpenCashSession(ctx context.Context) (*domain.CashSession, error) {
	args := m.Called(ctx)
	var session *domain.CashSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.CashSession)
	}
	return session, args.Error(1)
}

func (m *MockCashSessionRepository) SaveCashSession(ctx context.Context, session domain.CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockCashSessionRepository) CloseCashSession(ctx context.Context, session domain.CashSession, expectedVersion int64) error {
	args := m.Called(ctx, session, expectedVersion)
	return args.Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetStoreSettings(ctx context.Context) (*domain.StoreSettings, error) {
	args := m.Called(ctx)
	var settings *domain.StoreSettings
	if args.Get(0) != nil {
		settings = args.Get(0).(*domain.StoreSettings)
	}
	return settings, args.Error(1)
}

func (m *MockSettingsRepository) SaveStoreSettings(ctx context.Context, settings domain.StoreSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) LoadReportSnapshot(ctx context.Context, period domain.ReportPeriod) (*portsrepo.ReportSnapshot, error) {
	args := m.Called(ctx, period)
	var snapshot *portsrepo.ReportSnapshot
	if args.Get(0) != nil {
		snapshot = args.Get(0).(*portsrepo.ReportSnapshot)
	}
	return snapshot, args.Error(1)
}

var (
	_ portsrepo.CreditSaleRepositoryFacade   = (*MockCreditSaleRepository)(nil)
	_ portsrepo.TransactionRepositoryFacade  = (*MockTransactionRepository)(nil)
	_ portsrepo.ServiceOrderRepositoryFacade = (*MockServiceOrderRepository)(nil)
	_ portsrepo.CashSessionRepositoryFacade  = (*MockCashSessionRepository)(nil)
	_ portsrepo.SettingsRepository           = (*MockSettingsRepository)(nil)
	_ portsrepo.UserRepositoryFacade         = (*MockUserRepository)(nil)
	_ portsrepo.ReportingRepository          = (*MockReportingRepository)(nil)
)
