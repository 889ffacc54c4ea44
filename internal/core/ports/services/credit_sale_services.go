package services

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/dto"
)

// CreditSaleReaderSvc defines read operations for credit sales
type CreditSaleReaderSvc interface {
	GetCreditSale(ctx context.Context, creditSaleID string) (*domain.CreditSale, error)
	ListCreditSales(ctx context.Context, params dto.ListCreditSalesParams) ([]domain.CreditSale, error)

	// ListPayments returns the payments of a sale, oldest first.
	ListPayments(ctx context.Context, creditSaleID string) ([]domain.CreditSalePayment, error)

	// ListDueReminders returns open sales whose charge reminder is due now.
	ListDueReminders(ctx context.Context) ([]domain.CreditSale, error)
}

// CreditSaleWriterSvc defines write operations for credit sales
type CreditSaleWriterSvc interface {
	CreateCreditSale(ctx context.Context, req dto.CreateCreditSaleRequest, userID string) (*domain.CreditSale, error)
	ArchiveCreditSale(ctx context.Context, creditSaleID string, userID string) error

	// RegisterPayment validates and stores an installment and refreshes the sale's paid amount and status.
	RegisterPayment(ctx context.Context, creditSaleID string, req dto.RegisterPaymentRequest, userID string) (*domain.PaymentReceipt, error)
}

// CreditSaleSvcFacade combines all credit sale service interfaces
type CreditSaleSvcFacade interface {
	CreditSaleReaderSvc
	CreditSaleWriterSvc
}
