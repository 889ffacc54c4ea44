package dto

import (
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/SscSPs/retail_pos_app/internal/utils/creditsale"
	"github.com/shopspring/decimal"
)

// CreditSaleItemRequest is one itemized line of a credit sale.
type CreditSaleItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// ReminderRequest configures the charge reminder of a credit sale.
// DaysBefore defaults to the store setting; RemindAt overrides it when given (YYYY-MM-DD or RFC 3339).
type ReminderRequest struct {
	Enabled    bool    `json:"enabled"`
	DaysBefore *int    `json:"daysBefore" binding:"omitempty,min=0"`
	RemindAt   *string `json:"remindAt"`
}

// CreateCreditSaleRequest defines the data needed to record a credit sale.
// When Total is zero it is taken from the items.
type CreateCreditSaleRequest struct {
	CustomerName  string                  `json:"customerName" binding:"required"`
	CustomerPhone *string                 `json:"customerPhone"`
	Description   string                  `json:"description"`
	Items         []CreditSaleItemRequest `json:"items" binding:"omitempty,dive"`
	Total         decimal.Decimal         `json:"total"`
	Installments  int                     `json:"installments" binding:"required,min=1"`
	AmountPaid    decimal.Decimal         `json:"amountPaid"`
	SaleDate      string                  `json:"saleDate"`
	ChargeDate    string                  `json:"chargeDate" binding:"required"`
	Reminder      *ReminderRequest        `json:"reminder"`
}

// ListCreditSalesParams defines query parameters for listing credit sales.
type ListCreditSalesParams struct {
	Status          string `form:"status" binding:"omitempty,oneof=em_aberto paga"`
	IncludeArchived bool   `form:"includeArchived"`
}

// RegisterPaymentRequest defines an installment received against a credit sale.
type RegisterPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,paymentmethod"`
	PaymentDate   string          `json:"paymentDate" binding:"required"`
	Notes         *string         `json:"notes"`
	CashSessionID *string         `json:"cashSessionID"`
}

// CreditSaleResponse mirrors domain.CreditSale and adds display strings.
type CreditSaleResponse struct {
	domain.CreditSale
	TotalFormatted     string `json:"totalFormatted"`
	RemainingFormatted string `json:"remainingFormatted"`
}

// ToCreditSaleResponse converts a domain.CreditSale to CreditSaleResponse DTO
func ToCreditSaleResponse(sale *domain.CreditSale) CreditSaleResponse {
	return CreditSaleResponse{
		CreditSale:         *sale,
		TotalFormatted:     utils.FormatBRL(sale.Total),
		RemainingFormatted: utils.FormatBRL(sale.RemainingAmount),
	}
}

// ToListCreditSaleResponse converts a slice of domain.CreditSale to response DTOs
func ToListCreditSaleResponse(sales []domain.CreditSale) []CreditSaleResponse {
	res := make([]CreditSaleResponse, len(sales))
	for i := range sales {
		res[i] = ToCreditSaleResponse(&sales[i])
	}
	return res
}

// PaymentResponse mirrors domain.CreditSalePayment.
type PaymentResponse struct {
	domain.CreditSalePayment
	AmountFormatted string `json:"amountFormatted"`
}

// ToPaymentResponse converts a domain.CreditSalePayment to PaymentResponse DTO
func ToPaymentResponse(p *domain.CreditSalePayment) PaymentResponse {
	return PaymentResponse{
		CreditSalePayment: *p,
		AmountFormatted:   utils.FormatBRL(p.Amount),
	}
}

// ToListPaymentResponse converts payments to response DTOs
func ToListPaymentResponse(payments []domain.CreditSalePayment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// PaymentReceiptResponse is returned after a payment is registered.
type PaymentReceiptResponse struct {
	Payment PaymentResponse    `json:"payment"`
	Sale    CreditSaleResponse `json:"sale"`
}

// ToPaymentReceiptResponse converts a domain.PaymentReceipt to its DTO
func ToPaymentReceiptResponse(r *domain.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{
		Payment: ToPaymentResponse(&r.Payment),
		Sale:    ToCreditSaleResponse(&r.Sale),
	}
}

// ReminderResponse is a credit sale due for a charge reminder.
type ReminderResponse struct {
	CreditSaleID       string     `json:"creditSaleID"`
	CustomerName       string     `json:"customerName"`
	CustomerPhone      *string    `json:"customerPhone,omitempty"`
	ChargeDate         time.Time  `json:"chargeDate"`
	RemindAt           *time.Time `json:"remindAt,omitempty"`
	RemainingAmount    string     `json:"remainingAmount"`
	RemainingFormatted string     `json:"remainingFormatted"`
}

// ToReminderResponse converts a due sale to its reminder DTO
func ToReminderResponse(sale *domain.CreditSale) ReminderResponse {
	return ReminderResponse{
		CreditSaleID:       sale.CreditSaleID,
		CustomerName:       sale.CustomerName,
		CustomerPhone:      sale.CustomerPhone,
		ChargeDate:         sale.ChargeDate,
		RemindAt:           creditsale.RemindAt(*sale),
		RemainingAmount:    sale.RemainingAmount.StringFixed(2),
		RemainingFormatted: utils.FormatBRL(sale.RemainingAmount),
	}
}

// ToListReminderResponse converts due sales to reminder DTOs
func ToListReminderResponse(sales []domain.CreditSale) []ReminderResponse {
	res := make([]ReminderResponse, len(sales))
	for i := range sales {
		res[i] = ToReminderResponse(&sales[i])
	}
	return res
}
