package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceOrderRequest defines a new service order. Orders always start as aberta.
type CreateServiceOrderRequest struct {
	CustomerName  string          `json:"customerName" binding:"required"`
	CustomerPhone *string         `json:"customerPhone"`
	Description   string          `json:"description" binding:"required"`
	Value         decimal.Decimal `json:"value"`
	OpenedAt      *time.Time      `json:"openedAt"`
}

// UpdateServiceOrderStatusRequest moves an open order to a terminal state.
// Completing an order requires a payment method or splits.
type UpdateServiceOrderStatusRequest struct {
	Status        string                `json:"status" binding:"required,oneof=concluida cancelada"`
	PaymentMethod *string               `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	PaymentSplits []PaymentSplitRequest `json:"paymentSplits" binding:"omitempty,dive"`
}

// ListServiceOrdersParams defines query parameters for listing service orders.
type ListServiceOrdersParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}
