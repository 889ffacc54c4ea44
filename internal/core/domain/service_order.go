package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrderStatus is the lifecycle state of a service order.
type ServiceOrderStatus string

const (
	ServiceOrderOpen      ServiceOrderStatus = "aberta"
	ServiceOrderCompleted ServiceOrderStatus = "concluida"
	ServiceOrderCancelled ServiceOrderStatus = "cancelada"
)

// IsValid reports whether s is a known status.
func (s ServiceOrderStatus) IsValid() bool {
	switch s {
	case ServiceOrderOpen, ServiceOrderCompleted, ServiceOrderCancelled:
		return true
	}
	return false
}

// ServiceOrder is a repair or service job taken at the counter.
type ServiceOrder struct {
	ServiceOrderID string             `json:"serviceOrderID"`
	CustomerName   string             `json:"customerName"`
	CustomerPhone  *string            `json:"customerPhone,omitempty"`
	Description    string             `json:"description"`
	Value          decimal.Decimal    `json:"value"`
	PaymentMethod  *PaymentMethod     `json:"paymentMethod,omitempty"`
	PaymentSplits  []PaymentSplit     `json:"paymentSplits,omitempty"`
	Status         ServiceOrderStatus `json:"status"`
	OpenedAt       time.Time          `json:"openedAt"`
	ClosedAt       *time.Time         `json:"closedAt,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the order has been soft deleted.
func (o ServiceOrder) IsDeleted() bool {
	return o.DeletedAt != nil
}

// MethodAmounts returns the order value per payment method.
func (o ServiceOrder) MethodAmounts() []PaymentSplit {
	if len(o.PaymentSplits) > 0 {
		return o.PaymentSplits
	}
	if o.PaymentMethod == nil {
		return nil
	}
	return []PaymentSplit{{Method: *o.PaymentMethod, Amount: o.Value}}
}
