package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrder is the service_orders row.
type ServiceOrder struct {
	ServiceOrderID string          `db:"service_order_id"`
	CustomerName   string          `db:"customer_name"`
	CustomerPhone  *string         `db:"customer_phone"`
	Description    string          `db:"description"`
	Value          decimal.Decimal `db:"value"`
	PaymentMethod  *string         `db:"payment_method"`
	PaymentSplits  []PaymentSplit  `db:"payment_splits"`
	Status         string          `db:"status"`
	OpenedAt       time.Time       `db:"opened_at"`
	ClosedAt       *time.Time      `db:"closed_at"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
