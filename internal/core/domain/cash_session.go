package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSessionStatus is the state of a register session.
type CashSessionStatus string

const (
	CashSessionOpen   CashSessionStatus = "aberta"
	CashSessionClosed CashSessionStatus = "fechada"
)

// CashSession is one opening-to-closing cycle of the cash register.
// ExpectedAmount, DeclaredAmount and Difference are only set once the session is closed.
type CashSession struct {
	CashSessionID  string            `json:"cashSessionID"`
	OpeningAmount  decimal.Decimal   `json:"openingAmount"`
	ExpectedAmount *decimal.Decimal  `json:"expectedAmount,omitempty"`
	DeclaredAmount *decimal.Decimal  `json:"declaredAmount,omitempty"`
	Difference     *decimal.Decimal  `json:"difference,omitempty"`
	Status         CashSessionStatus `json:"status"`
	Notes          *string           `json:"notes,omitempty"`
	OpenedAt       time.Time         `json:"openedAt"`
	ClosedAt       *time.Time        `json:"closedAt,omitempty"`
	AuditFields
}

// IsOpen reports whether the session still accepts movements.
func (s CashSession) IsOpen() bool {
	return s.Status == CashSessionOpen
}
