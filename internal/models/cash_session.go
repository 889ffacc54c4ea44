package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSession is the cash_sessions row.
type CashSession struct {
	CashSessionID  string           `db:"cash_session_id"`
	OpeningAmount  decimal.Decimal  `db:"opening_amount"`
	ExpectedAmount *decimal.Decimal `db:"expected_amount"`
	DeclaredAmount *decimal.Decimal `db:"declared_amount"`
	Difference     *decimal.Decimal `db:"difference"`
	Status         string           `db:"status"`
	Notes          *string          `db:"notes"`
	OpenedAt       time.Time        `db:"opened_at"`
	ClosedAt       *time.Time       `db:"closed_at"`
	AuditFields
}
