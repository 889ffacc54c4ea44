package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RankBy selects the dimension used to order the top descriptions.
type RankBy string

const (
	RankByRevenue RankBy = "revenue"
	RankByVolume  RankBy = "volume"
)

// ReportPeriod bounds a report. A zero From or To leaves that side open.
type ReportPeriod struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the period (both bounds inclusive).
func (p ReportPeriod) Contains(t time.Time) bool {
	if !p.From.IsZero() && t.Before(p.From) {
		return false
	}
	if !p.To.IsZero() && t.After(p.To) {
		return false
	}
	return true
}

// MethodAmount is the money received through one payment method.
type MethodAmount struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// DescriptionRank is one entry of the top descriptions chart.
type DescriptionRank struct {
	Description string          `json:"description"` // full text, used for tooltips
	Label       string          `json:"label"`       // display text, possibly truncated
	Count       decimal.Decimal `json:"count"`
	Total       decimal.Decimal `json:"total"`
}

// FunnelBucket counts service orders in one status.
type FunnelBucket struct {
	Status     ServiceOrderStatus `json:"status"`
	Count      int                `json:"count"`
	Percentage decimal.Decimal    `json:"percentage"`
}

// Funnel is the distribution of service orders across their statuses.
type Funnel struct {
	Buckets        []FunnelBucket  `json:"buckets"`
	Total          int             `json:"total"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
}

// ReportSummary is the chart-ready roll-up of a period.
type ReportSummary struct {
	Period          ReportPeriod                        `json:"period"`
	Totals          map[TransactionType]decimal.Decimal `json:"totals"`
	BalanceAmount   decimal.Decimal                     `json:"balanceAmount"`
	BalancePositive bool                                `json:"balancePositive"`
	PaymentMethods  []MethodAmount                      `json:"paymentMethods"`
	TopDescriptions []DescriptionRank                   `json:"topDescriptions"`
	Funnel          Funnel                              `json:"funnel"`
	// UnresolvedCreditSales counts transactions dropped because their credit sale was not found.
	UnresolvedCreditSales int `json:"unresolvedCreditSales"`
}
