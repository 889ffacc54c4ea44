package dto

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ReportSummaryParams defines query parameters for the summary report.
// From and To are calendar dates (YYYY-MM-DD); either may be omitted.
type ReportSummaryParams struct {
	From   string `form:"from"`
	To     string `form:"to"`
	RankBy string `form:"rankBy" binding:"omitempty,oneof=revenue volume"`
}

// BalanceResponse is the daily balance of the period.
type BalanceResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Positive  bool            `json:"positive"`
	Formatted string          `json:"formatted"`
}

// MethodAmountResponse is the money received with one payment method.
type MethodAmountResponse struct {
	Method    domain.PaymentMethod `json:"method"`
	Amount    decimal.Decimal      `json:"amount"`
	Formatted string               `json:"formatted"`
}

// ReportSummaryResponse represents the summary report response
type ReportSummaryResponse struct {
	From                  string                                     `json:"from,omitempty"`
	To                    string                                     `json:"to,omitempty"`
	Totals                map[domain.TransactionType]decimal.Decimal `json:"totals"`
	Balance               BalanceResponse                            `json:"balance"`
	PaymentMethods        []MethodAmountResponse                     `json:"paymentMethods"`
	TopDescriptions       []domain.DescriptionRank                   `json:"topDescriptions"`
	Funnel                domain.Funnel                              `json:"funnel"`
	UnresolvedCreditSales int                                        `json:"unresolvedCreditSales"`
}

// ToReportSummaryResponse converts a domain.ReportSummary to its DTO
func ToReportSummaryResponse(s *domain.ReportSummary) ReportSummaryResponse {
	res := ReportSummaryResponse{
		Totals: s.Totals,
		Balance: BalanceResponse{
			Amount:    s.BalanceAmount,
			Positive:  s.BalancePositive,
			Formatted: utils.FormatBRL(s.BalanceAmount),
		},
		PaymentMethods:        make([]MethodAmountResponse, len(s.PaymentMethods)),
		TopDescriptions:       s.TopDescriptions,
		Funnel:                s.Funnel,
		UnresolvedCreditSales: s.UnresolvedCreditSales,
	}
	if !s.Period.From.IsZero() {
		res.From = s.Period.From.Format(utils.ISODateLayout)
	}
	if !s.Period.To.IsZero() {
		res.To = s.Period.To.Format(utils.ISODateLayout)
	}
	if !s.BalancePositive {
		res.Balance.Formatted = utils.FormatBRL(s.BalanceAmount.Neg())
	}
	for i, m := range s.PaymentMethods {
		res.PaymentMethods[i] = MethodAmountResponse{
			Method:    m.Method,
			Amount:    m.Amount,
			Formatted: utils.FormatBRL(m.Amount),
		}
	}
	return res
}
