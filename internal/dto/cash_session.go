package dto

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/shopspring/decimal"
)

// OpenCashSessionRequest opens the register with a counted float.
type OpenCashSessionRequest struct {
	OpeningAmount decimal.Decimal `json:"openingAmount"`
	Notes         *string         `json:"notes"`
}

// CloseCashSessionRequest closes the register with the counted amount.
type CloseCashSessionRequest struct {
	DeclaredAmount decimal.Decimal `json:"declaredAmount"`
	Notes          *string         `json:"notes"`
}

// CashSessionResponse mirrors domain.CashSession and adds a display string for the difference.
type CashSessionResponse struct {
	domain.CashSession
	DifferenceFormatted string `json:"differenceFormatted,omitempty"`
}

// ToCashSessionResponse converts a domain.CashSession to its DTO
func ToCashSessionResponse(s *domain.CashSession) CashSessionResponse {
	res := CashSessionResponse{CashSession: *s}
	if s.Difference != nil {
		res.DifferenceFormatted = utils.FormatBRL(*s.Difference)
	}
	return res
}
