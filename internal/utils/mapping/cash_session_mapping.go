package mapping

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/models"
)

// ToModelCashSession converts a domain CashSession to a model CashSession
func ToModelCashSession(d domain.CashSession) models.CashSession {
	return models.CashSession{
		CashSessionID:  d.CashSessionID,
		OpeningAmount:  d.OpeningAmount,
		ExpectedAmount: d.ExpectedAmount,
		DeclaredAmount: d.DeclaredAmount,
		Difference:     d.Difference,
		Status:         string(d.Status),
		Notes:          d.Notes,
		OpenedAt:       d.OpenedAt,
		ClosedAt:       d.ClosedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashSession converts a model CashSession to a domain CashSession
func ToDomainCashSession(m models.CashSession) domain.CashSession {
	return domain.CashSession{
		CashSessionID:  m.CashSessionID,
		OpeningAmount:  m.OpeningAmount,
		ExpectedAmount: m.ExpectedAmount,
		DeclaredAmount: m.DeclaredAmount,
		Difference:     m.Difference,
		Status:         domain.CashSessionStatus(m.Status),
		Notes:          m.Notes,
		OpenedAt:       m.OpenedAt,
		ClosedAt:       m.ClosedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
