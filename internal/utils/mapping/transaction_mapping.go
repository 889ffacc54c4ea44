package mapping

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/models"
)

func toModelSplits(ds []domain.PaymentSplit) []models.PaymentSplit {
	if len(ds) == 0 {
		return nil
	}
	ms := make([]models.PaymentSplit, len(ds))
	for i, s := range ds {
		ms[i] = models.PaymentSplit{Method: string(s.Method), Amount: s.Amount}
	}
	return ms
}

func toDomainSplits(ms []models.PaymentSplit) []domain.PaymentSplit {
	if len(ms) == 0 {
		return nil
	}
	ds := make([]domain.PaymentSplit, len(ms))
	for i, s := range ms {
		ds[i] = domain.PaymentSplit{Method: domain.PaymentMethod(s.Method), Amount: s.Amount}
	}
	return ds
}

func toModelMethod(m *domain.PaymentMethod) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}

func toDomainMethod(s *string) *domain.PaymentMethod {
	if s == nil {
		return nil
	}
	m := domain.PaymentMethod(*s)
	return &m
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		TransactionType: string(d.Type),
		Description:     d.Description,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		Total:           d.Total,
		PaymentMethod:   toModelMethod(d.PaymentMethod),
		PaymentSplits:   toModelSplits(d.PaymentSplits),
		CreditSaleID:    d.CreditSaleID,
		CashSessionID:   d.CashSessionID,
		OccurredAt:      d.OccurredAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		DeletedAt:       d.DeletedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.TransactionType),
		Description:   m.Description,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		Total:         m.Total,
		PaymentMethod: toDomainMethod(m.PaymentMethod),
		PaymentSplits: toDomainSplits(m.PaymentSplits),
		CreditSaleID:  m.CreditSaleID,
		CashSessionID: m.CashSessionID,
		OccurredAt:    m.OccurredAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
