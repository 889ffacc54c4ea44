package mapping

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/models"
)

// ToModelServiceOrder converts a domain ServiceOrder to a model ServiceOrder
func ToModelServiceOrder(d domain.ServiceOrder) models.ServiceOrder {
	return models.ServiceOrder{
		ServiceOrderID: d.ServiceOrderID,
		CustomerName:   d.CustomerName,
		CustomerPhone:  d.CustomerPhone,
		Description:    d.Description,
		Value:          d.Value,
		PaymentMethod:  toModelMethod(d.PaymentMethod),
		PaymentSplits:  toModelSplits(d.PaymentSplits),
		Status:         string(d.Status),
		OpenedAt:       d.OpenedAt,
		ClosedAt:       d.ClosedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainServiceOrder converts a model ServiceOrder to a domain ServiceOrder
func ToDomainServiceOrder(m models.ServiceOrder) domain.ServiceOrder {
	return domain.ServiceOrder{
		ServiceOrderID: m.ServiceOrderID,
		CustomerName:   m.CustomerName,
		CustomerPhone:  m.CustomerPhone,
		Description:    m.Description,
		Value:          m.Value,
		PaymentMethod:  toDomainMethod(m.PaymentMethod),
		PaymentSplits:  toDomainSplits(m.PaymentSplits),
		Status:         domain.ServiceOrderStatus(m.Status),
		OpenedAt:       m.OpenedAt,
		ClosedAt:       m.ClosedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}

// ToDomainServiceOrderSlice converts a slice of model ServiceOrders to domain ServiceOrders
func ToDomainServiceOrderSlice(ms []models.ServiceOrder) []domain.ServiceOrder {
	ds := make([]domain.ServiceOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainServiceOrder(m)
	}
	return ds
}
