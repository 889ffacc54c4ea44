package mapping

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/models"
	"github.com/SscSPs/retail_pos_app/internal/utils/creditsale"
)

// ToModelCreditSale converts a domain CreditSale to a model CreditSale
func ToModelCreditSale(d domain.CreditSale) models.CreditSale {
	items := make([]models.CreditSaleItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = models.CreditSaleItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		}
	}
	return models.CreditSale{
		CreditSaleID:    d.CreditSaleID,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		Description:     d.Description,
		Items:           items,
		Total:           d.Total,
		Installments:    d.Installments,
		AmountPaid:      d.AmountPaid,
		Status:          string(d.Status),
		SaleDate:        d.SaleDate,
		ChargeDate:      d.ChargeDate,
		ReminderEnabled: d.Reminder.Enabled,
		ReminderDays:    d.Reminder.DaysBefore,
		ReminderAt:      d.Reminder.RemindAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		DeletedAt:       d.DeletedAt,
	}
}

// ToDomainCreditSale converts a model CreditSale to a domain CreditSale.
// RemainingAmount is not stored and is derived here.
func ToDomainCreditSale(m models.CreditSale) domain.CreditSale {
	var items []domain.CreditSaleItem
	if len(m.Items) > 0 {
		items = make([]domain.CreditSaleItem, len(m.Items))
		for i, item := range m.Items {
			items[i] = domain.CreditSaleItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				LineTotal:   item.LineTotal,
			}
		}
	}
	return domain.CreditSale{
		CreditSaleID:    m.CreditSaleID,
		CustomerName:    m.CustomerName,
		CustomerPhone:   m.CustomerPhone,
		Description:     m.Description,
		Items:           items,
		Total:           m.Total,
		Installments:    m.Installments,
		AmountPaid:      m.AmountPaid,
		RemainingAmount: creditsale.RemainingAmount(m.Total, m.AmountPaid),
		Status:          domain.CreditSaleStatus(m.Status),
		SaleDate:        m.SaleDate,
		ChargeDate:      m.ChargeDate,
		Reminder: domain.ReminderPreference{
			Enabled:    m.ReminderEnabled,
			DaysBefore: m.ReminderDays,
			RemindAt:   m.ReminderAt,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainCreditSaleSlice converts a slice of model CreditSales to a slice of domain CreditSales
func ToDomainCreditSaleSlice(ms []models.CreditSale) []domain.CreditSale {
	ds := make([]domain.CreditSale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditSale(m)
	}
	return ds
}

// ToModelCreditSalePayment converts a domain CreditSalePayment to a model CreditSalePayment
func ToModelCreditSalePayment(d domain.CreditSalePayment) models.CreditSalePayment {
	return models.CreditSalePayment{
		PaymentID:     d.PaymentID,
		CreditSaleID:  d.CreditSaleID,
		Amount:        d.Amount,
		PaymentDate:   d.PaymentDate,
		PaymentMethod: string(d.PaymentMethod),
		CashSessionID: d.CashSessionID,
		TransactionID: d.TransactionID,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainCreditSalePayment converts a model CreditSalePayment to a domain CreditSalePayment
func ToDomainCreditSalePayment(m models.CreditSalePayment) domain.CreditSalePayment {
	return domain.CreditSalePayment{
		PaymentID:     m.PaymentID,
		CreditSaleID:  m.CreditSaleID,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		CashSessionID: m.CashSessionID,
		TransactionID: m.TransactionID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainCreditSalePaymentSlice converts a slice of model payments to domain payments
func ToDomainCreditSalePaymentSlice(ms []models.CreditSalePayment) []domain.CreditSalePayment {
	ds := make([]domain.CreditSalePayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditSalePayment(m)
	}
	return ds
}
