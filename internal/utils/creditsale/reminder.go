package creditsale

import (
	"sort"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// RemindAt returns when the operator should be reminded to charge the sale,
// or nil when reminders are off.
func RemindAt(sale domain.CreditSale) *time.Time {
	if !sale.Reminder.Enabled {
		return nil
	}
	if sale.Reminder.RemindAt != nil {
		return sale.Reminder.RemindAt
	}
	at := sale.ChargeDate.AddDate(0, 0, -sale.Reminder.DaysBefore)
	return &at
}

// DueReminders lists open, non-archived sales whose reminder time has come,
// earliest charge date first.
func DueReminders(sales []domain.CreditSale, now time.Time) []domain.CreditSale {
	due := make([]domain.CreditSale, 0)
	for _, sale := range sales {
		if sale.IsArchived() || DeriveStatus(sale.Total, sale.AmountPaid) == domain.CreditSalePaid {
			continue
		}
		at := RemindAt(sale)
		if at == nil || at.After(now) {
			continue
		}
		due = append(due, sale)
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].ChargeDate.Before(due[j].ChargeDate)
	})
	return due
}
