package domain

import "time"

// DefaultReminderDaysBefore is used when the store has not configured reminders.
const DefaultReminderDaysBefore = 1

// StoreSettings holds the single row of store-wide preferences.
type StoreSettings struct {
	BusinessName        string    `json:"businessName"`
	Document            *string   `json:"document,omitempty"`
	Phone               *string   `json:"phone,omitempty"`
	DefaultReminderDays int       `json:"defaultReminderDays"`
	UpdatedAt           time.Time `json:"updatedAt"`
	UpdatedBy           string    `json:"updatedBy"`
}
