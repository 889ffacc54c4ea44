package models

import "time"

// StoreSettings is the single store_settings row.
type StoreSettings struct {
	BusinessName        string    `db:"business_name"`
	Document            *string   `db:"document"`
	Phone               *string   `db:"phone"`
	DefaultReminderDays int       `db:"default_reminder_days"`
	UpdatedAt           time.Time `db:"updated_at"`
	UpdatedBy           string    `db:"updated_by"`
}
