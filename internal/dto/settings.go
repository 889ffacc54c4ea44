package dto

// UpdateSettingsRequest replaces the store settings.
type UpdateSettingsRequest struct {
	BusinessName        string  `json:"businessName" binding:"required"`
	Document            *string `json:"document"`
	Phone               *string `json:"phone"`
	DefaultReminderDays *int    `json:"defaultReminderDays" binding:"omitempty,min=0,max=60"`
}
