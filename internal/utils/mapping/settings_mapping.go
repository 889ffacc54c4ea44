package mapping

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/models"
)

// ToModelStoreSettings converts domain StoreSettings to model StoreSettings
func ToModelStoreSettings(d domain.StoreSettings) models.StoreSettings {
	return models.StoreSettings{
		BusinessName:        d.BusinessName,
		Document:            d.Document,
		Phone:               d.Phone,
		DefaultReminderDays: d.DefaultReminderDays,
		UpdatedAt:           d.UpdatedAt,
		UpdatedBy:           d.UpdatedBy,
	}
}

// ToDomainStoreSettings converts model StoreSettings to domain StoreSettings
func ToDomainStoreSettings(m models.StoreSettings) domain.StoreSettings {
	return domain.StoreSettings{
		BusinessName:        m.BusinessName,
		Document:            m.Document,
		Phone:               m.Phone,
		DefaultReminderDays: m.DefaultReminderDays,
		UpdatedAt:           m.UpdatedAt,
		UpdatedBy:           m.UpdatedBy,
	}
}
