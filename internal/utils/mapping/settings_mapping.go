package mapping

import (
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/models"
)

// ToModelSettings converts domain settings to the fixed-key model row.
func ToModelSettings(d domain.AppSettings) models.AppSettings {
	return models.AppSettings{
		ID:            models.SettingsID,
		ShopName:      d.ShopName,
		ShopAddress:   d.ShopAddress,
		ShopGST:       d.ShopGST,
		ShopPhone:     d.ShopPhone,
		ShopEmail:     d.ShopEmail,
		CGSTRate:      d.CGSTRate,
		SGSTRate:      d.SGSTRate,
		PrinterFormat: string(d.PrinterFormat),
		Currency:      d.Currency,
	}
}

// ToDomainSettings converts the model settings row to domain settings.
func ToDomainSettings(m models.AppSettings) domain.AppSettings {
	return domain.AppSettings{
		ShopName:      m.ShopName,
		ShopAddress:   m.ShopAddress,
		ShopGST:       m.ShopGST,
		ShopPhone:     m.ShopPhone,
		ShopEmail:     m.ShopEmail,
		CGSTRate:      m.CGSTRate,
		SGSTRate:      m.SGSTRate,
		PrinterFormat: domain.PrinterFormat(m.PrinterFormat),
		Currency:      m.Currency,
	}
}
