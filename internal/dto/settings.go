package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// UpdateSettingsRequest replaces the shop settings wholesale; the UI
// always submits the full form.
type UpdateSettingsRequest struct {
	ShopName      string               `json:"shopName" binding:"required"`
	ShopAddress   string               `json:"shopAddress"`
	ShopGST       string               `json:"shopGST"`
	ShopPhone     string               `json:"shopPhone"`
	ShopEmail     string               `json:"shopEmail" binding:"omitempty,email"`
	CGSTRate      decimal.Decimal      `json:"cgstRate"`
	SGSTRate      decimal.Decimal      `json:"sgstRate"`
	PrinterFormat domain.PrinterFormat `json:"printerFormat" binding:"required,oneof=58mm 80mm"`
	Currency      string               `json:"currency" binding:"required"`
}

// ToDomainSettings converts the request into the domain settings row.
func (r UpdateSettingsRequest) ToDomainSettings() domain.AppSettings {
	return domain.AppSettings{
		ShopName:      r.ShopName,
		ShopAddress:   r.ShopAddress,
		ShopGST:       r.ShopGST,
		ShopPhone:     r.ShopPhone,
		ShopEmail:     r.ShopEmail,
		CGSTRate:      r.CGSTRate,
		SGSTRate:      r.SGSTRate,
		PrinterFormat: r.PrinterFormat,
		Currency:      r.Currency,
	}
}
