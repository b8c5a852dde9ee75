package domain

import "github.com/shopspring/decimal"

// PrinterFormat is the thermal paper width receipts are rendered for.
type PrinterFormat string

const (
	Printer58mm PrinterFormat = "58mm"
	Printer80mm PrinterFormat = "80mm"
)

// AppSettings is the singleton shop configuration row.
type AppSettings struct {
	ShopName      string          `json:"shopName"`
	ShopAddress   string          `json:"shopAddress"`
	ShopGST       string          `json:"shopGST"`
	ShopPhone     string          `json:"shopPhone"` // Optional
	ShopEmail     string          `json:"shopEmail"` // Optional
	CGSTRate      decimal.Decimal `json:"cgstRate"`  // Percent, e.g. 2.5
	SGSTRate      decimal.Decimal `json:"sgstRate"`  // Percent
	PrinterFormat PrinterFormat   `json:"printerFormat"`
	Currency      string          `json:"currency"`
}

// DefaultSettings are the values served before the shop saves its own.
func DefaultSettings() AppSettings {
	return AppSettings{
		ShopName:      "My Restaurant",
		CGSTRate:      decimal.NewFromFloat(2.5),
		SGSTRate:      decimal.NewFromFloat(2.5),
		PrinterFormat: Printer80mm,
		Currency:      "INR",
	}
}
