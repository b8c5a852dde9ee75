package models

import "github.com/shopspring/decimal"

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = "shop"

// AppSettings is the database representation of the singleton settings
// row (fixed primary key).
type AppSettings struct {
	ID            string          `db:"id"` // Always "shop"
	ShopName      string          `db:"shop_name"`
	ShopAddress   string          `db:"shop_address"`
	ShopGST       string          `db:"shop_gst"`
	ShopPhone     string          `db:"shop_phone"`
	ShopEmail     string          `db:"shop_email"`
	CGSTRate      decimal.Decimal `db:"cgst_rate"`
	SGSTRate      decimal.Decimal `db:"sgst_rate"`
	PrinterFormat string          `db:"printer_format"`
	Currency      string          `db:"currency"`
}
