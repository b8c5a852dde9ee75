package domain

import "github.com/shopspring/decimal"

// DailySummary aggregates one day of sales.
type DailySummary struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalBills   int64           `json:"totalBills"`
	TotalItems   int64           `json:"totalItems"`
	AvgBillValue decimal.Decimal `json:"avgBillValue"`
}

// CategorySales aggregates sales per menu category over a range.
type CategorySales struct {
	Category   string          `json:"category"`
	TotalSales decimal.Decimal `json:"totalSales"`
	ItemCount  int64           `json:"itemCount"`
}
