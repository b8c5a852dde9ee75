package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType distinguishes table service from takeaway.
type OrderType string

const (
	DineIn OrderType = "DINE_IN"
	Parcel OrderType = "PARCEL"
)

// PaymentMethod is how a bill was settled.
type PaymentMethod string

const (
	PayCash PaymentMethod = "CASH"
	PayCard PaymentMethod = "CARD"
	PayUPI  PaymentMethod = "UPI"
)

// BillItem is a line on a bill. Name and Price are snapshots taken at
// billing time so later menu edits do not rewrite history.
type BillItem struct {
	MenuItemID string          `json:"menuItemID"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// Bill is a finalized sale. Totals are computed server-side from the item
// snapshots and the tax rates in settings at creation time.
type Bill struct {
	BillID        string          `json:"billID"`     // Primary key (UUID)
	BillNumber    string          `json:"billNumber"` // Sequential, zero-padded, from the meta counter
	OrderType     OrderType       `json:"orderType"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"` // Empty when charged to a company account
	CustomerName  string          `json:"customerName"`            // Optional
	CustomerPhone string          `json:"customerPhone"`           // Optional
	Notes         string          `json:"notes"`                   // Optional
	Subtotal      decimal.Decimal `json:"subtotal"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	Total         decimal.Decimal `json:"total"`
	Items         []BillItem      `json:"items"`
	// ChargedEmployeeID links the bill to the employee credit account it
	// was charged against, when not settled immediately.
	ChargedEmployeeID *string `json:"chargedEmployeeID,omitempty"`
	CreatedBy         string  `json:"createdBy"`
	CreatedByName     string  `json:"createdByName"`
	CreatedAt         time.Time `json:"createdAt"`
}
