package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is the database representation of a finalized sale.
type Bill struct {
	BillID            string          `db:"bill_id"`
	BillNumber        string          `db:"bill_number"`
	OrderType         string          `db:"order_type"`
	PaymentMethod     *string         `db:"payment_method"`
	ChargedEmployeeID *string         `db:"charged_employee_id"`
	CustomerName      string          `db:"customer_name"`
	CustomerPhone     string          `db:"customer_phone"`
	Notes             string          `db:"notes"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	CGST              decimal.Decimal `db:"cgst"`
	SGST              decimal.Decimal `db:"sgst"`
	Total             decimal.Decimal `db:"total"`
	CreatedBy         string          `db:"created_by"`
	CreatedByName     string          `db:"created_by_name"`
	CreatedAt         time.Time       `db:"created_at"`
}

// BillItem is one stored line of a bill.
type BillItem struct {
	BillID     string          `db:"bill_id"`
	MenuItemID string          `db:"menu_item_id"`
	Name       string          `db:"name"`
	Price      decimal.Decimal `db:"price"`
	Quantity   int             `db:"quantity"`
	Subtotal   decimal.Decimal `db:"subtotal"`
}
