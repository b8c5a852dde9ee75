package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is the database representation of a menu item.
type MenuItem struct {
	MenuItemID  string          `db:"menu_item_id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	IsAvailable bool            `db:"is_available"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
