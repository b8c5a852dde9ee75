package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a sellable item on the restaurant menu.
type MenuItem struct {
	MenuItemID  string          `json:"menuItemID"` // Primary key (UUID)
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"` // Optional
	IsAvailable bool            `json:"isAvailable"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
