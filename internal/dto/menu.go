package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// CreateMenuItemRequest is the payload for adding a menu item.
type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	IsAvailable *bool           `json:"isAvailable"` // Defaults to true when omitted
}

// UpdateMenuItemRequest is the payload for editing a menu item.
// Nil fields are left unchanged.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	IsAvailable *bool            `json:"isAvailable"`
}

// MenuItemResponse is the API representation of a menu item.
type MenuItemResponse struct {
	MenuItemID  string          `json:"menuItemID"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	IsAvailable bool            `json:"isAvailable"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToMenuItemResponse converts a domain MenuItem.
func ToMenuItemResponse(m *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		MenuItemID:  m.MenuItemID,
		Name:        m.Name,
		Price:       m.Price,
		Category:    m.Category,
		Description: m.Description,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMenuItemResponses converts a slice of domain menu items.
func ToMenuItemResponses(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, len(items))
	for i := range items {
		out[i] = ToMenuItemResponse(&items[i])
	}
	return out
}
