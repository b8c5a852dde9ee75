package mapping

import (
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/models"
)

// ToModelMenuItem converts a domain MenuItem to a model MenuItem.
func ToModelMenuItem(d domain.MenuItem) models.MenuItem {
	return models.MenuItem{
		MenuItemID:  d.MenuItemID,
		Name:        d.Name,
		Price:       d.Price,
		Category:    d.Category,
		Description: d.Description,
		IsAvailable: d.IsAvailable,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainMenuItem converts a model MenuItem to a domain MenuItem.
func ToDomainMenuItem(m models.MenuItem) domain.MenuItem {
	return domain.MenuItem{
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
