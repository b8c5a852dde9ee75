package repositories

import (
	"context"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// MenuReader defines read operations for menu items.
type MenuReader interface {
	// FindMenuItemByID retrieves a menu item by its unique identifier.
	FindMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error)

	// FindMenuItemsByIDs retrieves multiple menu items keyed by ID.
	// Missing IDs are simply absent from the result map.
	FindMenuItemsByIDs(ctx context.Context, menuItemIDs []string) (map[string]domain.MenuItem, error)

	// ListMenuItems retrieves menu items, optionally filtered by category
	// and/or availability.
	ListMenuItems(ctx context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error)
}

// MenuWriter defines write operations for menu items.
type MenuWriter interface {
	SaveMenuItem(ctx context.Context, item domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, menuItemID string) error
}

// MenuRepositoryFacade combines all menu-related repository interfaces.
type MenuRepositoryFacade interface {
	MenuReader
	MenuWriter
}
