package services

import (
	"context"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/dto"
)

// MenuSvcFacade manages the restaurant menu.
type MenuSvcFacade interface {
	CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, menuItemID string, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error)
	GetMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, menuItemID string) error
}
