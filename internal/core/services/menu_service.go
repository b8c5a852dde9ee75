package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/dto"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// menuService manages the restaurant menu.
type menuService struct {
	menuRepo portsrepo.MenuRepositoryFacade
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo portsrepo.MenuRepositoryFacade) portssvc.MenuSvcFacade {
	return &menuService{menuRepo: menuRepo}
}

var _ portssvc.MenuSvcFacade = (*menuService)(nil)

// CreateMenuItem adds a new item to the menu. Items default to available.
func (s *menuService) CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (*domain.MenuItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	item := domain.MenuItem{
		MenuItemID:  uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.menuRepo.SaveMenuItem(ctx, item); err != nil {
		logger.Error("Failed to save menu item", slog.String("error", err.Error()))
		return nil, err
	}
	return &item, nil
}

// UpdateMenuItem applies a partial update; nil fields are left unchanged.
func (s *menuService) UpdateMenuItem(ctx context.Context, menuItemID string, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.menuRepo.FindMenuItemByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.menuRepo.UpdateMenuItem(ctx, *item); err != nil {
		logger.Error("Failed to update menu item", slog.String("error", err.Error()), slog.String("menu_item_id", menuItemID))
		return nil, err
	}
	return item, nil
}

// GetMenuItemByID retrieves a single menu item.
func (s *menuService) GetMenuItemByID(ctx context.Context, menuItemID string) (*domain.MenuItem, error) {
	return s.menuRepo.FindMenuItemByID(ctx, menuItemID)
}

// ListMenuItems retrieves menu items, optionally filtered by category
// and/or availability.
func (s *menuService) ListMenuItems(ctx context.Context, category string, onlyAvailable bool) ([]domain.MenuItem, error) {
	return s.menuRepo.ListMenuItems(ctx, category, onlyAvailable)
}

// DeleteMenuItem removes a menu item. Bills keep their own snapshots, so
// history is unaffected.
func (s *menuService) DeleteMenuItem(ctx context.Context, menuItemID string) error {
	return s.menuRepo.DeleteMenuItem(ctx, menuItemID)
}
