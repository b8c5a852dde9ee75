package repositories

import (
	"context"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// SettingsRepositoryFacade reads and upserts the singleton settings row.
type SettingsRepositoryFacade interface {
	// GetSettings returns the stored settings, or ErrNotFound when the shop
	// has never saved any.
	GetSettings(ctx context.Context) (*domain.AppSettings, error)

	// PutSettings upserts the settings row.
	PutSettings(ctx context.Context, settings domain.AppSettings) error
}
