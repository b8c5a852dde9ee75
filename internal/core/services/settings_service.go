package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/internal/middleware"
)

// settingsService reads and updates the singleton shop settings.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings returns the stored settings, falling back to the defaults
// when the shop has never saved any.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings replaces the stored settings wholesale.
func (s *settingsService) UpdateSettings(ctx context.Context, settings domain.AppSettings) (*domain.AppSettings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.settingsRepo.PutSettings(ctx, settings); err != nil {
		logger.Error("Failed to store settings", slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Settings updated", slog.String("shop_name", settings.ShopName))
	return &settings, nil
}
