package services

import (
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/tandoorlabs/pos-backend/internal/core/ports/services"
	"github.com/tandoorlabs/pos-backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings and user services first since billing depends on both
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.User = NewUserService(repos.UserRepo)

	container.Ledger = NewLedgerService(repos.CompanyRepo, repos.LedgerRepo, repos.CounterRepo)
	container.Billing = NewBillingService(repos.BillRepo, repos.MenuRepo, repos.CounterRepo, container.Settings, container.User)
	container.Menu = NewMenuService(repos.MenuRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.BillRepo)

	container.Auth = NewAuthService(repos.UserRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}
