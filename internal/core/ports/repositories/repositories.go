package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CompanyRepo   CompanyRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	CounterRepo   CounterRepository
	MenuRepo      MenuRepositoryFacade
	BillRepo      BillRepositoryFacade
	UserRepo      UserRepositoryFacade
	SettingsRepo  SettingsRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}
