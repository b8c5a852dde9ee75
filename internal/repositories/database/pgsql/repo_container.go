package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories onto one pool. The
// bill repository receives the ledger repository so company charges and
// their bills share a transaction.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(pool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:   newPgxCompanyRepository(pool),
		LedgerRepo:    ledgerRepo,
		CounterRepo:   newPgxCounterRepository(pool),
		MenuRepo:      newPgxMenuRepository(pool),
		BillRepo:      newPgxBillRepository(pool, ledgerRepo),
		UserRepo:      newPgxUserRepository(pool),
		SettingsRepo:  newPgxSettingsRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}
