package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee accounts.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by its unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployeesByCompany retrieves all employees belonging to a company.
	ListEmployeesByCompany(ctx context.Context, companyID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee accounts.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee record with its initial balance.
	SaveEmployee(ctx context.Context, employee domain.Employee) error
}

// LedgerReader defines read operations over the transaction log.
type LedgerReader interface {
	// FindTransactionsByEmployeeID retrieves all ledger entries for an
	// employee ordered ascending by their monotonic sequence number.
	FindTransactionsByEmployeeID(ctx context.Context, employeeID string) ([]domain.EmployeeTransaction, error)
}

// LedgerWriter defines the single write path into the transaction log.
type LedgerWriter interface {
	// SaveTransaction appends a ledger entry and applies its signed effect
	// to the employee's cached balance as one atomic unit: the employee row
	// is locked, the balance updated, and the transaction inserted inside a
	// single database transaction. Either both commit or neither does.
	// Returns the stored entry with its store-assigned sequence number.
	// Fails with ErrNotFound if the employee does not exist.
	SaveTransaction(ctx context.Context, txn domain.EmployeeTransaction) (*domain.EmployeeTransaction, error)
}

// LedgerTransactionSupport defines operations other repositories use to
// participate in the ledger's atomic unit from within their own database
// transaction (the bill repository charges company accounts this way).
type LedgerTransactionSupport interface {
	// FindEmployeeByIDForUpdate selects the employee and locks its row for
	// update within the given transaction.
	FindEmployeeByIDForUpdate(ctx context.Context, tx pgx.Tx, employeeID string) (*domain.Employee, error)

	// ApplyTransactionInTx applies the entry's signed effect to the locked
	// employee's balance and inserts the ledger row, all within the given
	// transaction. Returns the stored entry with its sequence number.
	ApplyTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.EmployeeTransaction) (*domain.EmployeeTransaction, error)
}

// LedgerRepositoryFacade combines the employee and transaction-log
// interfaces; this is the ledger engine's view of the store.
type LedgerRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	LedgerReader
	LedgerWriter
	LedgerTransactionSupport
}

// CounterRepository is the store-owned allocator for monotonic sequences
// (employee codes, bill numbers). Each call atomically reads, increments
// and persists the named counter, and returns the new value. A corrupt or
// non-numeric stored value is treated as 0 so allocation never fails for
// that reason.
type CounterRepository interface {
	NextValue(ctx context.Context, name string) (int64, error)
}
