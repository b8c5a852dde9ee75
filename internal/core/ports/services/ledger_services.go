package services

import (
	"context"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/dto"
)

// LedgerReaderSvc defines read operations over companies, employees and
// their credit ledgers. These are pure pass-through reads plus the
// statement reconstruction.
type LedgerReaderSvc interface {
	// GetCompanies retrieves all companies.
	GetCompanies(ctx context.Context) ([]domain.Company, error)

	// GetCompanyByID retrieves a single company.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// GetEmployeesByCompany retrieves all employees of a company.
	GetEmployeesByCompany(ctx context.Context, companyID string) ([]domain.Employee, error)

	// GetEmployeeByID retrieves a single employee.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListTransactions retrieves the employee's ledger entries in
	// chronological (sequence) order.
	ListTransactions(ctx context.Context, employeeID string) ([]domain.EmployeeTransaction, error)

	// GetAccountSummary reconstructs the full statement with running
	// balances and totals. Returns nil (no error) when the employee does
	// not exist. Side-effect free and idempotent.
	GetAccountSummary(ctx context.Context, employeeID string) (*domain.AccountSummary, error)
}

// LedgerWriterSvc defines the write operations of the ledger engine.
type LedgerWriterSvc interface {
	// CreateCompany persists a new company.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)

	// CreateEmployee validates the company reference, allocates the next
	// employee code, and persists the employee with a zero balance.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// AddTransaction appends a signed ledger entry and updates the
	// employee's cached balance atomically. The amount is coerced to its
	// absolute value; the sign is implied by the type.
	AddTransaction(ctx context.Context, employeeID string, req dto.AddTransactionRequest) (*domain.EmployeeTransaction, error)
}

// LedgerSvcFacade combines all ledger engine interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
