package repositories

import (
	"context"
	"time"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// BillReader defines read operations for bills.
type BillReader interface {
	// FindBillByID retrieves a bill with its items.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBillsByDateRange retrieves bills created within [from, to),
	// ordered ascending by creation time, items included.
	ListBillsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Bill, error)
}

// BillWriter defines write operations for bills.
type BillWriter interface {
	// SaveBill persists a bill and its items atomically. When charge is
	// non-nil the same database transaction also appends the ledger entry
	// and applies it to the charged employee's balance, so a company-charged
	// bill can never commit without its ledger side and vice versa.
	// Fails with ErrNotFound if the charged employee does not exist.
	SaveBill(ctx context.Context, bill domain.Bill, charge *domain.EmployeeTransaction) error
}

// BillRepositoryFacade combines all bill-related repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
